package rop

// Tags are 1-based so that the zero value of every union is the empty state.
const emptyTag uint8 = 0

func call[P, R any](handler func(P) R, payload P, index int) R {
	if handler == nil {
		panic(noHandler(index, typeName(payload)))
	}
	return handler(payload)
}

func fallback[P, R any](handler func(P) R, def func(any) R) func(P) R {
	if handler != nil || def == nil {
		return handler
	}
	return func(p P) R { return def(p) }
}

func sink[P any](handler func(P)) func(P) struct{} {
	if handler == nil {
		return nil
	}
	return func(p P) struct{} {
		handler(p)
		return struct{}{}
	}
}

func render(tag uint8, payload any) string {
	if tag == emptyTag {
		return ErrEmpty.Error()
	}
	return describe(payload)
}

func variantName(tag uint8, payload any) string {
	if tag == emptyTag {
		return ""
	}
	return typeName(payload)
}
