package rop

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrEmpty is the panic value raised when an error holding no variant is processed.
	ErrEmpty = errors.New("rop: error holds no variant")
	// ErrNoHandler is the panic value raised when the active variant has no handler.
	ErrNoHandler = errors.New("rop: no handler for active variant")
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func describe(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	switch p := payload.(type) {
	case error:
		if IsNil(p) {
			return fmt.Sprintf("%T(nil)", p)
		}
		return p.Error()
	case fmt.Stringer:
		if IsNil(p) {
			return fmt.Sprintf("%T(nil)", p)
		}
		return p.String()
	default:
		return fmt.Sprintf("%T%+v", p, p)
	}
}

func unwrapPayload(payload any) error {
	if err, ok := payload.(error); ok && !IsNil(err) {
		return err
	}
	return nil
}

func typeName(payload any) string {
	return fmt.Sprintf("%T", payload)
}

func noHandler(index int, variant string) error {
	return fmt.Errorf("%w: variant %d (%s)", ErrNoHandler, index, variant)
}
