// Package roplog connects failures of the rop package to zap loggers.
//
// The rop core never logs. This package supplies ready-made handlers for the
// places where a caller does want a log line:
// - Fields: zap fields describing a failure (variant index, type, message)
// - Handler/HandlerAt: a func(E) for Result.IfFailed and Result.UnwrapOrHandle
// - Observe: log the outcome of a Result and pass it on
// - WithLogger/FromContext/OnFailure: context-carried loggers for solo and chain callbacks
package roplog
