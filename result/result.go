/*
Package result provides a type for the outcome of a computation which may
fail, either Ok with a value or Err with an error.

The style package uses results to carry converted CSS values, so that
callers may either match on them or fall back to a default.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import "github.com/npillmayer/flexbox/maybe"

// Result is either Ok(T) or Err(error).
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Error() error // nil for Ok
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error. err must not be nil.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err called with nil error")
	}
	return result[T]{err: err}
}

// From converts a (value, error) pair into a Result.
func From[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

func (r result[T]) Error() error {
	return r.err
}

// Map applies f to an Ok value. Errors are passed through.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	if rr, ok := r.(result[T]); ok && rr.err == nil {
		return Ok(f(rr.value))
	}
	return Err[S](r.Error())
}

// AndThen chains a computation which may fail onto an Ok value.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	if rr, ok := r.(result[T]); ok && rr.err == nil {
		return f(rr.value)
	}
	return Err[S](r.Error())
}

// ToMaybe drops the error of a Result.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	if rr, ok := r.(result[T]); ok && rr.err == nil {
		return maybe.Just(rr.value)
	}
	return maybe.Nothing[T]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to destructure a Result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
