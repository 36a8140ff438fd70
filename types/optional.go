package types

import "pocket32-go/errcode"

// Optional holds either a working peripheral handle or the reason it is
// unavailable. It is resolved once at startup.
type Optional[T any] struct {
	v   T
	ok  bool
	err error
}

// Present wraps a working handle.
func Present[T any](v T) Optional[T] { return Optional[T]{v: v, ok: true} }

// Absent records why a peripheral is unavailable. A nil reason becomes
// errcode.Unavailable.
func Absent[T any](reason error) Optional[T] {
	if reason == nil {
		reason = errcode.Unavailable
	}
	return Optional[T]{err: reason}
}

// Probe runs fn once and captures its outcome.
func Probe[T any](fn func() (T, error)) Optional[T] {
	v, err := fn()
	if err != nil {
		return Absent[T](err)
	}
	return Present(v)
}

// Get returns the handle and whether it is usable.
func (o Optional[T]) Get() (T, bool) { return o.v, o.ok }

// Available reports whether a handle is present.
func (o Optional[T]) Available() bool { return o.ok }

// Err is nil when present.
func (o Optional[T]) Err() error {
	if o.ok {
		return nil
	}
	if o.err == nil {
		return errcode.Unavailable
	}
	return o.err
}
