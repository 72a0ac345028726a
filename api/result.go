package api

// Result is the outcome of a facade call: either a value or a descriptor.
//
// A successful Result may still lack a value. Create tolerates success
// responses without a payload; Value reports false in that case.
type Result[T any] struct {
	value   T
	present bool
	err     *ErrorDescriptor
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, present: true}
}

// Empty returns a successful Result without a value.
func Empty[T any]() Result[T] {
	return Result[T]{}
}

// Fail returns a failed Result.
func Fail[T any](d *ErrorDescriptor) Result[T] {
	return Result[T]{err: d}
}

// Ok reports whether the call succeeded.
func (r Result[T]) Ok() bool {
	return r.err == nil
}

// Value returns the payload and whether one was present.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.present
}

// Err returns the descriptor of a failed call, or nil.
func (r Result[T]) Err() *ErrorDescriptor {
	return r.err
}

// Unwrap returns the payload or the descriptor as an error.
func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		return r.value, r.err
	}
	return r.value, nil
}

// Match calls onOk with the payload of a successful call that carries one,
// or onErr with the descriptor of a failed call. At most one of them runs,
// and only once. Either may be nil.
func (r Result[T]) Match(onOk func(T), onErr func(*ErrorDescriptor)) {
	switch {
	case r.err != nil:
		if onErr != nil {
			onErr(r.err)
		}
	case r.present:
		if onOk != nil {
			onOk(r.value)
		}
	}
}
