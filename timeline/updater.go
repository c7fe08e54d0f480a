package timeline

// Updater describes a write: either a literal value or a function of the current snapshot.
// The zero Updater leaves the snapshot as it is.
type Updater[T any] struct {
	value  T
	derive func(prev T) T
	set    bool
}

// Value returns an Updater that writes v.
func Value[T any](v T) Updater[T] {
	return Updater[T]{value: v, set: true}
}

// Derive returns an Updater that writes fn(prev). A nil fn yields prev.
func Derive[T any](fn func(prev T) T) Updater[T] {
	return Updater[T]{derive: fn, set: fn != nil}
}

// Resolve computes the value to write given the current snapshot.
func (u Updater[T]) Resolve(prev T) T {
	switch {
	case !u.set:
		return prev
	case u.derive != nil:
		return u.derive(prev)
	default:
		return u.value
	}
}
