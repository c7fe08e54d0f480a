package timeline

// Session is a UI-agnostic model around a Manager that a host UI drives.
//
// Session responsibilities:
// - own one Manager for its lifetime
// - resolve Updater values against the current snapshot before writing
// - detect effective changes by comparing state versions before and after each call
// - notify a single state-changed handler when something changed
//
// A Session does no timing of its own; every call is applied immediately.
type Session[T any] struct {
	manager        *Manager[T]
	onStateChanged func(State[T])
}

// SessionOptions configures a Session.
type SessionOptions struct {
	MaxHistory int
	// DisableRedo turns Redo into a no-op. Redo is enabled by default.
	DisableRedo bool
}

// NewSession creates a session seeded with initial.
func NewSession[T any](initial T, opts SessionOptions) *Session[T] {
	return &Session[T]{
		manager: New(initial, Options{
			MaxHistory: opts.MaxHistory,
			EnableRedo: !opts.DisableRedo,
		}),
	}
}

// SetStateChangedHandler sets a callback fired after every call that changed the state.
func (s *Session[T]) SetStateChangedHandler(handler func(State[T])) *Session[T] {
	s.onStateChanged = handler
	return s
}

// Manager exposes the underlying history manager.
func (s *Session[T]) Manager() *Manager[T] { return s.manager }

// State returns the current state.
func (s *Session[T]) State() State[T] { return s.manager.GetState() }

// Current returns the snapshot under the cursor.
func (s *Session[T]) Current() T { return s.manager.GetState().Current() }

// Len returns the number of retained snapshots.
func (s *Session[T]) Len() int { return s.manager.GetState().Len() }

// Index returns the cursor position.
func (s *Session[T]) Index() int { return s.manager.GetState().Index() }

// CanUndo reports whether Undo would have an effect.
func (s *Session[T]) CanUndo() bool { return s.manager.CanUndo() }

// CanRedo reports whether Redo would have an effect.
func (s *Session[T]) CanRedo() bool { return s.manager.CanRedo() }

// Set resolves u against the current snapshot and records the result.
func (s *Session[T]) Set(u Updater[T]) bool {
	next := u.Resolve(s.Current())
	return s.apply(func() State[T] { return s.manager.SetState(next) })
}

// SetValue records v as the newest snapshot.
func (s *Session[T]) SetValue(v T) bool {
	return s.Set(Value(v))
}

// Undo moves back one snapshot.
func (s *Session[T]) Undo() bool { return s.apply(s.manager.Undo) }

// Redo moves forward one snapshot.
func (s *Session[T]) Redo() bool { return s.apply(s.manager.Redo) }

// Reset starts over from the initial value.
func (s *Session[T]) Reset() bool { return s.apply(s.manager.Reset) }

// Clear forgets everything but the current snapshot.
func (s *Session[T]) Clear() bool { return s.apply(s.manager.Clear) }

// GoTo moves the cursor to index, clamped into range.
func (s *Session[T]) GoTo(index int) bool {
	return s.apply(func() State[T] { return s.manager.GoToIndex(index) })
}

func (s *Session[T]) apply(op func() State[T]) bool {
	before := s.manager.GetState().Version()
	after := op()
	if after.Version() == before {
		return false
	}
	if s.onStateChanged != nil {
		s.onStateChanged(after)
	}
	return true
}
