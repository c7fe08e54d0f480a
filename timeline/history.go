package timeline

// DefaultMaxHistory is used when Options.MaxHistory is not positive.
const DefaultMaxHistory = 50

// Options configures a Manager. It is fixed for the lifetime of the manager.
type Options struct {
	// MaxHistory is the maximum number of retained snapshots.
	MaxHistory int
	// EnableRedo controls whether Redo can move the cursor forward.
	EnableRedo bool
}

// DefaultOptions returns the configuration used by the CLI when nothing else is given.
func DefaultOptions() Options {
	return Options{MaxHistory: DefaultMaxHistory, EnableRedo: true}
}

// State is an immutable record of a timeline: the retained snapshots from oldest
// to newest, the cursor into them and the value the manager was created with.
//
// The snapshot slice is never modified after a State is built, so callers may keep
// old State values around and compare them with Version.
type State[T any] struct {
	history      []T
	currentIndex int
	initialState T
	version      uint64
}

// Len returns the number of retained snapshots. It is always at least 1.
func (s State[T]) Len() int { return len(s.history) }

// Index returns the cursor position.
func (s State[T]) Index() int { return s.currentIndex }

// Current returns the snapshot under the cursor.
func (s State[T]) Current() T { return s.history[s.currentIndex] }

// Initial returns the value the manager was constructed with.
func (s State[T]) Initial() T { return s.initialState }

// At returns the snapshot at index i and false if i is out of range.
func (s State[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.history) {
		var zero T
		return zero, false
	}
	return s.history[i], true
}

// Snapshots returns a copy of the retained snapshots, oldest first.
func (s State[T]) Snapshots() []T {
	out := make([]T, len(s.history))
	copy(out, s.history)
	return out
}

// CanUndo reports whether there is a snapshot before the cursor.
func (s State[T]) CanUndo() bool { return s.currentIndex > 0 }

// CanRedo reports whether there is a snapshot after the cursor.
// It does not take Options.EnableRedo into account; see Manager.CanRedo.
func (s State[T]) CanRedo() bool { return s.currentIndex < len(s.history)-1 }

// Version changes on every transition that alters the state and stays the same on no-ops.
func (s State[T]) Version() uint64 { return s.version }

// Manager keeps a bounded linear history of snapshots and a cursor into it.
//
// Behavior:
// - SetState drops everything after the cursor, appends and evicts the oldest entries beyond MaxHistory
// - Undo and Redo move the cursor by one without touching the snapshots
// - Reset restores the construction-time value, Clear keeps only the current snapshot
// - GoToIndex clamps the requested index into range
//
// All operations are total; out-of-range requests leave the state unchanged or are clamped.
// A Manager is not safe for concurrent use.
type Manager[T any] struct {
	state State[T]
	opts  Options
}

// New creates a manager seeded with the initial value.
// A non-positive MaxHistory is replaced with DefaultMaxHistory.
func New[T any](initial T, opts Options) *Manager[T] {
	if opts.MaxHistory <= 0 {
		opts.MaxHistory = DefaultMaxHistory
	}

	return &Manager[T]{
		state: State[T]{
			history:      []T{initial},
			currentIndex: 0,
			initialState: initial,
		},
		opts: opts,
	}
}

// Options returns the normalized configuration.
func (m *Manager[T]) Options() Options { return m.opts }

// GetState returns the current state.
func (m *Manager[T]) GetState() State[T] { return m.state }

// CanUndo reports whether Undo would move the cursor.
func (m *Manager[T]) CanUndo() bool { return m.state.CanUndo() }

// CanRedo reports whether Redo would move the cursor.
func (m *Manager[T]) CanRedo() bool { return m.opts.EnableRedo && m.state.CanRedo() }

// SetState records value as the newest snapshot and moves the cursor to it.
// Snapshots after the cursor are discarded.
func (m *Manager[T]) SetState(value T) State[T] {
	kept := m.state.history[:m.state.currentIndex+1]

	// keep the most recent entries
	start := 0
	if len(kept)+1 > m.opts.MaxHistory {
		start = len(kept) + 1 - m.opts.MaxHistory
	}

	next := make([]T, 0, len(kept)+1-start)
	next = append(next, kept[start:]...)
	next = append(next, value)

	return m.replace(next, len(next)-1)
}

// Undo moves the cursor one snapshot back.
func (m *Manager[T]) Undo() State[T] {
	if !m.CanUndo() {
		return m.state
	}
	return m.replace(m.state.history, m.state.currentIndex-1)
}

// Redo moves the cursor one snapshot forward. It never has an effect when redo is disabled.
func (m *Manager[T]) Redo() State[T] {
	if !m.CanRedo() {
		return m.state
	}
	return m.replace(m.state.history, m.state.currentIndex+1)
}

// Reset discards every snapshot and starts over from the initial value.
func (m *Manager[T]) Reset() State[T] {
	return m.replace([]T{m.state.initialState}, 0)
}

// Clear keeps only the current snapshot.
func (m *Manager[T]) Clear() State[T] {
	return m.replace([]T{m.state.Current()}, 0)
}

// GoToIndex moves the cursor to index, clamped into [0, Len()-1].
func (m *Manager[T]) GoToIndex(index int) State[T] {
	last := len(m.state.history) - 1
	if index < 0 {
		index = 0
	}
	if index > last {
		index = last
	}
	if index == m.state.currentIndex {
		return m.state
	}
	return m.replace(m.state.history, index)
}

func (m *Manager[T]) replace(history []T, index int) State[T] {
	m.state = State[T]{
		history:      history,
		currentIndex: index,
		initialState: m.state.initialState,
		version:      m.state.version + 1,
	}
	return m.state
}
