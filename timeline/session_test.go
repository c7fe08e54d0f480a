package timeline

import (
	"strings"
	"testing"
)

func TestUpdater_Resolve(t *testing.T) {
	if got := Value("x").Resolve("prev"); got != "x" {
		t.Errorf("Value.Resolve = %q, want %q", got, "x")
	}
	if got := Value("").Resolve("prev"); got != "" {
		t.Errorf("Value(\"\").Resolve = %q, want empty", got)
	}
	if got := Derive(strings.ToUpper).Resolve("prev"); got != "PREV" {
		t.Errorf("Derive.Resolve = %q, want %q", got, "PREV")
	}
	if got := Derive[string](nil).Resolve("prev"); got != "prev" {
		t.Errorf("Derive(nil).Resolve = %q, want %q", got, "prev")
	}

	var zero Updater[string]
	if got := zero.Resolve("prev"); got != "prev" {
		t.Errorf("zero Updater.Resolve = %q, want %q", got, "prev")
	}
}

func TestSession_SetDerive(t *testing.T) {
	s := NewSession(1, SessionOptions{})

	s.Set(Derive(func(prev int) int { return prev + 1 }))
	s.Set(Derive(func(prev int) int { return prev * 10 }))

	if s.Current() != 20 {
		t.Errorf("Current = %d, want 20", s.Current())
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}

func TestSession_DeriveSeesCursorSnapshot(t *testing.T) {
	s := NewSession(1, SessionOptions{})
	s.SetValue(2)
	s.SetValue(3)
	s.Undo()

	s.Set(Derive(func(prev int) int { return prev * 100 }))

	if got := s.State().Snapshots(); len(got) != 3 || got[2] != 200 {
		t.Errorf("snapshots = %v, want [1 2 200]", got)
	}
}

func TestSession_StateChangedHandler(t *testing.T) {
	s := NewSession("initial", SessionOptions{MaxHistory: 10})

	var calls int
	var last State[string]
	s.SetStateChangedHandler(func(st State[string]) {
		calls++
		last = st
	})

	if s.Undo() {
		t.Error("Undo on fresh session should report no change")
	}
	if calls != 0 {
		t.Fatalf("handler called %d times on no-op, want 0", calls)
	}

	if !s.SetValue("a") {
		t.Error("SetValue should report a change")
	}
	if calls != 1 || last.Current() != "a" {
		t.Errorf("after SetValue: calls=%d current=%q, want 1 %q", calls, last.Current(), "a")
	}

	if s.Redo() {
		t.Error("Redo at newest snapshot should report no change")
	}
	if !s.Undo() {
		t.Error("Undo should report a change")
	}
	if !s.GoTo(5) {
		t.Error("GoTo(5) should clamp to last and report a change")
	}
	if s.GoTo(5) {
		t.Error("GoTo to the current index should report no change")
	}
	if calls != 3 {
		t.Errorf("handler calls = %d, want 3", calls)
	}
	if last.Index() != 1 {
		t.Errorf("last notified index = %d, want 1", last.Index())
	}
}

func TestSession_DisableRedo(t *testing.T) {
	s := NewSession("initial", SessionOptions{DisableRedo: true})
	s.SetValue("a")
	s.Undo()

	if s.CanRedo() {
		t.Error("CanRedo should be false when redo is disabled")
	}
	if s.Redo() {
		t.Error("Redo should be a no-op when disabled")
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0", s.Index())
	}
}

func TestSession_ResetAndClear(t *testing.T) {
	s := NewSession("initial", SessionOptions{})
	s.SetValue("a")
	s.SetValue("b")

	if !s.Clear() {
		t.Error("Clear should report a change")
	}
	if s.Len() != 1 || s.Current() != "b" {
		t.Errorf("after Clear: len=%d current=%q, want 1 %q", s.Len(), s.Current(), "b")
	}
	if s.CanUndo() {
		t.Error("CanUndo should be false after Clear")
	}

	if !s.Reset() {
		t.Error("Reset should report a change")
	}
	if s.Len() != 1 || s.Current() != "initial" {
		t.Errorf("after Reset: len=%d current=%q, want 1 %q", s.Len(), s.Current(), "initial")
	}
}

func TestSession_ManagerIsShared(t *testing.T) {
	s := NewSession("initial", SessionOptions{MaxHistory: 7})

	if got := s.Manager().Options().MaxHistory; got != 7 {
		t.Errorf("MaxHistory = %d, want 7", got)
	}

	s.Manager().SetState("direct")
	if s.Current() != "direct" {
		t.Errorf("Current = %q, want %q", s.Current(), "direct")
	}
}
