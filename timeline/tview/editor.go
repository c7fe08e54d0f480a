package tview

import (
	"fmt"

	"github.com/boolean-maybe/timeline/notes"
	"github.com/boolean-maybe/timeline/timeline"
	"github.com/rivo/tview"
)

const currentMarker = "▶"

// Editor is a TView adapter for a string timeline session.
// It shows a draft area, the list of retained snapshots and a rendered preview of the current one.
// The draft only becomes a snapshot when it is committed.
type Editor struct {
	*tview.Flex

	core *timeline.Session[string]

	draft   *tview.TextArea
	list    *tview.List
	preview *tview.TextView

	// renderer is optional. If nil, the preview shows the raw snapshot.
	renderer *notes.Renderer

	onStateChanged func(*Editor)
	onRenderError  func(error)
}

// NewEditor creates an editor seeded with initial.
func NewEditor(initial string, opts timeline.SessionOptions) *Editor {
	draft := tview.NewTextArea()
	draft.SetBorder(true).SetTitle(" Draft ")

	list := tview.NewList()
	list.ShowSecondaryText(false)
	list.SetHighlightFullLine(true)
	list.SetBorder(true).SetTitle(" Timeline ")

	preview := tview.NewTextView()
	preview.SetDynamicColors(true)
	preview.SetWrap(true)
	preview.SetBorder(true).SetTitle(" Preview ")

	right := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(list, 0, 1, false).
		AddItem(preview, 0, 2, false)

	flex := tview.NewFlex().
		AddItem(draft, 0, 1, true).
		AddItem(right, 0, 1, false)

	e := &Editor{
		Flex:    flex,
		core:    timeline.NewSession(initial, opts),
		draft:   draft,
		list:    list,
		preview: preview,
	}

	list.SetSelectedFunc(func(index int, _ string, _ string, _ rune) {
		e.GoTo(index)
	})

	e.core.SetStateChangedHandler(func(timeline.State[string]) {
		e.refresh()
		e.fireStateChanged()
	})

	e.refresh()
	return e
}

// Core exposes the underlying UI-agnostic session.
func (e *Editor) Core() *timeline.Session[string] { return e.core }

// SetRenderer configures the preview renderer. Nil shows raw text.
func (e *Editor) SetRenderer(r *notes.Renderer) *Editor {
	e.renderer = r
	e.refreshPreview()
	return e
}

// SetStateChangedHandler sets a callback for when the timeline changes (commit/undo/redo/reset/clear/jump).
func (e *Editor) SetStateChangedHandler(handler func(*Editor)) *Editor {
	e.onStateChanged = handler
	return e
}

// SetRenderErrorHandler sets a callback for preview rendering failures.
func (e *Editor) SetRenderErrorHandler(handler func(error)) *Editor {
	e.onRenderError = handler
	return e
}

// Draft returns the text currently in the draft area.
func (e *Editor) Draft() string { return e.draft.GetText() }

// SetDraft replaces the draft text without committing it.
func (e *Editor) SetDraft(text string) *Editor {
	e.draft.SetText(text, true)
	return e
}

// Dirty reports whether the draft differs from the current snapshot.
func (e *Editor) Dirty() bool { return e.Draft() != e.core.Current() }

// Commit records the draft as a new snapshot. A draft equal to the current snapshot is ignored.
func (e *Editor) Commit() bool {
	if !e.Dirty() {
		return false
	}
	return e.core.SetValue(e.Draft())
}

// Undo moves to the previous snapshot.
func (e *Editor) Undo() bool { return e.core.Undo() }

// Redo moves to the next snapshot.
func (e *Editor) Redo() bool { return e.core.Redo() }

// Reset goes back to the initial snapshot and forgets the rest.
func (e *Editor) Reset() bool { return e.core.Reset() }

// Clear keeps only the current snapshot.
func (e *Editor) Clear() bool { return e.core.Clear() }

// GoTo jumps to the snapshot at index.
func (e *Editor) GoTo(index int) bool { return e.core.GoTo(index) }

func (e *Editor) fireStateChanged() {
	if e.onStateChanged != nil {
		e.onStateChanged(e)
	}
}

func (e *Editor) refresh() {
	if e.Dirty() {
		e.draft.SetText(e.core.Current(), true)
	}
	e.refreshList()
	e.refreshPreview()
}

func (e *Editor) refreshList() {
	state := e.core.State()
	e.list.Clear()
	for i, snapshot := range state.Snapshots() {
		e.list.AddItem(entryLabel(i, snapshot, i == state.Index()), "", 0, nil)
	}
	e.list.SetCurrentItem(state.Index())
}

func (e *Editor) refreshPreview() {
	current := e.core.Current()
	if e.renderer == nil {
		e.preview.SetText(tview.Escape(current))
		e.preview.ScrollToBeginning()
		return
	}

	out, err := e.renderer.Render(current)
	if err != nil {
		if e.onRenderError != nil {
			e.onRenderError(err)
		}
		e.preview.SetText(tview.Escape(out))
	} else {
		e.preview.SetText(tview.TranslateANSI(out))
	}
	e.preview.ScrollToBeginning()
}

func entryLabel(index int, snapshot string, current bool) string {
	marker := " "
	if current {
		marker = currentMarker
	}
	return fmt.Sprintf("%s %2d  %s", marker, index+1, tview.Escape(notes.Title(snapshot)))
}

// focusNext cycles focus between the draft and the timeline list.
func (e *Editor) focusNext(setFocus func(p tview.Primitive)) {
	if e.draft.HasFocus() {
		setFocus(e.list)
		return
	}
	setFocus(e.draft)
}
