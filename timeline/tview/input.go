package tview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// InputHandler returns the input handler for this component.
// Timeline keys are handled here; everything else goes to the focused child.
//
//	Ctrl+S  commit the draft
//	Ctrl+Z  undo
//	Ctrl+Y  redo
//	Ctrl+R  reset to the initial snapshot
//	Ctrl+L  clear all but the current snapshot
//	Tab     switch between draft and timeline
//	Enter   (timeline) jump to the highlighted snapshot
func (e *Editor) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	children := e.Flex.InputHandler()

	return func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if e.handleKey(event, setFocus) {
			return
		}
		if children != nil {
			children(event, setFocus)
		}
	}
}

// handleKey applies timeline keys and reports whether the event was consumed.
// Keys are consumed even when the operation had no effect so the draft area
// does not apply its own undo on top.
func (e *Editor) handleKey(event *tcell.EventKey, setFocus func(p tview.Primitive)) bool {
	switch event.Key() {
	case tcell.KeyCtrlS:
		e.Commit()
	case tcell.KeyCtrlZ:
		e.Undo()
	case tcell.KeyCtrlY:
		e.Redo()
	case tcell.KeyCtrlR:
		e.Reset()
	case tcell.KeyCtrlL:
		e.Clear()
	case tcell.KeyTab:
		e.focusNext(setFocus)
	default:
		return false
	}
	return true
}
