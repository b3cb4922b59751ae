package input

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/filex/internal/state"
)

// InputHandler converts tcell events to Actions.
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
	pendingG   bool               // A 'g' was pressed; waiting for the second key
}

// NewInputHandler creates a new input handler.
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{actionChan: actionChan}
}

// SetState sets the state reference for mode checking.
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false
// when the application should quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	mode := statepkg.ModeNormal
	if ih.state != nil {
		mode = ih.state.Mode
	}

	switch mode {
	case statepkg.ModePrompt:
		return ih.processPromptKey(ev)
	case statepkg.ModeOutput:
		return ih.processOutputKey(ev)
	default:
		return ih.processNormalKey(ev)
	}
}

func (ih *InputHandler) processPromptKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.PromptCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.PromptCommitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.PromptBackspaceAction{}
	case tcell.KeyDelete:
		ih.actionChan <- statepkg.PromptDeleteAction{}
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.PromptMoveLeftAction{}
	case tcell.KeyRight:
		ih.actionChan <- statepkg.PromptMoveRightAction{}
	case tcell.KeyUp:
		ih.actionChan <- statepkg.PromptHistoryPrevAction{}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.PromptHistoryNextAction{}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.PromptInsertAction{Rune: ev.Rune()}
	}
	return true
}

func (ih *InputHandler) processOutputKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape {
		ih.actionChan <- statepkg.CloseOutputAction{}
		return true
	}
	if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
		ih.actionChan <- statepkg.CloseOutputAction{}
	}
	return true
}

func (ih *InputHandler) processNormalKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		ih.pendingG = false
		ih.actionChan <- statepkg.MoveUpAction{}
		return true
	case tcell.KeyDown:
		ih.pendingG = false
		ih.actionChan <- statepkg.MoveDownAction{}
		return true
	case tcell.KeyLeft:
		ih.pendingG = false
		ih.actionChan <- statepkg.GoParentAction{}
		return true
	case tcell.KeyRight:
		ih.pendingG = false
		ih.actionChan <- statepkg.EnterAction{}
		return true
	case tcell.KeyEnter:
		ih.pendingG = false
		ih.actionChan <- statepkg.OpenEntryAction{}
		return true
	case tcell.KeyRune:
		// handled below
	default:
		return true
	}

	r := ev.Rune()

	if ih.pendingG {
		ih.pendingG = false
		switch r {
		case 'g':
			ih.actionChan <- statepkg.JumpTopAction{}
		case 'e':
			ih.actionChan <- statepkg.JumpBottomAction{}
		}
		return true
	}

	switch r {
	case 'q':
		return false
	case 'j':
		ih.actionChan <- statepkg.MoveDownAction{}
	case 'k':
		ih.actionChan <- statepkg.MoveUpAction{}
	case 'h':
		ih.actionChan <- statepkg.GoParentAction{}
	case 'l':
		ih.actionChan <- statepkg.EnterAction{}
	case 'g':
		ih.pendingG = true
	case '.':
		ih.actionChan <- statepkg.ToggleDotfilesAction{}
	case 'x':
		ih.actionChan <- statepkg.ToggleSelectAction{}
	case '%':
		ih.actionChan <- statepkg.SelectAllAction{}
	case 'X':
		ih.actionChan <- statepkg.ClearSelectionAction{}
	case 'n':
		ih.actionChan <- statepkg.JumpNextSelectedAction{}
	case 'N':
		ih.actionChan <- statepkg.JumpPrevSelectedAction{}
	case '~':
		ih.actionChan <- statepkg.GoHomeAction{}
	case '/':
		ih.actionChan <- statepkg.PromptOpenAction{Kind: statepkg.PromptSearch}
	case 't':
		ih.actionChan <- statepkg.PromptOpenAction{Kind: statepkg.PromptGoto}
	case '!':
		ih.actionChan <- statepkg.PromptOpenAction{Kind: statepkg.PromptExec}
	case 'r':
		ih.actionChan <- statepkg.RefreshAction{}
	}
	return true
}
