package state

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kk-code-lab/filex/internal/config"
	fsutil "github.com/kk-code-lab/filex/internal/fs"
)

// CommandRunner invokes external processes on behalf of the reducer.
// Open launches the configured application for a file and blocks until
// it exits; Exec runs a command line in dir and returns its output.
type CommandRunner interface {
	Open(dir, app, name string) error
	Exec(dir, command string) (string, error)
}

// Overridable in tests.
var (
	listDirectoryFn = fsutil.List
	userHomeDirFn   = os.UserHomeDir
)

// StateReducer applies actions to an AppState.
type StateReducer struct {
	config *config.Config
	runner CommandRunner
}

// NewStateReducer creates a reducer bound to a config and a runner.
func NewStateReducer(cfg *config.Config, runner CommandRunner) *StateReducer {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &StateReducer{config: cfg, runner: runner}
}

// Reduce applies a single action. Recoverable failures land on the
// status line; the returned error is reserved for programming errors.
func (r *StateReducer) Reduce(state *AppState, action Action) error {
	switch a := action.(type) {

	// ===== MOVEMENT =====

	case MoveDownAction:
		state.moveDown()

	case MoveUpAction:
		state.moveUp()

	case JumpTopAction:
		state.jumpToTop()

	case JumpBottomAction:
		state.jumpToBottom()

	case JumpNextSelectedAction:
		state.jumpToSelection(JumpNext)

	case JumpPrevSelectedAction:
		state.jumpToSelection(JumpPrev)

	// ===== SELECTION =====

	case ToggleSelectAction:
		if len(state.Files) == 0 {
			return nil
		}
		state.selection().Toggle(state.Cursor)
		updateSelectionMessage(state)

	case SelectAllAction:
		if len(state.Files) == 0 {
			return nil
		}
		state.selection().SelectAll(len(state.Files))
		updateSelectionMessage(state)

	case ClearSelectionAction:
		state.selection().Clear()
		updateSelectionMessage(state)

	// ===== DIRECTORY CHANGES =====

	case EnterAction:
		entry := state.CurrentEntry()
		if entry == nil {
			return nil
		}
		if entry.IsFile() {
			r.openCurrentEntry(state)
			return nil
		}
		r.changeDirectory(state, filepath.Join(state.CurrentPath, entry.Name))

	case GoParentAction:
		parent := filepath.Dir(state.CurrentPath)
		if parent == state.CurrentPath {
			return nil
		}
		r.changeDirectory(state, parent)

	case GoHomeAction:
		home, err := userHomeDirFn()
		if err != nil || home == "" {
			state.setError("cannot resolve home directory")
			return nil
		}
		r.changeDirectory(state, filepath.Clean(home))

	case GoToPathAction:
		r.gotoPath(state, a.Path)

	case RefreshAction:
		r.refresh(state)

	case ToggleDotfilesAction:
		show := !state.ShowDotfiles
		entries, err := listDirectoryFn(state.CurrentPath, show)
		if err != nil {
			state.setError(err.Error())
			return nil
		}
		state.ShowDotfiles = show
		state.replaceListing(entries)

	// ===== FILE OPENING =====

	case OpenEntryAction:
		r.openCurrentEntry(state)

	// ===== PROMPT =====

	case PromptOpenAction:
		if state.Mode != ModeNormal {
			return nil
		}
		state.Mode = ModePrompt
		state.Prompt = NewPromptState(a.Kind)

	case PromptInsertAction:
		if state.Prompt != nil {
			state.Prompt.Insert(a.Rune)
		}

	case PromptBackspaceAction:
		if state.Prompt != nil {
			state.Prompt.DeleteBefore()
		}

	case PromptDeleteAction:
		if state.Prompt != nil {
			state.Prompt.DeleteAt()
		}

	case PromptMoveLeftAction:
		if state.Prompt != nil {
			state.Prompt.MoveLeft()
		}

	case PromptMoveRightAction:
		if state.Prompt != nil {
			state.Prompt.MoveRight()
		}

	case PromptHistoryPrevAction:
		if state.Prompt != nil {
			state.Prompt.HistoryPrev(state.history()[state.Prompt.Kind])
		}

	case PromptHistoryNextAction:
		if state.Prompt != nil {
			state.Prompt.HistoryNext(state.history()[state.Prompt.Kind])
		}

	case PromptCommitAction:
		r.commitPrompt(state)

	case PromptCancelAction:
		state.Prompt = nil
		state.Mode = ModeNormal

	// ===== OUTPUT SCREEN =====

	case CloseOutputAction:
		if state.Mode != ModeOutput {
			return nil
		}
		state.Output = ""
		state.Mode = ModeNormal
		r.refresh(state)

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.clampViewport()
	}

	return nil
}

// commitPrompt closes the prompt, records its text in the per-kind
// history and dispatches to the command the kind stands for.
func (r *StateReducer) commitPrompt(state *AppState) {
	prompt := state.Prompt
	if prompt == nil {
		return
	}
	text := prompt.Text()
	if text != "" {
		state.history()[prompt.Kind] = append(state.history()[prompt.Kind], text)
	}
	state.Prompt = nil
	state.Mode = ModeNormal

	if text == "" {
		return
	}

	switch prompt.Kind {
	case PromptSearch:
		r.search(state, text)
	case PromptGoto:
		r.gotoPath(state, text)
	case PromptExec:
		r.execCommand(state, text)
	}
}

// search selects every entry whose name matches the pattern and jumps
// to the first match. Patterns not starting with ^ are taken literally.
func (r *StateReducer) search(state *AppState, pattern string) {
	expr := pattern
	if !strings.HasPrefix(expr, "^") {
		expr = regexp.QuoteMeta(expr)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		state.setError((&PatternError{Pattern: pattern, Err: err}).Error())
		return
	}

	state.selection().Clear()
	for i, entry := range state.Files {
		if re.MatchString(entry.Name) {
			state.selection().Toggle(i)
		}
	}
	updateSelectionMessage(state)
	state.jumpToFirstSelected()
}

// gotoPath resolves a user-supplied path and changes into it. Any
// resolution failure is a recoverable PathError on the status line.
func (r *StateReducer) gotoPath(state *AppState, input string) {
	if input == "" {
		return
	}
	path, ok := expandTilde(input)
	if !ok {
		state.setError((&PathError{Path: input}).Error())
		return
	}
	path, err := filepath.Abs(path)
	if err != nil {
		state.setError((&PathError{Path: input}).Error())
		return
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		state.setError((&PathError{Path: input}).Error())
		return
	}
	r.changeDirectory(state, resolved)
}

// execCommand runs a command line in the current directory and shows
// the captured output full-screen.
func (r *StateReducer) execCommand(state *AppState, command string) {
	if r.runner == nil {
		return
	}
	output, err := r.runner.Exec(state.CurrentPath, command)
	if err != nil {
		state.setError(err.Error())
		return
	}
	state.Output = output
	state.Mode = ModeOutput
}

// openCurrentEntry opens the file under the cursor with the
// application configured for its extension.
func (r *StateReducer) openCurrentEntry(state *AppState) {
	entry := state.CurrentEntry()
	if entry == nil {
		return
	}
	if !entry.IsFile() {
		state.setWarn("entry is not a file")
		return
	}
	app, ok := r.config.AppFor(entry.Ext())
	if !ok {
		state.setWarn(fmt.Sprintf("no application configured for %q", entry.Name))
		return
	}
	if r.runner == nil {
		return
	}
	if err := r.runner.Open(state.CurrentPath, app, entry.Name); err != nil {
		state.setError(err.Error())
		return
	}
	state.setInfo(fmt.Sprintf("opened %s with %s", entry.Name, app))
}

// changeDirectory atomically replaces the listing, clears selection
// and message, and resets the viewport. On a read error the previous
// state is kept and the failure lands on the status line.
func (r *StateReducer) changeDirectory(state *AppState, path string) {
	entries, err := listDirectoryFn(path, state.ShowDotfiles)
	if err != nil {
		state.setError(err.Error())
		return
	}
	state.CurrentPath = path
	state.replaceListing(entries)
}

// refresh re-reads the current directory but keeps cursor and offset,
// clamped into range if the listing shrank.
func (r *StateReducer) refresh(state *AppState) {
	entries, err := listDirectoryFn(state.CurrentPath, state.ShowDotfiles)
	if err != nil {
		state.setError(err.Error())
		return
	}
	state.Files = entries
	state.selection().Clear()
	state.clearMessage()
	state.clampViewport()
}

// replaceListing installs a fresh listing with the viewport and
// selection reset.
func (s *AppState) replaceListing(entries []FileEntry) {
	s.Files = entries
	s.Cursor = 0
	s.Offset = 0
	s.selection().Clear()
	s.clearMessage()
}

func updateSelectionMessage(state *AppState) {
	switch n := state.selection().Count(); n {
	case 0:
		state.clearMessage()
	case 1:
		state.setInfo("1 item selected")
	default:
		state.setInfo(fmt.Sprintf("%d items selected", n))
	}
}

// expandTilde resolves a leading ~ against the home directory.
func expandTilde(path string) (string, bool) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, true
	}
	home, err := userHomeDirFn()
	if err != nil || home == "" {
		return "", false
	}
	if path == "~" {
		return home, true
	}
	return filepath.Join(home, path[2:]), true
}
