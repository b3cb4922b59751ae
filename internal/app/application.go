package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/filex/internal/config"
	fsutil "github.com/kk-code-lab/filex/internal/fs"
	statepkg "github.com/kk-code-lab/filex/internal/state"
	inputui "github.com/kk-code-lab/filex/internal/ui/input"
	renderui "github.com/kk-code-lab/filex/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	shouldQuit bool
}

// NewApplication initializes the terminal and loads the start directory.
// A start directory that cannot be read is fatal.
func NewApplication(cfg *config.Config, startPath string) (*Application, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	state := statepkg.NewAppState(startPath)
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	entries, err := fsutil.List(startPath, state.ShowDotfiles)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	state.Files = entries

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	app := &Application{
		screen:   screen,
		state:    state,
		reducer:  statepkg.NewStateReducer(cfg, newProcessRunner(screen)),
		renderer: renderui.NewRenderer(screen, renderui.ParseColumns(cfg.Columns)),
		input:    inputHandler,
		actionCh: actionCh,
	}
	return app, nil
}
