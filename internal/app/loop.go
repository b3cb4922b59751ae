package app

import (
	"log"

	"github.com/gdamore/tcell/v2"
)

// Run drives the event loop until the user quits. Events are polled on
// a dedicated goroutine; all state changes happen here.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	for !app.shouldQuit {
		ev := <-eventChan
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
			break
		}
		app.processActions()
		app.renderer.Render(app.state)
	}
}

// processActions drains all actions the last event produced.
func (app *Application) processActions() {
	for {
		select {
		case action := <-app.actionCh:
			if err := app.reducer.Reduce(app.state, action); err != nil {
				log.Printf("reduce %T: %v", action, err)
			}
		default:
			return
		}
	}
}
