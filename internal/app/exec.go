package app

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/filex/internal/state"
)

// processRunner launches external processes, suspending the terminal
// while an interactive application owns it.
type processRunner struct {
	screen tcell.Screen
}

func newProcessRunner(screen tcell.Screen) *processRunner {
	return &processRunner{screen: screen}
}

// Open runs the configured application for a file and blocks until it
// exits. The shell handles applications that carry their own flags.
func (p *processRunner) Open(dir, app, name string) error {
	if err := p.screen.Suspend(); err != nil {
		return &statepkg.ExecError{Cmd: app, Err: err}
	}
	defer func() {
		_ = p.screen.Resume()
		p.screen.Sync()
	}()

	cmd := exec.Command("bash", "-c", openCommandLine(app, name))
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &statepkg.ExecError{Cmd: app, Err: err}
	}
	return nil
}

// Exec runs a command line in dir and captures its output. A non-zero
// exit is not an error: its stderr is the output shown to the user.
func (p *processRunner) Exec(dir, command string) (string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", &statepkg.ExecError{Cmd: command, Err: errEmptyCommand}
	}

	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}
	if _, ok := err.(*exec.ExitError); ok {
		return stderr.String(), nil
	}
	return "", &statepkg.ExecError{Cmd: command, Err: err}
}

// openCommandLine builds the shell line opening name with app. The
// name is single-quoted with embedded quotes escaped so it can never
// break out into the shell.
func openCommandLine(app, name string) string {
	return fmt.Sprintf("%s '%s'", app, strings.ReplaceAll(name, "'", `'\''`))
}

var errEmptyCommand = fmt.Errorf("empty command")
