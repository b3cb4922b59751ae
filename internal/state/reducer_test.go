package state

import (
	"errors"

	"github.com/kk-code-lab/filex/internal/config"
)

// fakeListing replaces the directory lister for the duration of a test.
type fakeListing struct {
	entries map[string][]FileEntry
	err     error
	calls   []string
}

func (f *fakeListing) list(path string, showDotfiles bool) ([]FileEntry, error) {
	f.calls = append(f.calls, path)
	if f.err != nil {
		return nil, f.err
	}
	entries, ok := f.entries[path]
	if !ok {
		return nil, errors.New("cannot read directory " + path)
	}
	if !showDotfiles {
		visible := make([]FileEntry, 0, len(entries))
		for _, e := range entries {
			if len(e.Name) > 0 && e.Name[0] == '.' {
				continue
			}
			visible = append(visible, e)
		}
		return visible, nil
	}
	return entries, nil
}

type fakeRunner struct {
	openDir  string
	openApp  string
	openName string
	openErr  error

	execDir string
	execCmd string
	execOut string
	execErr error
}

func (f *fakeRunner) Open(dir, app, name string) error {
	f.openDir, f.openApp, f.openName = dir, app, name
	return f.openErr
}

func (f *fakeRunner) Exec(dir, command string) (string, error) {
	f.execDir, f.execCmd = dir, command
	if f.execErr != nil {
		return "", f.execErr
	}
	return f.execOut, nil
}

func newTestReducer(cfg *config.Config, runner CommandRunner) *StateReducer {
	return NewStateReducer(cfg, runner)
}
