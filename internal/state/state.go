package state

import (
	fsutil "github.com/kk-code-lab/filex/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// Mode is the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
	ModeOutput
)

// Severity controls status line coloring.
type Severity int

const (
	MessageInfo Severity = iota
	MessageWarn
	MessageError
)

// Message is a transient status line message.
type Message struct {
	Text  string
	Level Severity
}

// AppState is the single source of truth for the browser.
type AppState struct {
	// Navigation & filesystem
	CurrentPath  string
	Files        []FileEntry
	ShowDotfiles bool

	// Cursor & viewport
	Cursor        int
	Offset        int
	ScrollPadding int

	// Selection
	Selected *SelectionSet

	// Prompt
	Mode    Mode
	Prompt  *PromptState
	History map[PromptKind][]string

	// Exec output screen
	Output string

	// Status line
	Message *Message

	// Dimensions
	ScreenWidth  int
	ScreenHeight int
}

// NewAppState returns an AppState rooted at path with defaults applied.
func NewAppState(path string) *AppState {
	return &AppState{
		CurrentPath:   path,
		ShowDotfiles:  true,
		ScrollPadding: DefaultPadding,
		Selected:      NewSelectionSet(),
		History:       make(map[PromptKind][]string),
	}
}

// CurrentEntry returns the entry under the cursor, or nil when the
// listing is empty.
func (s *AppState) CurrentEntry() *FileEntry {
	if len(s.Files) == 0 || s.Cursor < 0 || s.Cursor >= len(s.Files) {
		return nil
	}
	return &s.Files[s.Cursor]
}

// SelectedCount returns the number of selected entries.
func (s *AppState) SelectedCount() int {
	if s.Selected == nil {
		return 0
	}
	return s.Selected.Count()
}

// IsSelected reports whether the entry at index is selected.
func (s *AppState) IsSelected(index int) bool {
	return s.Selected != nil && s.Selected.Contains(index)
}

func (s *AppState) setInfo(text string) {
	s.Message = &Message{Text: text, Level: MessageInfo}
}

func (s *AppState) setWarn(text string) {
	s.Message = &Message{Text: text, Level: MessageWarn}
}

func (s *AppState) setError(text string) {
	s.Message = &Message{Text: text, Level: MessageError}
}

func (s *AppState) clearMessage() {
	s.Message = nil
}

func (s *AppState) selection() *SelectionSet {
	if s.Selected == nil {
		s.Selected = NewSelectionSet()
	}
	return s.Selected
}

func (s *AppState) history() map[PromptKind][]string {
	if s.History == nil {
		s.History = make(map[PromptKind][]string)
	}
	return s.History
}
