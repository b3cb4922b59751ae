package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	fsutil "github.com/kk-code-lab/filex/internal/fs"
	statepkg "github.com/kk-code-lab/filex/internal/state"
	textutil "github.com/kk-code-lab/filex/internal/textutil"
)

// Fixed rows of the listing screen. The viewport height in state is
// derived from the same layout via state.Margin.
const (
	headerRow    = 0
	columnRow    = 2
	separatorRow = 3
	listTop      = 4
)

// Renderer handles all UI rendering.
type Renderer struct {
	screen  tcell.Screen
	theme   ColorTheme
	columns []Column
}

// NewRenderer creates a new renderer drawing the given columns.
func NewRenderer(screen tcell.Screen, columns []Column) *Renderer {
	if len(columns) == 0 {
		columns = defaultColumns
	}
	return &Renderer{
		screen:  screen,
		theme:   GetColorTheme(),
		columns: columns,
	}
}

// Render draws the entire UI based on state.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	r.screen.HideCursor()

	w, h := r.screen.Size()

	if state.Mode == statepkg.ModeOutput {
		r.drawOutput(state, w, h)
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	r.drawColumnHeaders(w)
	r.drawListing(state, w)
	r.drawStatusLine(state, w, h)

	r.screen.Show()
}

// drawHeader renders the current path, or the prompt while one is open.
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)

	if state.Mode == statepkg.ModePrompt && state.Prompt != nil {
		label := state.Prompt.Kind.String() + ": "
		x := r.drawText(1, headerRow, w, label, style)
		r.drawText(x, headerRow, w, state.Prompt.Text(), style)

		before := string(state.Prompt.Buffer[:state.Prompt.Cursor])
		r.screen.ShowCursor(x+runewidth.StringWidth(before), headerRow)
		return
	}

	r.drawText(1, headerRow, w, state.CurrentPath, style.Bold(true))
}

func (r *Renderer) drawColumnHeaders(w int) {
	style := tcell.StyleDefault.Foreground(r.theme.Foreground).Bold(true)

	x := 3 // leave room for the cursor marker
	for _, col := range r.columns {
		x = r.drawText(x, columnRow, w, pad(col.Title(), col.Width()), style)
	}
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, separatorRow, '-', nil, tcell.StyleDefault)
	}
}

func (r *Renderer) drawListing(state *statepkg.AppState, w int) {
	rows := state.VisibleRows()
	for i := 0; i < rows; i++ {
		idx := state.Offset + i
		if idx >= len(state.Files) {
			break
		}
		r.drawEntry(state, idx, listTop+i, w)
	}
}

func (r *Renderer) drawEntry(state *statepkg.AppState, idx, y, w int) {
	entry := state.Files[idx]

	style := tcell.StyleDefault
	switch {
	case entry.IsDir():
		style = style.Foreground(r.theme.DirectoryFg)
	case entry.Kind == fsutil.KindSymlink:
		style = style.Foreground(r.theme.SymlinkFg)
	default:
		style = style.Foreground(r.theme.FileFg)
	}
	if state.IsSelected(idx) {
		style = style.Foreground(r.theme.SelectionFg).Bold(true)
	}
	if idx == state.Cursor {
		style = style.Background(r.theme.CursorBg).Foreground(r.theme.CursorFg)
	}

	marker := "   "
	if idx == state.Cursor {
		marker = " > "
	}
	x := r.drawText(0, y, w, marker, style)

	for _, col := range r.columns {
		text := columnText(entry, col)
		if col == ColumnName {
			text = textutil.SanitizeFileName(text)
		}
		x = r.drawText(x, y, w, pad(text, col.Width()), style)
	}
}

func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	if h < 2 {
		return
	}

	style := tcell.StyleDefault.Foreground(r.theme.Foreground)
	if state.Message != nil {
		switch state.Message.Level {
		case statepkg.MessageWarn:
			style = style.Foreground(r.theme.WarnFg)
		case statepkg.MessageError:
			style = style.Foreground(r.theme.ErrorFg)
		}
	}

	r.drawText(0, h-2, w, formatStatusLine(state), style)
}

// drawOutput renders the full-screen command output.
func (r *Renderer) drawOutput(state *statepkg.AppState, w, h int) {
	style := tcell.StyleDefault.Foreground(r.theme.Foreground)

	y := 0
	for _, line := range strings.Split(state.Output, "\n") {
		if y >= h-2 {
			break
		}
		r.drawText(1, y, w, line, style)
		y++
	}
	if h >= 1 {
		r.drawText(1, h-1, w, "press q to close", style.Dim(true))
	}
}

// drawText writes text at (x, y), stopping at column max. It returns the
// column after the last cell written.
func (r *Renderer) drawText(x, y, max int, text string, style tcell.Style) int {
	for _, ru := range text {
		rw := runewidth.RuneWidth(ru)
		if rw == 0 {
			rw = 1
		}
		if x+rw > max {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += rw
	}
	return x
}

// pad truncates or right-pads text to the given display width, keeping a
// one-cell gap between columns.
func pad(text string, width int) string {
	if width <= 1 {
		return " "
	}
	if runewidth.StringWidth(text) >= width {
		text = runewidth.Truncate(text, width-2, "…")
	}
	return runewidth.FillRight(text, width)
}
