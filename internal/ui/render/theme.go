package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	DirectoryFg tcell.Color
	SymlinkFg   tcell.Color
	FileFg      tcell.Color
	CursorBg    tcell.Color
	CursorFg    tcell.Color
	SelectionFg tcell.Color
	WarnFg      tcell.Color
	ErrorFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		DirectoryFg: tcell.Color33,
		SymlinkFg:   tcell.Color51,
		FileFg:      tcell.ColorDefault,
		CursorBg:    tcell.Color33,
		CursorFg:    tcell.ColorWhite,
		SelectionFg: tcell.Color214,
		WarnFg:      tcell.ColorYellow,
		ErrorFg:     tcell.ColorRed,
	}
}
