package state

const (
	// Margin is the number of screen rows reserved for the header,
	// column header, separator and status line.
	Margin = 8
	// DefaultPadding is the minimum number of context rows kept
	// visible above/below the cursor while scrolling.
	DefaultPadding = 2
)

// JumpDirection selects the target of a selection jump.
type JumpDirection int

const (
	JumpNext JumpDirection = iota
	JumpPrev
)

func (s *AppState) visibleRows() int {
	rows := s.ScreenHeight - Margin
	if rows < 1 {
		rows = 1
	}
	return rows
}

// VisibleRows exposes the listing capacity to the renderer.
func (s *AppState) VisibleRows() int {
	return s.visibleRows()
}

func (s *AppState) moveDown() {
	if len(s.Files) == 0 || s.Cursor >= len(s.Files)-1 {
		return
	}
	s.Cursor++
	// Scroll once the cursor eats into the trailing context, unless
	// the list end is near enough that the tail should settle at the
	// bottom of the viewport instead.
	if s.Cursor >= s.Offset+s.visibleRows()-s.ScrollPadding &&
		len(s.Files)-s.Cursor > s.ScrollPadding {
		s.Offset++
	}
}

func (s *AppState) moveUp() {
	if len(s.Files) == 0 || s.Cursor <= 0 {
		return
	}
	s.Cursor--
	if s.Offset > 0 && s.Cursor-s.Offset < s.ScrollPadding {
		s.Offset--
	}
}

func (s *AppState) jumpToTop() {
	if len(s.Files) == 0 {
		return
	}
	s.Cursor = 0
	s.Offset = 0
}

func (s *AppState) jumpToBottom() {
	if len(s.Files) == 0 {
		return
	}
	s.Cursor = len(s.Files) - 1
	s.Offset = len(s.Files) - s.visibleRows()
	if s.Offset < 0 {
		s.Offset = 0
	}
}

// jumpToSelection moves the cursor to the nearest selected index after
// (JumpNext) or before (JumpPrev) the cursor, wrapping cyclically.
func (s *AppState) jumpToSelection(direction JumpDirection) {
	if len(s.Files) == 0 || s.selection().Count() == 0 {
		return
	}
	indices := s.selection().Indices()

	switch direction {
	case JumpNext:
		target := indices[0]
		for _, idx := range indices {
			if idx > s.Cursor {
				target = idx
				break
			}
		}
		s.Cursor = target
	case JumpPrev:
		target := indices[len(indices)-1]
		for i := len(indices) - 1; i >= 0; i-- {
			if indices[i] < s.Cursor {
				target = indices[i]
				break
			}
		}
		s.Cursor = target
	}

	s.snapOffsetToCursor()
}

func (s *AppState) jumpToFirstSelected() {
	if len(s.Files) == 0 || s.selection().Count() == 0 {
		return
	}
	s.Cursor = s.selection().Indices()[0]
	s.snapOffsetToCursor()
}

// snapOffsetToCursor recomputes the offset after a cursor jump: keep
// the cursor in view with padding context, and pin the viewport to the
// list tail when the cursor lands within padding of the end.
func (s *AppState) snapOffsetToCursor() {
	rows := s.visibleRows()
	n := len(s.Files)

	// The configured padding can exceed what a tiny viewport can hold;
	// shrink it so the offset math keeps the cursor in view and never
	// pushes the offset past the cursor.
	pad := s.ScrollPadding
	if limit := (rows - 1) / 2; pad > limit {
		pad = limit
	}

	switch {
	case s.Cursor < rows-1-pad:
		// Visible without any offset.
		s.Offset = 0
	case s.Cursor < s.Offset+pad:
		// Cursor above the viewport.
		s.Offset = s.Cursor - pad
		if s.Offset < 0 {
			s.Offset = 0
		}
	case s.Cursor-s.Offset > rows-1-pad:
		// Cursor below the viewport.
		if n-s.Cursor <= pad {
			s.Offset = n - rows
		} else {
			s.Offset = s.Cursor - (rows - 1 - pad)
		}
		if s.Offset < 0 {
			s.Offset = 0
		}
	}
}

// clampViewport forces cursor and offset back into range after the
// listing shrank underneath them.
func (s *AppState) clampViewport() {
	n := len(s.Files)
	if n == 0 {
		s.Cursor = 0
		s.Offset = 0
		return
	}
	if s.Cursor >= n {
		s.Cursor = n - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	maxOffset := n - s.visibleRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.Offset > maxOffset {
		s.Offset = maxOffset
	}
	if s.Offset > s.Cursor {
		s.Offset = s.Cursor
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}
