package state

import (
	"errors"
	"testing"
)

func navState(names ...string) *AppState {
	s := NewAppState("/test")
	for _, name := range names {
		s.Files = append(s.Files, FileEntry{Name: name, Kind: 2})
	}
	s.ScreenHeight = 24
	s.ScreenWidth = 80
	return s
}

func TestMoveDown(t *testing.T) {
	s := navState("a", "b", "c")
	r := newTestReducer(nil, nil)

	if err := r.Reduce(s, MoveDownAction{}); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}
	if s.Cursor != 1 {
		t.Errorf("expected cursor 1, got %d", s.Cursor)
	}
}

func TestMoveDownAtEnd(t *testing.T) {
	s := navState("a", "b")
	s.Cursor = 1
	r := newTestReducer(nil, nil)

	if err := r.Reduce(s, MoveDownAction{}); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}
	if s.Cursor != 1 {
		t.Errorf("should stay at 1, got %d", s.Cursor)
	}
}

func TestMoveUpAtStart(t *testing.T) {
	s := navState("a", "b")
	r := newTestReducer(nil, nil)

	if err := r.Reduce(s, MoveUpAction{}); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}
	if s.Cursor != 0 {
		t.Errorf("should stay at 0, got %d", s.Cursor)
	}
}

func TestEnterDirectoryResetsState(t *testing.T) {
	listing := &fakeListing{entries: map[string][]FileEntry{
		"/test/sub": {{Name: "inner.txt", Kind: 2}},
	}}
	orig := listDirectoryFn
	listDirectoryFn = listing.list
	defer func() { listDirectoryFn = orig }()

	s := navState("x")
	s.Files = []FileEntry{{Name: "sub", Kind: 0}, {Name: "x", Kind: 2}}
	s.Cursor = 0
	s.Offset = 0
	s.selection().Toggle(1)
	s.setInfo("1 item selected")

	r := newTestReducer(nil, nil)
	if err := r.Reduce(s, EnterAction{}); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}

	if s.CurrentPath != "/test/sub" {
		t.Errorf("expected /test/sub, got %q", s.CurrentPath)
	}
	if len(s.Files) != 1 || s.Files[0].Name != "inner.txt" {
		t.Errorf("unexpected listing: %v", s.Files)
	}
	if s.Cursor != 0 || s.Offset != 0 {
		t.Errorf("viewport not reset: %d/%d", s.Cursor, s.Offset)
	}
	if s.selection().Count() != 0 {
		t.Error("selection not cleared on directory change")
	}
	if s.Message != nil {
		t.Error("status message not cleared on directory change")
	}
}

func TestGoParent(t *testing.T) {
	listing := &fakeListing{entries: map[string][]FileEntry{
		"/test": {{Name: "sub", Kind: 0}},
	}}
	orig := listDirectoryFn
	listDirectoryFn = listing.list
	defer func() { listDirectoryFn = orig }()

	s := navState("a")
	s.CurrentPath = "/test/sub"

	r := newTestReducer(nil, nil)
	if err := r.Reduce(s, GoParentAction{}); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}
	if s.CurrentPath != "/test" {
		t.Errorf("expected /test, got %q", s.CurrentPath)
	}
}

func TestGoParentAtRoot(t *testing.T) {
	listing := &fakeListing{}
	orig := listDirectoryFn
	listDirectoryFn = listing.list
	defer func() { listDirectoryFn = orig }()

	s := navState("a")
	s.CurrentPath = "/"

	r := newTestReducer(nil, nil)
	if err := r.Reduce(s, GoParentAction{}); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}
	if s.CurrentPath != "/" {
		t.Errorf("root should be terminal, got %q", s.CurrentPath)
	}
	if len(listing.calls) != 0 {
		t.Error("no listing should be attempted at root")
	}
}

func TestUnreadableDirectoryKeepsState(t *testing.T) {
	listing := &fakeListing{err: errors.New("permission denied")}
	orig := listDirectoryFn
	listDirectoryFn = listing.list
	defer func() { listDirectoryFn = orig }()

	s := navState("sub", "x")
	s.Files[0].Kind = 0
	s.Cursor = 0
	s.selection().Toggle(1)

	r := newTestReducer(nil, nil)
	if err := r.Reduce(s, EnterAction{}); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}

	if s.CurrentPath != "/test" {
		t.Errorf("path changed on failed read: %q", s.CurrentPath)
	}
	if len(s.Files) != 2 {
		t.Errorf("listing replaced on failed read: %v", s.Files)
	}
	if !s.selection().Contains(1) {
		t.Error("selection lost on failed read")
	}
	if s.Message == nil || s.Message.Level != MessageError {
		t.Errorf("expected error status message, got %+v", s.Message)
	}
}

func TestGoHome(t *testing.T) {
	listing := &fakeListing{entries: map[string][]FileEntry{
		"/home/user": {{Name: "docs", Kind: 0}},
	}}
	origList := listDirectoryFn
	listDirectoryFn = listing.list
	defer func() { listDirectoryFn = origList }()

	origHome := userHomeDirFn
	userHomeDirFn = func() (string, error) { return "/home/user", nil }
	defer func() { userHomeDirFn = origHome }()

	s := navState("a")
	r := newTestReducer(nil, nil)
	if err := r.Reduce(s, GoHomeAction{}); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}
	if s.CurrentPath != "/home/user" {
		t.Errorf("expected /home/user, got %q", s.CurrentPath)
	}
}

func TestGotoInvalidPath(t *testing.T) {
	s := navState("a")
	before := s.CurrentPath

	r := newTestReducer(nil, nil)
	if err := r.Reduce(s, GoToPathAction{Path: "/does/not/exist/anywhere"}); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}

	if s.CurrentPath != before {
		t.Errorf("path changed on invalid goto: %q", s.CurrentPath)
	}
	if s.Message == nil || s.Message.Level != MessageError {
		t.Errorf("expected error message, got %+v", s.Message)
	}
}

func TestRefreshPreservesViewport(t *testing.T) {
	listing := &fakeListing{entries: map[string][]FileEntry{
		"/test": {
			{Name: "a", Kind: 2}, {Name: "b", Kind: 2},
			{Name: "c", Kind: 2}, {Name: "d", Kind: 2},
		},
	}}
	orig := listDirectoryFn
	listDirectoryFn = listing.list
	defer func() { listDirectoryFn = orig }()

	s := navState("a", "b", "c", "d")
	s.ScreenHeight = Margin + 2 // two visible rows
	s.Cursor = 2
	s.Offset = 1
	s.selection().Toggle(0)

	r := newTestReducer(nil, nil)
	if err := r.Reduce(s, RefreshAction{}); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}

	if s.Cursor != 2 || s.Offset != 1 {
		t.Errorf("viewport not preserved: %d/%d", s.Cursor, s.Offset)
	}
	if s.selection().Count() != 0 {
		t.Error("selection must be cleared when the listing is replaced")
	}
}

func TestRefreshClampsShrunkListing(t *testing.T) {
	listing := &fakeListing{entries: map[string][]FileEntry{
		"/test": {{Name: "only", Kind: 2}},
	}}
	orig := listDirectoryFn
	listDirectoryFn = listing.list
	defer func() { listDirectoryFn = orig }()

	s := navState("a", "b", "c", "d", "e")
	s.Cursor = 4
	s.Offset = 3

	r := newTestReducer(nil, nil)
	if err := r.Reduce(s, RefreshAction{}); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}

	if s.Cursor != 0 || s.Offset != 0 {
		t.Errorf("viewport not clamped: %d/%d", s.Cursor, s.Offset)
	}
}

func TestToggleDotfiles(t *testing.T) {
	listing := &fakeListing{entries: map[string][]FileEntry{
		"/test": {{Name: ".hidden", Kind: 2}, {Name: "shown", Kind: 2}},
	}}
	orig := listDirectoryFn
	listDirectoryFn = listing.list
	defer func() { listDirectoryFn = orig }()

	s := navState(".hidden", "shown")
	s.Cursor = 1
	s.selection().Toggle(0)

	r := newTestReducer(nil, nil)
	if err := r.Reduce(s, ToggleDotfilesAction{}); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}

	if s.ShowDotfiles {
		t.Error("expected dotfiles hidden")
	}
	if len(s.Files) != 1 || s.Files[0].Name != "shown" {
		t.Errorf("unexpected listing: %v", s.Files)
	}
	if s.Cursor != 0 || s.Offset != 0 || s.selection().Count() != 0 {
		t.Error("toggle must reset viewport and selection")
	}

	if err := r.Reduce(s, ToggleDotfilesAction{}); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}
	if !s.ShowDotfiles || len(s.Files) != 2 {
		t.Errorf("expected dotfiles back, got %v", s.Files)
	}
}

func TestToggleDotfilesKeepsFlagOnError(t *testing.T) {
	listing := &fakeListing{err: errors.New("gone")}
	orig := listDirectoryFn
	listDirectoryFn = listing.list
	defer func() { listDirectoryFn = orig }()

	s := navState("a")
	r := newTestReducer(nil, nil)
	if err := r.Reduce(s, ToggleDotfilesAction{}); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}

	if !s.ShowDotfiles {
		t.Error("flag flipped even though the re-read failed")
	}
	if s.Message == nil {
		t.Error("expected error message")
	}
}

func TestResizeClampsViewport(t *testing.T) {
	s := navState("a", "b", "c")
	s.Cursor = 2
	s.Offset = 2

	r := newTestReducer(nil, nil)
	if err := r.Reduce(s, ResizeAction{Width: 80, Height: 40}); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}
	if s.ScreenHeight != 40 {
		t.Errorf("height not applied: %d", s.ScreenHeight)
	}
	if s.Offset > s.Cursor {
		t.Errorf("offset %d > cursor %d after resize", s.Offset, s.Cursor)
	}
}
