package state

// PromptKind identifies which command a prompt feeds and which history
// stack it uses.
type PromptKind int

const (
	PromptSearch PromptKind = iota
	PromptGoto
	PromptExec
)

// String returns the label shown in the prompt header.
func (k PromptKind) String() string {
	switch k {
	case PromptSearch:
		return "search"
	case PromptGoto:
		return "goto"
	default:
		return "exec"
	}
}

// PromptState is the line editor for an open prompt: an editable
// buffer, a cursor within it, and a position in the per-kind history.
// HistoryIndex 0 means the fresh, uncommitted buffer; index i > 0
// refers to the i-th most recent committed entry.
type PromptState struct {
	Kind         PromptKind
	Buffer       []rune
	Cursor       int
	HistoryIndex int
}

// NewPromptState opens a fresh prompt of the given kind.
func NewPromptState(kind PromptKind) *PromptState {
	return &PromptState{Kind: kind}
}

// Text returns the buffer contents.
func (p *PromptState) Text() string {
	return string(p.Buffer)
}

// Insert places r at the cursor and advances it.
func (p *PromptState) Insert(r rune) {
	p.Buffer = append(p.Buffer, 0)
	copy(p.Buffer[p.Cursor+1:], p.Buffer[p.Cursor:])
	p.Buffer[p.Cursor] = r
	p.Cursor++
}

// DeleteBefore removes the rune before the cursor (backspace).
func (p *PromptState) DeleteBefore() {
	if len(p.Buffer) == 0 || p.Cursor == 0 {
		return
	}
	p.Cursor--
	p.Buffer = append(p.Buffer[:p.Cursor], p.Buffer[p.Cursor+1:]...)
}

// DeleteAt removes the rune under the cursor (forward delete).
func (p *PromptState) DeleteAt() {
	if p.Cursor >= len(p.Buffer) {
		return
	}
	p.Buffer = append(p.Buffer[:p.Cursor], p.Buffer[p.Cursor+1:]...)
}

// MoveLeft moves the cursor one rune left.
func (p *PromptState) MoveLeft() {
	if p.Cursor > 0 {
		p.Cursor--
	}
}

// MoveRight moves the cursor one rune right.
func (p *PromptState) MoveRight() {
	if p.Cursor < len(p.Buffer) {
		p.Cursor++
	}
}

// HistoryPrev replaces the buffer with the next older history entry,
// most recent first.
func (p *PromptState) HistoryPrev(history []string) {
	if len(history) == 0 || p.HistoryIndex >= len(history) {
		return
	}
	p.HistoryIndex++
	p.setText(history[len(history)-p.HistoryIndex])
}

// HistoryNext walks back toward the present; from the most recent
// entry it restores a fresh empty buffer.
func (p *PromptState) HistoryNext(history []string) {
	if len(history) == 0 || p.HistoryIndex == 0 {
		return
	}
	if p.HistoryIndex > 1 {
		p.HistoryIndex--
		p.setText(history[len(history)-p.HistoryIndex])
		return
	}
	p.HistoryIndex = 0
	p.setText("")
}

func (p *PromptState) setText(text string) {
	p.Buffer = []rune(text)
	p.Cursor = len(p.Buffer)
}
