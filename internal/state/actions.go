package state

// Action is the base interface for all state mutations.
type Action interface{}

// ===== MOVEMENT ACTIONS =====

type MoveUpAction struct{}
type MoveDownAction struct{}
type JumpTopAction struct{}
type JumpBottomAction struct{}
type JumpNextSelectedAction struct{}
type JumpPrevSelectedAction struct{}

// ===== SELECTION ACTIONS =====

type ToggleSelectAction struct{}
type SelectAllAction struct{}
type ClearSelectionAction struct{}

// ===== DIRECTORY ACTIONS =====

type EnterAction struct{}    // descend into dir under cursor, or open file
type GoParentAction struct{}
type GoHomeAction struct{}
type GoToPathAction struct {
	Path string
}
type RefreshAction struct{}
type ToggleDotfilesAction struct{}

// ===== FILE ACTIONS =====

type OpenEntryAction struct{}

// ===== PROMPT ACTIONS =====

type PromptOpenAction struct {
	Kind PromptKind
}
type PromptInsertAction struct {
	Rune rune
}
type PromptBackspaceAction struct{}
type PromptDeleteAction struct{}
type PromptMoveLeftAction struct{}
type PromptMoveRightAction struct{}
type PromptHistoryPrevAction struct{}
type PromptHistoryNextAction struct{}
type PromptCommitAction struct{}
type PromptCancelAction struct{}

// ===== OUTPUT SCREEN ACTIONS =====

type CloseOutputAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}
