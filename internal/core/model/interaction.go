package model

// FileEvent represents a file system event
type FileEvent struct {
	Path      string
	Operation string
}

// DisplayMode is what the watch screen is currently showing
type DisplayMode int

const (
	ModeNormal DisplayMode = iota
	ModeHelp
	ModeDialog
)

// InteractionState represents the current UI interaction state
type InteractionState struct {
	ShowHelp      bool
	LayoutStyle   int    // 0: Full, 1: Minimal
	StatusMessage string // Status message to display
	ConfirmDialog *ConfirmDialog
}

// ConfirmDialog represents a confirmation dialog
type ConfirmDialog struct {
	Title     string
	Message   string
	OnConfirm func()
	OnCancel  func()
}
