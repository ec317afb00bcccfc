package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the game actions
type Toolbar struct {
	container   *fyne.Container
	startButton *widget.Button
	resetButton *widget.Button

	// Event handlers
	startHandler func()
	resetHandler func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

// createComponents initializes all toolbar components
func (t *Toolbar) createComponents() {
	t.startButton = widget.NewButton("Start game", func() {
		if t.startHandler != nil {
			t.startHandler()
		}
	})
	t.startButton.Importance = widget.HighImportance

	t.resetButton = widget.NewButton("Reset table", func() {
		if t.resetHandler != nil {
			t.resetHandler()
		}
	})
	t.resetButton.Importance = widget.MediumImportance
}

// buildLayout constructs the toolbar layout
func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		layout.NewSpacer(),
		t.startButton,
		t.resetButton,
		layout.NewSpacer(),
	)
}

// SetStartHandler sets the start button callback
func (t *Toolbar) SetStartHandler(handler func()) {
	t.startHandler = handler
}

// SetResetHandler sets the reset button callback
func (t *Toolbar) SetResetHandler(handler func()) {
	t.resetHandler = handler
}

// SetActionsEnabled enables or disables both buttons; actions are only
// available between animation sequences.
func (t *Toolbar) SetActionsEnabled(enabled bool) {
	if enabled {
		t.startButton.Enable()
		t.resetButton.Enable()
	} else {
		t.startButton.Disable()
		t.resetButton.Disable()
	}
}

// StartButton exposes the start button for tests and shortcuts.
func (t *Toolbar) StartButton() *widget.Button {
	return t.startButton
}

// ResetButton exposes the reset button.
func (t *Toolbar) ResetButton() *widget.Button {
	return t.resetButton
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
