package views

import (
	"time"

	"shell-game/internal/models"
	"shell-game/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// MainView is the single game window: toolbar, table and status bar
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	table         *Table
	statusBar     *components.StatusBar
	animator      *CupAnimator

	// Event handlers - connected to controller
	startHandler    func()
	resetHandler    func()
	cupClickHandler func(int)
}

// NewMainView creates the game view for geometry g. Cup moves take
// duration each.
func NewMainView(window fyne.Window, g models.Geometry, duration time.Duration) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(g, duration)
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents(g models.Geometry, duration time.Duration) {
	mv.toolbar = components.NewToolbar()
	mv.statusBar = components.NewStatusBar()
	mv.table = NewTable(g, func(index int) {
		if mv.cupClickHandler != nil {
			mv.cupClickHandler(index)
		}
	})
	mv.animator = NewCupAnimator(mv.table.Cups(), g.RaiseBy, duration)
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),   // top
		mv.statusBar.GetContainer(), // bottom
		nil,
		nil,
		mv.table.GetContainer(), // center
	)

	if mv.window != nil {
		mv.window.SetContent(mv.mainContainer)
	}
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetStartHandler(func() {
		if mv.startHandler != nil {
			mv.startHandler()
		}
	})

	mv.toolbar.SetResetHandler(func() {
		if mv.resetHandler != nil {
			mv.resetHandler()
		}
	})
}

// SetupMenus installs the Game menu on the window
func (mv *MainView) SetupMenus(quit func()) {
	gameMenu := fyne.NewMenu("Game",
		fyne.NewMenuItem("Start game", func() {
			if mv.startHandler != nil && !mv.toolbar.StartButton().Disabled() {
				mv.startHandler()
			}
		}),
		fyne.NewMenuItem("Reset table", func() {
			if mv.resetHandler != nil && !mv.toolbar.ResetButton().Disabled() {
				mv.resetHandler()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", quit),
	)
	gameMenu.Items[len(gameMenu.Items)-1].IsQuit = true

	mv.window.SetMainMenu(fyne.NewMainMenu(gameMenu))
}

// Event handler setters - called by the application wiring

// SetStartHandler sets the handler for start requests
func (mv *MainView) SetStartHandler(handler func()) {
	mv.startHandler = handler
}

// SetResetHandler sets the handler for reset requests
func (mv *MainView) SetResetHandler(handler func()) {
	mv.resetHandler = handler
}

// SetCupClickHandler sets the handler for cup taps
func (mv *MainView) SetCupClickHandler(handler func(int)) {
	mv.cupClickHandler = handler
}

// UI update methods - called by controller

// SetStatus updates the status message
func (mv *MainView) SetStatus(message string) {
	mv.statusBar.SetStatus(message)
}

// SetPhase shows the round phase next to the status
func (mv *MainView) SetPhase(phase string) {
	mv.statusBar.SetPhase(phase)
}

// ShowBall draws the ball at a table position
func (mv *MainView) ShowBall(at models.Position) {
	mv.table.ShowBall(at)
}

// HideBall hides the ball
func (mv *MainView) HideBall() {
	mv.table.HideBall()
}

// SetCupsEnabled opens or closes the cup input gate
func (mv *MainView) SetCupsEnabled(enabled bool) {
	mv.table.SetCupsEnabled(enabled)
}

// SetStartEnabled enables the game actions
func (mv *MainView) SetStartEnabled(enabled bool) {
	mv.toolbar.SetActionsEnabled(enabled)
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// Animator returns the animator bound to the table cups
func (mv *MainView) Animator() *CupAnimator {
	return mv.animator
}

// Table returns the game canvas
func (mv *MainView) Table() *Table {
	return mv.table
}

// Toolbar returns the action toolbar
func (mv *MainView) Toolbar() *components.Toolbar {
	return mv.toolbar
}

// StatusBar returns the status bar
func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}
