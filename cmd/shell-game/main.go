package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"shell-game/internal/config"
	"shell-game/internal/controllers"
	"shell-game/internal/logger"
	"shell-game/internal/models"
	"shell-game/internal/random"
	"shell-game/internal/shutdown"
	"shell-game/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Shell Game"
	AppID      = "com.shellgame.cups"
	AppVersion = "1.0.0"
)

// Application wires the window, the view and the round controller
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.RoundController
	view       *views.MainView
	shutdown   *shutdown.Manager
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "shell-game: %v\n", err)
		os.Exit(2)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shell-game: %v\n", err)
		os.Exit(2)
	}
	appLogger := logger.NewConsoleLogger(level)

	application := NewApplication(cfg, appLogger)
	application.Run()
}

// loadConfig applies defaults, the optional config file, the environment
// and flags in that order.
func loadConfig(args []string) (config.Config, error) {
	cfg := config.Default()

	fs := flag.NewFlagSet("shell-game", flag.ContinueOnError)
	path := fs.String("config", "", "path to a YAML config file")
	seed := fs.Int64("seed", 0, "random seed, 0 picks one from the clock")
	level := fs.String("log-level", "", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *path != "" {
		if err := cfg.LoadFile(*path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "log-level":
			cfg.LogLevel = *level
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewApplication creates the window and wires view and controller
func NewApplication(cfg config.Config, appLogger logger.Logger) *Application {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	geometry := cfg.Geometry()

	window := fyneApp.NewWindow(AppName)
	window.SetFixedSize(true)
	window.Resize(fyne.NewSize(geometry.Canvas.Width+40, geometry.Canvas.Height+120))
	window.CenterOnScreen()

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":       AppVersion,
		"go_version":    runtime.Version(),
		"cups":          geometry.CupCount(),
		"shuffle_steps": cfg.ShuffleSteps,
		"seed":          cfg.Seed,
	})

	view := views.NewMainView(window, geometry, cfg.MoveDuration)
	table := models.NewTable(geometry)
	controller := controllers.NewRoundController(
		table,
		random.NewSeeded(cfg.Seed),
		view.Animator(),
		view,
		appLogger,
		cfg.ShuffleSteps,
	)

	view.SetStartHandler(controller.Start)
	view.SetResetHandler(controller.Reset)
	view.SetCupClickHandler(controller.Click)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: controller,
		view:       view,
		shutdown:   shutdown.NewManager(appLogger),
	}

	view.SetupMenus(application.initiateShutdown)
	application.setupWindowEvents()
	application.setupEventListeners()

	return application
}

// Run shows the window and blocks until the application quits
func (a *Application) Run() {
	a.shutdown.Register(shutdown.Func(func() {
		fyne.Do(a.fyneApp.Quit)
	}))
	a.shutdown.Listen()

	a.view.Show()
	a.fyneApp.Run()

	a.logger.Info("Application", "terminated", nil)
}

// setupWindowEvents asks before closing the window
func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.view.ShowConfirm("Exit", "Leave the table?", func(confirmed bool) {
			if confirmed {
				a.initiateShutdown()
			}
		})
	})
}

func (a *Application) setupEventListeners() {
	a.controller.AddEventListener(controllers.EventRoundResolved, func(data interface{}) error {
		result, ok := data.(controllers.Result)
		if !ok {
			return fmt.Errorf("invalid data type for %s event", controllers.EventRoundResolved)
		}
		if result.Correct {
			a.window.SetTitle(AppName + " - found it")
		} else {
			a.window.SetTitle(AppName + " - missed")
		}
		return nil
	})
	a.controller.AddEventListener(controllers.EventRoundStarted, func(interface{}) error {
		a.window.SetTitle(AppName)
		return nil
	})
}

// initiateShutdown quits without blocking the UI goroutine
func (a *Application) initiateShutdown() {
	go a.shutdown.Shutdown()
}
