// Package main provides the entry point for the Misleading Chart QA Viewer.
package main

import (
	"flag"
	"log"
	"time"

	"chartqa-viewer/internal/app"
	"chartqa-viewer/internal/config"
	"chartqa-viewer/internal/version"
	"chartqa-viewer/ui/mainwindow"
	"chartqa-viewer/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

const appTitle = "Misleading Chart QA Viewer"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	configPath := flag.String("config", "", "Path to a TOML config file")
	flag.Parse()

	fyneApp := fyneapp.NewWithID("chartqa-viewer")
	fyneApp.Settings().SetTheme(&app.ViewerTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// Dataset selection: explicit config file, then a dataset directory
	// argument, then the previous session. An explicitly requested dataset
	// that cannot be opened is the one fatal startup condition.
	switch {
	case *configPath != "":
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", *configPath, err)
		}
		if err := appState.LoadDataset(cfg); err != nil {
			log.Fatalf("Failed to open dataset: %v", err)
		}
		appPrefs.SetConfigPath(*configPath)
		appState.Current()
	case flag.NArg() > 0:
		dir := flag.Arg(0)
		if err := appState.LoadDataset(config.Default(dir)); err != nil {
			log.Fatalf("Failed to open dataset %s: %v", dir, err)
		}
		appPrefs.SetDatasetDir(dir)
		appState.Current()
	default:
		if !win.RestoreSession() {
			log.Println("No dataset loaded; use File > Open Dataset...")
		}
	}

	setupHotReload(win)

	win.ShowAndRun()
	win.SavePreferences()
}

// setupHotReload configures automatic restart detection when the binary is
// recompiled.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	log.Printf("Hot reload: watching %s (modified %s)",
		reloader.ExecPath(), reloader.StartupTime().Format("15:04:05"))

	reloader.OnTick(func() {
		win.SavePreferencesIfChanged()
	})

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if !restart {
					reloader.ResetBaseline()
					reloader.Start()
					return
				}
				log.Println("Hot reload: saving preferences before restart...")
				win.SavePreferences()
				log.Println("Hot reload: restarting...")
				if err := reloader.Restart(); err != nil {
					log.Printf("Hot reload: restart failed: %v", err)
				}
			}, win.Window)
	})

	reloader.Start()
}
