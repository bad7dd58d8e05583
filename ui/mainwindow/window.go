// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"

	"chartqa-viewer/internal/app"
	"chartqa-viewer/internal/config"
	"chartqa-viewer/internal/dataset"
	"chartqa-viewer/internal/version"
	"chartqa-viewer/ui/panels"
	"chartqa-viewer/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const windowTitle = "Misleading Chart QA Viewer"

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs

	samplePanel *panels.SamplePanel
	dataPanel   *panels.DataPanel
	qaPanel     *panels.QAPanel
	statusBar   *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(windowTitle)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	return mw
}

// setupUI creates the main layout: navigation bar on top, the image pair
// next to the CSV table, the QA tree below, status bar at the bottom.
func (mw *MainWindow) setupUI() {
	mw.samplePanel = panels.NewSamplePanel(mw.state)
	mw.dataPanel = panels.NewDataPanel()
	mw.qaPanel = panels.NewQAPanel()
	mw.statusBar = widget.NewLabel("Ready")

	upper := container.NewHSplit(
		mw.samplePanel.Images(),
		mw.dataPanel.Container(),
	)
	upper.SetOffset(0.5)

	body := container.NewVSplit(upper, mw.qaPanel.Container())
	body.SetOffset(0.6)

	content := container.NewBorder(
		mw.samplePanel.NavBar(),           // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		body,                              // center
	)

	mw.SetContent(content)

	cfg := mw.state.Config()
	w, h := cfg.UI.WindowWidth, cfg.UI.WindowHeight
	if pw, ph := mw.prefs.WindowSize(); pw > 0 && ph > 0 {
		w, h = pw, ph
	}
	if w > 0 && h > 0 {
		mw.Resize(fyne.NewSize(float32(w), float32(h)))
	}
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Dataset...", mw.onOpenDataset),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	navigateMenu := fyne.NewMenu("Navigate",
		fyne.NewMenuItem("Previous Sample", func() { mw.state.Previous() }),
		fyne.NewMenuItem("Next Sample", func() { mw.state.Next() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("First Sample", func() { mw.state.SelectIndex(0) }),
		fyne.NewMenuItem("Last Sample", func() {
			mw.state.SelectIndex(mw.state.Catalog().Len() - 1)
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, navigateMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventDatasetLoaded, func(data any) {
		if catalog, ok := data.(dataset.Catalog); ok {
			mw.samplePanel.SetCatalog(catalog.IDs())
			mw.updateStatus(fmt.Sprintf("Loaded %d samples", catalog.Len()))
		}
	})

	mw.state.On(app.EventSampleLoaded, func(data any) {
		view, ok := data.(dataset.View)
		if !ok {
			return
		}
		mw.samplePanel.Refresh(view, mw.state.Config().UI.ImageHeight)
		mw.dataPanel.SetTable(view.Sample.Data)
		mw.qaPanel.SetAnnotation(view.Sample.QA)

		if view.ID != "" {
			mw.SetTitle(windowTitle + " - " + view.ID)
			mw.prefs.SetLastSampleID(view.ID)
		} else {
			mw.SetTitle(windowTitle)
		}
	})

	mw.state.On(app.EventStatus, func(data any) {
		if msg, ok := data.(string); ok {
			mw.updateStatus(msg)
		}
	})
}

// RestoreSession reopens the dataset and sample from the previous run.
// Returns false when there is no previous session or it can no longer be
// loaded.
func (mw *MainWindow) RestoreSession() bool {
	dir := mw.prefs.DatasetDir()
	if dir == "" {
		return false
	}

	if err := mw.state.LoadDataset(config.Default(dir)); err != nil {
		log.Printf("Failed to restore dataset %s: %v", dir, err)
		mw.updateStatus("Previous dataset unavailable: " + dir)
		return false
	}

	if last := mw.prefs.LastSampleID(); last != "" {
		mw.state.SelectID(last)
	} else {
		mw.state.Current()
	}
	return true
}

// SavePreferences persists the session preferences, capturing the current
// window size first.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		mw.prefs.SetWindowSize(int(size.Width), int(size.Height))
	}
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

// SavePreferencesIfChanged persists preferences only when they differ from
// the last saved state. Safe to call from a background goroutine.
func (mw *MainWindow) SavePreferencesIfChanged() {
	if mw.prefs.Changed() {
		if err := mw.prefs.Save(); err != nil {
			log.Printf("Failed to save preferences: %v", err)
		}
	}
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) onOpenDataset() {
	fd := dialog.NewFolderOpen(func(list fyne.ListableURI, err error) {
		if err != nil || list == nil {
			return
		}
		dir := list.Path()
		if err := mw.state.LoadDataset(config.Default(dir)); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.prefs.SetDatasetDir(dir)
		mw.state.Current()
	}, mw.Window)
	fd.Show()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+windowTitle,
		fmt.Sprintf("%s v%s\n\n"+
			"A browser for misleading chart QA datasets:\n"+
			"figures, original screenshots, CSV data, and QA annotations.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			windowTitle, version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
