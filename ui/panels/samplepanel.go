// Package panels provides the viewer's UI panels.
package panels

import (
	"fmt"
	"image"
	"path/filepath"

	"chartqa-viewer/internal/app"
	"chartqa-viewer/internal/dataset"
	"chartqa-viewer/internal/imaging"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SamplePanel shows the navigation bar and the misleading/original image
// pair for the current sample.
type SamplePanel struct {
	state *app.State

	prevButton   *widget.Button
	nextButton   *widget.Button
	sampleSelect *widget.Select
	countLabel   *widget.Label

	figureImage      *canvas.Image
	figureStatus     *widget.Label
	screenshotImage  *canvas.Image
	screenshotStatus *widget.Label

	navBar fyne.CanvasObject
	images fyne.CanvasObject

	// Suppresses the Select callback while the dropdown is being synced to a
	// navigation result.
	updating bool
}

// NewSamplePanel creates the navigation and image panel.
func NewSamplePanel(state *app.State) *SamplePanel {
	sp := &SamplePanel{state: state}

	sp.countLabel = widget.NewLabel("0/0")
	sp.figureStatus = widget.NewLabel("No image found")
	sp.figureStatus.Wrapping = fyne.TextWrapWord
	sp.screenshotStatus = widget.NewLabel("No image found")
	sp.screenshotStatus.Wrapping = fyne.TextWrapWord

	sp.figureImage = newSampleImage()
	sp.screenshotImage = newSampleImage()

	sp.prevButton = widget.NewButton("Previous", func() {
		state.Previous()
	})
	sp.nextButton = widget.NewButton("Next", func() {
		state.Next()
	})
	sp.sampleSelect = widget.NewSelect(nil, func(selected string) {
		if sp.updating {
			return
		}
		state.SelectID(selected)
	})
	sp.sampleSelect.PlaceHolder = "Select Sample"

	sp.navBar = container.NewBorder(
		nil, nil,
		sp.prevButton,
		container.NewHBox(sp.countLabel, sp.nextButton),
		sp.sampleSelect,
	)

	figureBox := container.NewVBox(
		widget.NewLabelWithStyle("Misleading Image", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		container.NewStack(sp.figureImage, container.NewCenter(sp.figureStatus)),
	)
	screenshotBox := container.NewVBox(
		widget.NewLabelWithStyle("Original Image (Screenshot)", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		container.NewStack(sp.screenshotImage, container.NewCenter(sp.screenshotStatus)),
	)
	sp.images = container.NewGridWithColumns(2, figureBox, screenshotBox)

	return sp
}

// NavBar returns the previous/select/count/next bar.
func (sp *SamplePanel) NavBar() fyne.CanvasObject {
	return sp.navBar
}

// Images returns the side-by-side image pair.
func (sp *SamplePanel) Images() fyne.CanvasObject {
	return sp.images
}

// SetCatalog replaces the dropdown options after a dataset load.
func (sp *SamplePanel) SetCatalog(ids []string) {
	sp.updating = true
	sp.sampleSelect.SetOptions(ids)
	sp.sampleSelect.ClearSelected()
	sp.updating = false
}

// Refresh updates the panel from one navigation result.
func (sp *SamplePanel) Refresh(view dataset.View, imageHeight int) {
	sp.countLabel.SetText(view.Position)

	sp.updating = true
	if view.ID == "" {
		sp.sampleSelect.ClearSelected()
	} else {
		sp.sampleSelect.SetSelected(view.ID)
	}
	sp.updating = false

	sp.setImage(sp.figureImage, sp.figureStatus,
		view.Sample.Figure, view.Sample.FigurePath, view.Sample.FigureErr, imageHeight)
	sp.setImage(sp.screenshotImage, sp.screenshotStatus,
		view.Sample.Screenshot, view.Sample.ScreenshotPath, view.Sample.ScreenshotErr, imageHeight)
}

// setImage shows either the decoded image or a placeholder message. A
// decode failure is reported distinctly from a missing file.
func (sp *SamplePanel) setImage(img *canvas.Image, status *widget.Label, pixels image.Image, path string, decodeErr error, height int) {
	switch {
	case decodeErr != nil:
		img.Image = nil
		img.Hide()
		status.SetText(fmt.Sprintf("Could not decode %s", filepath.Base(path)))
		status.Show()
		sp.state.Notify(fmt.Sprintf("Decode failed: %v", decodeErr))
	case pixels == nil:
		img.Image = nil
		img.Hide()
		status.SetText("No image found")
		status.Show()
	default:
		img.Image = imaging.FitHeight(pixels, height)
		status.Hide()
		img.Show()
		img.Refresh()
	}
}

func newSampleImage() *canvas.Image {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(224, 224))
	return img
}
