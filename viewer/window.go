package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// Show opens a window titled title holding img at its native size and blocks
// until the user closes it.
func Show(title string, img image.Image) {
	a := app.New()
	w := a.NewWindow(title)

	chart := canvas.NewImageFromImage(img)
	chart.FillMode = canvas.ImageFillContain

	b := img.Bounds()
	size := fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
	chart.SetMinSize(size)

	w.SetContent(chart)
	w.Resize(size)
	w.ShowAndRun()
}
