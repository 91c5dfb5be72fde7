package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"emotionview/internal/models"
	"emotionview/internal/ui/cwidget"
)

// fyneView adapts the controller's display surface onto the widget tree.
// Every mutation goes through fyne.Do since the controller runs on the
// tick goroutine.
type fyneView struct {
	videoCanvas *canvas.Image
	statusLabel *widget.Label
	bars        map[models.Emotion]*cwidget.EmotionBar
	toggleBtn   *widget.Button
}

func (v *fyneView) ShowFrame(img image.Image) {
	fyne.Do(func() {
		v.videoCanvas.Image = img
		v.videoCanvas.Refresh()
	})
}

func (v *fyneView) ClearFrame() {
	fyne.Do(func() {
		v.videoCanvas.Image = nil
		v.videoCanvas.Refresh()
	})
}

func (v *fyneView) SetStatus(text string) {
	fyne.Do(func() {
		v.statusLabel.SetText(text)
	})
}

func (v *fyneView) SetLevels(levels map[models.Emotion]int) {
	fyne.Do(func() {
		for emotion, bar := range v.bars {
			bar.SetLevel(levels[emotion])
		}
	})
}

func (v *fyneView) SetButton(text string) {
	fyne.Do(func() {
		v.toggleBtn.SetText(text)
	})
}
