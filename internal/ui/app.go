package ui

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"emotionview/internal/config"
	"emotionview/internal/controller"
	"emotionview/internal/models"
	"emotionview/internal/ui/cwidget"
)

type EmotionApp struct {
	fyneApp fyne.App
	mainWin fyne.Window

	ctrl *controller.Controller
	view *fyneView

	tickInterval time.Duration
	log          *slog.Logger
}

func CreateApp(cfg *config.Config, open controller.Opener, log *slog.Logger) *EmotionApp {
	a := app.New()
	w := a.NewWindow("Emotion Recognition")
	w.Resize(fyne.NewSize(800, 600))

	videoCanvas := canvas.NewImageFromImage(nil)
	videoCanvas.FillMode = canvas.ImageFillContain
	videoCanvas.SetMinSize(fyne.NewSize(640, 480))

	statusLabel := widget.NewLabel("Emotion: Detecting...")

	bars := make(map[models.Emotion]*cwidget.EmotionBar, len(models.Emotions))
	for _, emotion := range models.Emotions {
		bars[emotion] = cwidget.NewEmotionBar(emotion.Title())
	}

	view := &fyneView{
		videoCanvas: videoCanvas,
		statusLabel: statusLabel,
		bars:        bars,
	}

	return &EmotionApp{
		fyneApp:      a,
		mainWin:      w,
		ctrl:         controller.New(open, view, log),
		view:         view,
		tickInterval: cfg.TickInterval,
		log:          log,
	}
}

func (a *EmotionApp) Run() {
	a.view.toggleBtn = widget.NewButton("Start Camera", func() {
		go a.onToggle()
	})

	barBox := container.NewVBox()
	for _, emotion := range models.Emotions {
		barBox.Add(a.view.bars[emotion])
	}

	content := container.NewVBox(
		a.view.videoCanvas,
		a.view.statusLabel,
		widget.NewSeparator(),
		barBox,
		a.view.toggleBtn,
	)

	a.mainWin.SetContent(content)

	// Release the device on every exit path, window close included.
	a.mainWin.SetCloseIntercept(func() {
		a.ctrl.Shutdown()
		a.mainWin.Close()
	})

	a.mainWin.CenterOnScreen()
	a.mainWin.ShowAndRun()
}

func (a *EmotionApp) onToggle() {
	wasRunning := a.ctrl.Running()
	a.ctrl.Toggle()

	if !wasRunning && a.ctrl.Running() {
		go a.runTickLoop()
	}
}

// runTickLoop drives the controller at the configured cadence. Each pass
// runs to completion before the next fires, so a slow detection simply
// lowers the frame rate.
func (a *EmotionApp) runTickLoop() {
	ticker := time.NewTicker(a.tickInterval)
	defer ticker.Stop()

	for range ticker.C {
		if !a.ctrl.Running() {
			return
		}
		a.ctrl.Tick()
	}
}
