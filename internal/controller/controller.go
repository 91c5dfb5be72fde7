package controller

import (
	"image"
	"log/slog"
	"sync"

	"emotionview/internal/models"
)

// Feed is one open camera plus its inference pipeline. Next runs a full
// pass and returns the annotated frame; Close releases the device.
type Feed interface {
	Next() (models.Frame, error)
	Close() error
}

// Opener acquires the camera and builds its feed.
type Opener func() (Feed, error)

// View is the display surface the controller drives. Implementations must
// be safe to call from the tick goroutine.
type View interface {
	ShowFrame(image.Image)
	ClearFrame()
	SetStatus(string)
	SetLevels(map[models.Emotion]int)
	SetButton(string)
}

const (
	statusCameraError = "Error: Camera not accessible"
	statusReadError   = "Error: Could not read frame"

	buttonStart = "Start Camera"
	buttonStop  = "Stop Camera"
)

// Controller owns the capture/inference loop state. It is either Idle
// (no feed held) or Running (feed held, ticks expected); the two never
// drift apart because every transition happens under the mutex.
type Controller struct {
	mu   sync.Mutex
	open Opener
	view View
	log  *slog.Logger

	feed Feed
}

func New(open Opener, view View, log *slog.Logger) *Controller {
	return &Controller{
		open: open,
		view: view,
		log:  log,
	}
}

func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.feed != nil
}

// Toggle switches Idle<->Running. A failed camera open reports to the
// view and leaves the controller Idle.
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.feed == nil {
		feed, err := c.open()
		if err != nil {
			c.log.Warn("camera open failed", "error", err)
			c.view.SetStatus(statusCameraError)
			return
		}

		c.feed = feed
		c.view.SetButton(buttonStop)
		c.log.Info("capture started")
		return
	}

	c.release()
	c.view.ClearFrame()
	c.view.SetButton(buttonStart)
	c.log.Info("capture stopped")
}

// Tick runs one pipeline pass. A read failure skips the pass and keeps
// the controller Running; the next tick is the retry.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.feed == nil {
		return
	}

	frame, err := c.feed.Next()
	if err != nil {
		c.log.Warn("frame read failed", "error", err)
		c.view.SetStatus(statusReadError)
		return
	}

	// Multiple faces: the last classified one wins. No detections leave
	// the status line and bars as they were.
	if n := len(frame.Results); n > 0 {
		last := frame.Results[n-1]
		c.view.SetStatus(last.StatusLine())
		c.view.SetLevels(models.BarLevels(last.Label, last.Score))
	}

	c.view.ShowFrame(frame.Image)
}

// Shutdown releases the camera if held. Safe to call repeatedly; the
// window-close intercept relies on it.
func (c *Controller) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.release()
}

func (c *Controller) release() {
	if c.feed == nil {
		return
	}
	if err := c.feed.Close(); err != nil {
		c.log.Warn("feed close failed", "error", err)
	}
	c.feed = nil
}
