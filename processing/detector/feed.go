package detector

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"emotionview/internal/models"
	"emotionview/processing/capture"
)

// ErrNoFrame is returned when the device yields no frame this pass. The
// caller simply retries on its next tick.
var ErrNoFrame = errors.New("no frame available")

// Feed joins an open webcam to the inference pipeline. One Next call is
// one complete pass; the frame Mat is reused between passes.
type Feed struct {
	cam  *capture.Webcam
	pipe *Pipeline
	img  gocv.Mat
}

func NewFeed(cam *capture.Webcam, pipe *Pipeline) *Feed {
	return &Feed{
		cam:  cam,
		pipe: pipe,
		img:  gocv.NewMat(),
	}
}

func (f *Feed) Next() (models.Frame, error) {
	if ok := f.cam.Read(&f.img); !ok || f.img.Empty() {
		return models.Frame{}, ErrNoFrame
	}

	results := f.pipe.Process(&f.img)

	img, err := f.img.ToImage()
	if err != nil {
		return models.Frame{}, fmt.Errorf("convert frame: %w", err)
	}

	return models.Frame{Image: img, Results: results}, nil
}

func (f *Feed) Close() error {
	f.img.Close()
	return f.cam.Close()
}
