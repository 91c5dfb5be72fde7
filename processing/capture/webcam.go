package capture

import (
	"fmt"

	"gocv.io/x/gocv"
)

const (
	frameWidth  = 640
	frameHeight = 480
)

// Webcam wraps a gocv capture device. The caller pulls frames one at a
// time; there is no buffering between reads.
type Webcam struct {
	device int
	vc     *gocv.VideoCapture
}

func OpenWebcam(device int) (*Webcam, error) {
	vc, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", device, err)
	}

	vc.Set(gocv.VideoCaptureFrameWidth, frameWidth)
	vc.Set(gocv.VideoCaptureFrameHeight, frameHeight)

	return &Webcam{device: device, vc: vc}, nil
}

// Read pulls the next frame into img. False means no frame was available.
func (w *Webcam) Read(img *gocv.Mat) bool {
	return w.vc.Read(img)
}

func (w *Webcam) Close() error {
	return w.vc.Close()
}
