package detector

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Haar cascade parameters; tuned the same for every frame.
const (
	cascadeScale        = 1.1
	cascadeMinNeighbors = 5
	cascadeMinFacePx    = 30
)

// FaceDetector finds axis-aligned face boxes in a grayscale frame.
type FaceDetector struct {
	classifier gocv.CascadeClassifier
}

func NewFaceDetector(cascadePath string) (*FaceDetector, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(cascadePath) {
		classifier.Close()
		return nil, fmt.Errorf("load cascade file %s", cascadePath)
	}
	return &FaceDetector{classifier: classifier}, nil
}

// Detect returns face boxes in detector order.
func (d *FaceDetector) Detect(gray gocv.Mat) []image.Rectangle {
	return d.classifier.DetectMultiScaleWithParams(
		gray,
		cascadeScale,
		cascadeMinNeighbors,
		0,
		image.Pt(cascadeMinFacePx, cascadeMinFacePx),
		image.Pt(0, 0),
	)
}

func (d *FaceDetector) Close() {
	d.classifier.Close()
}
