package detector

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"emotionview/internal/models"
)

// FaceLocator finds face boxes in a grayscale frame.
type FaceLocator interface {
	Detect(gray gocv.Mat) []image.Rectangle
}

// Classifier names the dominant emotion of one color face crop.
type Classifier interface {
	Classify(face gocv.Mat) (models.Emotion, float32, bool)
}

// Pipeline runs one full inference pass over a frame: mirror, grayscale,
// detect, annotate, crop, classify. The frame is mutated in place.
type Pipeline struct {
	faces    FaceLocator
	emotions Classifier
	boxColor color.RGBA
}

func NewPipeline(faces FaceLocator, emotions Classifier) *Pipeline {
	return &Pipeline{
		faces:    faces,
		emotions: emotions,
		boxColor: color.RGBA{R: 255, A: 255},
	}
}

// Process annotates frame and returns one result per face whose crop
// classified, in detector order.
func (p *Pipeline) Process(frame *gocv.Mat) []models.FaceEmotion {
	// Mirror so the display behaves like a mirror.
	gocv.Flip(*frame, frame, 1)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)

	boxes := p.faces.Detect(gray)

	var results []models.FaceEmotion
	for _, box := range boxes {
		gocv.Rectangle(frame, box, p.boxColor, 2)

		crop := frame.Region(box)
		label, score, ok := p.emotions.Classify(crop)
		crop.Close()
		if !ok {
			continue
		}

		results = append(results, models.FaceEmotion{
			Box:   box,
			Label: label,
			Score: score,
		})
	}

	return results
}
