package detector

import (
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"

	"emotionview/internal/models"
)

// The emotion net takes a 64x64 grayscale face crop and emits one score
// per label, indexed in models.Emotions order.
const emotionInputSize = 64

// EmotionNet classifies a face crop with a pretrained CNN.
type EmotionNet struct {
	net gocv.Net
}

func NewEmotionNet(modelPath string) (*EmotionNet, error) {
	net := gocv.ReadNet(modelPath, "")
	if net.Empty() {
		return nil, fmt.Errorf("load emotion model %s", modelPath)
	}

	if err := net.SetPreferableBackend(gocv.NetBackendDefault); err != nil {
		net.Close()
		return nil, fmt.Errorf("set net backend: %w", err)
	}
	if err := net.SetPreferableTarget(gocv.NetTargetCPU); err != nil {
		net.Close()
		return nil, fmt.Errorf("set net target: %w", err)
	}

	return &EmotionNet{net: net}, nil
}

// Classify returns the dominant label and its confidence for one color
// face crop. ok is false when the crop cannot be classified.
func (n *EmotionNet) Classify(face gocv.Mat) (models.Emotion, float32, bool) {
	if face.Empty() {
		return "", 0, false
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(face, &gray, gocv.ColorBGRToGray)

	blob := gocv.BlobFromImage(gray, 1.0/255.0,
		image.Pt(emotionInputSize, emotionInputSize),
		gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	n.net.SetInput(blob, "")
	output := n.net.Forward("")
	defer output.Close()

	if output.Total() < len(models.Emotions) {
		return "", 0, false
	}

	scores := make([]float64, len(models.Emotions))
	for i := range scores {
		scores[i] = float64(output.GetFloatAt(0, i))
	}

	probs := softmax(scores)
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}

	return models.Emotions[best], float32(probs[best]), true
}

func (n *EmotionNet) Close() {
	n.net.Close()
}

// The exported model ends in raw class scores; normalize so the
// confidence is a probability. Shift by the max for stability.
func softmax(scores []float64) []float64 {
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}

	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(s - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
