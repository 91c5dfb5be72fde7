package models

import (
	"fmt"
	"image"
	"math"
	"strings"
)

type Emotion string

const (
	Angry    Emotion = "angry"
	Disgust  Emotion = "disgust"
	Fear     Emotion = "fear"
	Happy    Emotion = "happy"
	Sad      Emotion = "sad"
	Surprise Emotion = "surprise"
	Neutral  Emotion = "neutral"
)

// Emotions is the closed set of labels the classifier can produce,
// in the network's output index order.
var Emotions = [...]Emotion{Angry, Disgust, Fear, Happy, Sad, Surprise, Neutral}

// ParseEmotion matches a label case-insensitively against the known set.
func ParseEmotion(s string) (Emotion, bool) {
	lower := Emotion(strings.ToLower(s))
	for _, e := range Emotions {
		if e == lower {
			return e, true
		}
	}
	return "", false
}

// Title returns the display form of the label, e.g. "Happy".
func (e Emotion) Title() string {
	if e == "" {
		return ""
	}
	return strings.ToUpper(string(e[:1])) + string(e[1:])
}

// FaceEmotion is the classification outcome for one detected face.
type FaceEmotion struct {
	Box   image.Rectangle
	Label Emotion
	Score float32
}

// StatusLine renders the result the way the status label shows it.
func (f FaceEmotion) StatusLine() string {
	return fmt.Sprintf("Emotion: %s - %.2f%%", f.Label.Title(), f.Score*100)
}

// Frame is the outcome of one pipeline pass: the annotated display image
// plus the classification of every face that yielded one.
type Frame struct {
	Image   image.Image
	Results []FaceEmotion
}

// BarLevels maps every known label to 0 and the given label, matched
// case-insensitively, to round(score*100) clamped to [0,100].
func BarLevels(label Emotion, score float32) map[Emotion]int {
	levels := make(map[Emotion]int, len(Emotions))
	for _, e := range Emotions {
		levels[e] = 0
	}

	e, ok := ParseEmotion(string(label))
	if !ok {
		return levels
	}

	v := int(math.Round(float64(score) * 100))
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	levels[e] = v

	return levels
}
