package cwidget

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestEmotionBarLevel(t *testing.T) {
	test.NewApp()

	bar := NewEmotionBar("Happy")
	assert.Zero(t, bar.Level())

	bar.SetLevel(87)
	assert.Equal(t, 87, bar.Level())

	bar.SetLevel(0)
	assert.Zero(t, bar.Level())
}

func TestEmotionBarHidesNumericText(t *testing.T) {
	test.NewApp()

	bar := NewEmotionBar("Sad")
	bar.SetLevel(42)

	assert.Equal(t, "", bar.barWidget.TextFormatter())
}
