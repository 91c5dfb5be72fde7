package cwidget

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// EmotionBar is a captioned horizontal progress indicator in [0,100]
// with the numeric readout hidden.
type EmotionBar struct {
	widget.BaseWidget

	captionWidget *widget.Label
	barWidget     *widget.ProgressBar
}

func NewEmotionBar(caption string) *EmotionBar {
	item := &EmotionBar{}

	item.captionWidget = widget.NewLabel(caption)
	item.captionWidget.TextStyle = fyne.TextStyle{Bold: true}

	item.barWidget = widget.NewProgressBar()
	item.barWidget.Min = 0
	item.barWidget.Max = 100
	item.barWidget.TextFormatter = func() string { return "" }

	item.ExtendBaseWidget(item)

	return item
}

func (item *EmotionBar) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewBorder(nil, nil, item.captionWidget, nil, item.barWidget)
	return widget.NewSimpleRenderer(c)
}

func (item *EmotionBar) SetLevel(level int) {
	item.barWidget.SetValue(float64(level))
}

func (item *EmotionBar) Level() int {
	return int(item.barWidget.Value)
}
