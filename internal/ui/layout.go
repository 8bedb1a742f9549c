package ui

import "image"

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 20
	controlsTop    = panelPadding + headerBaseline + infoSpacing + 14

	perfWidth         = 360
	perfHeight        = 112
	perfGatherHeight  = 300
	perfButtonWidth   = 180
	perfButtonHeight  = 24
	perfButtonTop     = 76
	perfChartTop      = perfButtonTop + perfButtonHeight + 12
	perfChartMaxWidth = perfWidth - 2*panelPadding
)

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// toolsPanelRect anchors the tools panel to the top-right corner of a screen
// screenW pixels wide.
func toolsPanelRect(screenW, width, controls int) image.Rectangle {
	if width <= 0 {
		return image.Rectangle{}
	}
	height := controlsTop + controls*lineHeight + panelPadding
	left := screenW - width
	if left < 0 {
		left = 0
	}
	return image.Rect(left, 0, left+width, height)
}

// controlRects lays out the -/+ buttons of control i inside a panel of the
// given width, in panel-local coordinates.
func controlRects(width, i int) (top int, minus, plus image.Rectangle) {
	top = controlsTop + i*lineHeight
	buttonY := top + (lineHeight-buttonSize)/2
	plus = image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
	minus = image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
	return top, minus, plus
}

// performanceRects returns the performance panel and its gather button in
// screen coordinates; the panel grows to hold the chart while gathering.
func performanceRects(gathering bool) (panel, button image.Rectangle) {
	height := perfHeight
	if gathering {
		height = perfGatherHeight
	}
	panel = image.Rect(0, 0, perfWidth, height)
	button = image.Rect(panelPadding, perfButtonTop, panelPadding+perfButtonWidth, perfButtonTop+perfButtonHeight)
	return panel, button
}

// chartSize is the pixel size of the utilization chart inside the panel.
func chartSize() (int, int) {
	return perfChartMaxWidth, perfGatherHeight - perfChartTop - panelPadding
}

func gatherLabel(gathering bool) string {
	if gathering {
		return "Stop Gathering Data"
	}
	return "Start Gathering Data"
}
