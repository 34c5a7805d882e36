package api

import "github.com/dgallion1/wordsearch/internal/search"

// Chart geometry in SVG user units.
const (
	chartWidth   = 400
	chartHeight  = 300
	chartPadding = 20
	labelSpace   = 20
)

type chartBar struct {
	Name   string
	Count  int
	X, Y   int
	W, H   int
	LabelX int
}

type chartView struct {
	Width, Height int
	LabelY        int
	Bars          []chartBar
}

// newChartView lays out bars left to right, scaled to the tallest one.
func newChartView(bars []search.Bar) chartView {
	v := chartView{Width: chartWidth, Height: chartHeight, LabelY: chartHeight - labelSpace/2}
	if len(bars) == 0 {
		return v
	}

	plotH := chartHeight - chartPadding - labelSpace
	slot := (chartWidth - 2*chartPadding) / len(bars)
	top := search.MaxCount(bars)

	for i, b := range bars {
		h := 0
		if top > 0 {
			h = b.Count * plotH / top
		}
		x := chartPadding + i*slot
		v.Bars = append(v.Bars, chartBar{
			Name:   b.Name,
			Count:  b.Count,
			X:      x + slot/8,
			Y:      chartPadding + plotH - h,
			W:      slot * 3 / 4,
			H:      h,
			LabelX: x + slot/2,
		})
	}
	return v
}
