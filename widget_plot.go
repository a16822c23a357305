package imcore

import (
	"fmt"
	"math"
)

type plotType uint8

const (
	plotLines plotType = iota
	plotHistogram
)

// PlotLines draws values as a connected line. OptRange fixes the vertical
// scale; otherwise it fits the data. Hovering shows the value under the
// pointer in a tooltip.
//
//	ctx.PlotLines("Frame time", history, imcore.WithHeight(60), imcore.WithOverlay("ms"))
func (ctx *Context) PlotLines(label string, values []float32, opts ...Option) {
	ctx.plot("PlotLines", plotLines, label, values, applyOptions(opts))
}

// PlotHistogram draws one bar per value, from the scale minimum up.
func (ctx *Context) PlotHistogram(label string, values []float32, opts ...Option) {
	ctx.plot("PlotHistogram", plotHistogram, label, values, applyOptions(opts))
}

// plotScale returns the vertical range for values. Fixed ranges pass
// through; fitted ones never collapse to zero height.
func plotScale(values []float32, o options) (lo, hi float32) {
	if r := GetOpt(o, OptRange); r.HasRange {
		return r.Min, r.Max
	}
	lo, hi = math.MaxFloat32, -math.MaxFloat32
	for _, v := range values {
		lo = minf(lo, v)
		hi = maxf(hi, v)
	}
	if len(values) == 0 {
		return 0, 1
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}

// plotIndexAt maps an x offset within width to a value index.
func plotIndexAt(t plotType, x, width float32, n int) int {
	if n == 0 || width <= 0 {
		return -1
	}
	var idx int
	if t == plotLines {
		if n == 1 {
			return 0
		}
		idx = int(x/width*float32(n-1) + 0.5)
	} else {
		idx = int(x / width * float32(n))
	}
	return max(0, min(idx, n-1))
}

func (ctx *Context) plot(op string, t plotType, label string, values []float32, o options) {
	w := ctx.mustWindow(op)
	defer ctx.itemOptions(o)()

	id := ctx.itemID(label, o)
	text := VisibleLabel(label)
	textSize := ctx.CalcTextSize(text)
	pos := w.DC.CursorPos
	height := GetOpt(o, OptHeight)
	if height <= 0 {
		height = textSize.Y + ctx.style.FramePadding.Y*2
		height = maxf(height, ctx.FrameHeight()*2)
	}
	size := ctx.frameSize(w, o, Vec2{ctx.CalcItemWidth(), height})
	frame := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	total := frame
	if textSize.X > 0 {
		total.W += ctx.style.ItemInnerSpacing.X + textSize.X
	}
	ctx.ItemSize(total.Size())
	if !ctx.ItemAdd(total, id) {
		return
	}
	hovered := ctx.ItemHoverable(frame, id)

	ctx.renderFrame(w.DrawList, frame, ctx.style.Color(ColFrameBg))
	pad := ctx.style.FramePadding
	inner := frame.Expand(-pad.X)
	inner.Y, inner.H = frame.Y+pad.Y, frame.H-pad.Y*2

	lo, hi := plotScale(values, o)
	scaleY := func(v float32) float32 {
		ratio := clampf((v-lo)/(hi-lo), 0, 1)
		return inner.Y + inner.H - ratio*inner.H
	}

	hoveredIdx := -1
	if hovered && len(values) > 0 && inner.Contains(ctx.Input.MousePos) {
		hoveredIdx = plotIndexAt(t, ctx.Input.MousePos.X-inner.X, inner.W, len(values))
		ctx.SetTooltip(fmt.Sprintf("%d: %.3g", hoveredIdx, values[hoveredIdx]))
	}

	dl := w.DrawList
	switch t {
	case plotLines:
		col, colHover := ctx.style.Color(ColPlotLines), ctx.style.Color(ColPlotLinesHovered)
		if len(values) == 1 {
			dl.AddLine(inner.X, scaleY(values[0]), inner.X+inner.W, scaleY(values[0]), col, 1)
			break
		}
		step := inner.W / float32(max(len(values)-1, 1))
		for i := 1; i < len(values); i++ {
			c := col
			if i-1 == hoveredIdx {
				c = colHover
			}
			x1, x2 := inner.X+float32(i-1)*step, inner.X+float32(i)*step
			dl.AddLine(x1, scaleY(values[i-1]), x2, scaleY(values[i]), c, 1)
		}
	case plotHistogram:
		col, colHover := ctx.style.Color(ColPlotHistogram), ctx.style.Color(ColPlotHistogramHovered)
		if len(values) == 0 {
			break
		}
		barW := inner.W / float32(len(values))
		base := scaleY(maxf(lo, minf(0, hi)))
		for i, v := range values {
			c := col
			if i == hoveredIdx {
				c = colHover
			}
			top := scaleY(v)
			y0, y1 := minf(top, base), maxf(top, base)
			// One pixel gap between bars when there is room.
			gap := float32(0)
			if barW > 3 {
				gap = 1
			}
			dl.AddRectFilled(inner.X+float32(i)*barW, y0, barW-gap, y1-y0, c)
		}
	}

	if overlay := GetOpt(o, OptOverlay); overlay != "" {
		ctx.renderTextClipped(dl, frame, overlay, ctx.CalcTextSize(overlay), Vec2{0.5, 0}, ctx.style.Color(ColText))
	}
	ctx.renderFrameLabel(w, frame, text)
}
