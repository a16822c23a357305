package imcore

import (
	"fmt"
	"math"
)

// labeledFrame lays out a framed widget of item width followed by its
// visible label.
func (ctx *Context) labeledFrame(w *Window, o options, label string) (frame, total Rect, text string) {
	text = VisibleLabel(label)
	textSize := ctx.CalcTextSize(text)
	pos := w.DC.CursorPos
	size := ctx.frameSize(w, o, Vec2{ctx.CalcItemWidth(), ctx.FrameHeight()})
	frame = Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	total = frame
	if textSize.X > 0 {
		total.W += ctx.style.ItemInnerSpacing.X + textSize.X
	}
	return frame, total, text
}

func (ctx *Context) renderFrameLabel(w *Window, frame Rect, text string) {
	if text == "" {
		return
	}
	ctx.renderText(w.DrawList, Vec2{frame.X + frame.W + ctx.style.ItemInnerSpacing.X, frame.Y + ctx.style.FramePadding.Y},
		text, ctx.style.Color(ColText))
}

func formatScalar(o options, v float32, isInt bool) string {
	if isInt {
		format := "%d"
		if HasOpt(o, OptFormat) {
			format = GetOpt(o, OptFormat)
		}
		return fmt.Sprintf(format, int(math.Round(float64(v))))
	}
	return fmt.Sprintf(GetOpt(o, OptFormat), v)
}

func snapValue(v, minVal, step float32) float32 {
	if step <= 0 {
		return v
	}
	return minVal + float32(math.Round(float64((v-minVal)/step)))*step
}

// SliderFloat draws a horizontal slider over [minVal, maxVal] and returns
// true when *value changed. While focused, Left/Right step the value.
//
//	if ctx.SliderFloat("Volume", &volume, 0, 1) {
//	    updateVolume(volume)
//	}
func (ctx *Context) SliderFloat(label string, value *float32, minVal, maxVal float32, opts ...Option) bool {
	o := applyOptions(opts)
	return ctx.slider("SliderFloat", label, value, minVal, maxVal, GetOpt(o, OptStep), false, o)
}

// SliderInt is SliderFloat over integers.
func (ctx *Context) SliderInt(label string, value *int, minVal, maxVal int, opts ...Option) bool {
	o := applyOptions(opts)
	v := float32(*value)
	changed := ctx.slider("SliderInt", label, &v, float32(minVal), float32(maxVal), 1, true, o)
	if changed {
		*value = int(math.Round(float64(v)))
	}
	return changed
}

func (ctx *Context) slider(op, label string, value *float32, minVal, maxVal, step float32, isInt bool, o options) bool {
	w := ctx.mustWindow(op)
	defer ctx.itemOptions(o)()

	id := ctx.itemID(label, o)
	frame, total, text := ctx.labeledFrame(w, o, label)
	ctx.ItemSize(total.Size())
	if !ctx.ItemAdd(total, id) {
		return false
	}
	ctx.RegisterFocusable(id)

	_, hovered, held := ctx.ButtonBehavior(frame, id, ButtonPressOnClick)
	grabW := ctx.style.GrabMinSize
	if step > 0 && maxVal > minVal {
		grabW = maxf(grabW, frame.W/((maxVal-minVal)/step+1))
	}
	grabW = minf(grabW, frame.W)
	track := frame.W - grabW

	next := *value
	if held && track > 0 {
		ratio := clampf((ctx.Input.MousePos.X-frame.X-grabW/2)/track, 0, 1)
		next = minVal + ratio*(maxVal-minVal)
	}
	if ctx.focusedID == id && ctx.activeTextInput() == 0 {
		keyStep := step
		if keyStep <= 0 {
			keyStep = (maxVal - minVal) / 100
		}
		if ctx.Input.KeyPressedRepeat(KeyLeft) {
			next -= keyStep
		}
		if ctx.Input.KeyPressedRepeat(KeyRight) {
			next += keyStep
		}
	}
	next = clampf(snapValue(next, minVal, step), minVal, maxVal)
	changed := next != *value
	if changed {
		*value = next
		ctx.markEdited()
	}

	ctx.renderFrame(w.DrawList, frame, ctx.style.Color(frameCol(hovered, held)))
	ctx.renderNavHighlight(w.DrawList, frame, id)
	ratio := float32(0)
	if maxVal > minVal {
		ratio = clampf((*value-minVal)/(maxVal-minVal), 0, 1)
	}
	grab := Rect{X: frame.X + ratio*track, Y: frame.Y + 2, W: grabW, H: frame.H - 4}
	grabCol := ColSliderGrab
	if held {
		grabCol = ColSliderGrabActive
	}
	w.DrawList.AddRectFilled(grab.X, grab.Y, grab.W, grab.H, ctx.style.Color(grabCol))
	s := formatScalar(o, *value, isInt)
	ctx.renderTextClipped(w.DrawList, frame, s, ctx.CalcTextSize(s), Vec2{0.5, 0.5}, ctx.style.Color(ColText))
	ctx.renderFrameLabel(w, frame, text)
	return changed
}

// DragFloat edits *value by dragging horizontally, OptDragSpeed units per
// pixel. Shift multiplies the speed by 10 and Alt divides it by 100.
// OptRange clamps the result.
func (ctx *Context) DragFloat(label string, value *float32, opts ...Option) bool {
	return ctx.drag("DragFloat", label, value, false, applyOptions(opts))
}

// DragInt is DragFloat over integers; fractional drag distance accumulates
// across frames.
func (ctx *Context) DragInt(label string, value *int, opts ...Option) bool {
	v := float32(*value)
	changed := ctx.drag("DragInt", label, &v, true, applyOptions(opts))
	if changed {
		*value = int(v)
	}
	return changed
}

func (ctx *Context) drag(op, label string, value *float32, isInt bool, o options) bool {
	w := ctx.mustWindow(op)
	defer ctx.itemOptions(o)()

	id := ctx.itemID(label, o)
	frame, total, text := ctx.labeledFrame(w, o, label)
	ctx.ItemSize(total.Size())
	if !ctx.ItemAdd(total, id) {
		return false
	}
	ctx.RegisterFocusable(id)

	_, hovered, held := ctx.ButtonBehavior(frame, id, ButtonPressOnClick)
	changed := false
	if held {
		if ctx.activeIDJustActivated {
			w.Storage.SetFloat(id, 0)
		} else if dx := ctx.Input.MouseDelta.X; dx != 0 {
			speed := GetOpt(o, OptDragSpeed)
			switch {
			case ctx.Input.KeyShift:
				speed *= 10
			case ctx.Input.KeyAlt:
				speed /= 100
			}
			acc := w.Storage.Float(id, 0) + dx*speed
			delta := acc
			if isInt {
				delta = float32(math.Trunc(float64(acc)))
			}
			w.Storage.SetFloat(id, acc-delta)
			next := *value + delta
			if r := GetOpt(o, OptRange); r.HasRange {
				next = clampf(next, r.Min, r.Max)
			}
			if next != *value {
				*value = next
				changed = true
				ctx.markEdited()
			}
		}
	} else if ctx.activeIDPrevFrame == id && ctx.activeID != id {
		w.Storage.Delete(id)
	}

	ctx.renderFrame(w.DrawList, frame, ctx.style.Color(frameCol(hovered, held)))
	ctx.renderNavHighlight(w.DrawList, frame, id)
	s := formatScalar(o, *value, isInt)
	ctx.renderTextClipped(w.DrawList, frame, s, ctx.CalcTextSize(s), Vec2{0.5, 0.5}, ctx.style.Color(ColText))
	ctx.renderFrameLabel(w, frame, text)
	return changed
}
