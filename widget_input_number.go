package imcore

import (
	"math"
	"strconv"
	"strings"
)

// InputFloat edits *value as text. With OptStep set, "-" and "+" buttons
// step the value. OptRange clamps and OptFormat controls display.
// Text that does not parse leaves the value unchanged.
func (ctx *Context) InputFloat(label string, value *float32, opts ...Option) bool {
	return ctx.inputNumber("InputFloat", label, value, false, applyOptions(opts))
}

// InputInt is InputFloat over integers. The step defaults to 1.
func (ctx *Context) InputInt(label string, value *int, opts ...Option) bool {
	o := applyOptions(opts)
	if !HasOpt(o, OptStep) {
		opts = append(opts, WithStep(1))
		o = applyOptions(opts)
	}
	v := float32(*value)
	changed := ctx.inputNumber("InputInt", label, &v, true, o)
	if changed {
		*value = int(v)
	}
	return changed
}

func parseScalar(s string, isInt bool) (float32, bool) {
	s = strings.TrimSpace(s)
	if isInt {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return 0, false
		}
		return float32(n), true
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return float32(f), true
}

func (ctx *Context) inputNumber(op, label string, value *float32, isInt bool, o options) bool {
	w := ctx.mustWindow(op)
	text := VisibleLabel(label)
	step := GetOpt(o, OptStep)
	r := GetOpt(o, OptRange)
	clampValue := func(v float32) float32 {
		if r.HasRange {
			return clampf(v, r.Min, r.Max)
		}
		return v
	}

	width := ctx.frameSize(w, o, Vec2{ctx.CalcItemWidth(), ctx.FrameHeight()}).X
	btn := ctx.FrameHeight()
	inner := ctx.style.ItemInnerSpacing.X
	inputW := width
	if step > 0 {
		inputW = maxf(1, width-2*(btn+inner))
	}

	itemOpts := []Option{WithWidth(inputW)}
	if hint := GetOpt(o, OptHint); hint != "" {
		itemOpts = append(itemOpts, WithHint(hint))
	}

	disabled := GetOpt(o, OptDisabled)
	if disabled {
		ctx.BeginDisabled(true)
	}
	ctx.BeginGroup()
	ctx.PushID(label)
	changed := false
	s := formatScalar(o, *value, isInt)
	if ctx.InputText("##value", &s, itemOpts...) {
		if v, ok := parseScalar(s, isInt); ok {
			if v = clampValue(v); v != *value {
				*value = v
				changed = true
			}
		}
	}
	if step > 0 {
		btnOpts := []Option{WithSize(btn, btn)}
		ctx.SameLineEx(0, inner)
		if ctx.Button("-", btnOpts...) {
			if v := clampValue(*value - step); v != *value {
				*value = v
				changed = true
			}
		}
		ctx.SameLineEx(0, inner)
		if ctx.Button("+", btnOpts...) {
			if v := clampValue(*value + step); v != *value {
				*value = v
				changed = true
			}
		}
	}
	ctx.PopID()
	if text != "" {
		ctx.SameLineEx(0, inner)
		ctx.Text(text)
	}
	ctx.EndGroup()
	if disabled {
		ctx.EndDisabled()
	}
	if tip := GetOpt(o, OptTooltip); tip != "" {
		ctx.SetItemTooltip(tip)
	}
	if changed {
		ctx.markEdited()
	}
	return changed
}
