package imcore

// RadioGroup draws one radio button per item, stacked vertically, under
// the visible label. It returns true when *selected changed.
//
//	ctx.RadioGroup("Quality", &quality, []string{"Low", "Medium", "High"})
func (ctx *Context) RadioGroup(label string, selected *int, items []string, opts ...Option) bool {
	return ctx.radioGroup(label, selected, items, false, applyOptions(opts))
}

// RadioGroupHorizontal is RadioGroup laid out on one line.
func (ctx *Context) RadioGroupHorizontal(label string, selected *int, items []string, opts ...Option) bool {
	return ctx.radioGroup(label, selected, items, true, applyOptions(opts))
}

func (ctx *Context) radioGroup(label string, selected *int, items []string, horizontal bool, o options) bool {
	ctx.mustWindow("RadioGroup")
	disabled := GetOpt(o, OptDisabled)
	if disabled {
		ctx.BeginDisabled(true)
	}
	ctx.BeginGroup()
	if text := VisibleLabel(label); text != "" {
		ctx.Text(text)
	}
	ctx.PushID(label)
	changed := false
	for i, item := range items {
		if horizontal && i > 0 {
			ctx.SameLine()
		}
		ctx.PushIDInt(i)
		if ctx.RadioButton(item, *selected == i) && *selected != i {
			*selected = i
			changed = true
		}
		ctx.PopID()
	}
	ctx.PopID()
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
