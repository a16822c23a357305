/*
Package imcore is the core of an immediate-mode GUI: a context, stable
widget identifiers, an input event queue, windows with automatic layout,
tables, popups, drag and drop, and per-frame draw lists for a renderer to
turn into pixels.

# Overview

The application re-declares its whole UI every frame. Widgets are plain
method calls on a *Context that draw themselves and return what happened
("was I clicked?", "did the value change?"). Persistent state such as
window positions, open tree nodes and text cursors lives in the context,
keyed by identifiers hashed from labels.

# Quick Start

	ctx := imcore.NewContext(imcore.WithFontProvider(fonts))

	for running {
	    // Backends push input from any goroutine.
	    ctx.Events.AddMousePos(x, y)

	    ctx.NewFrame(imcore.Vec2{X: 1280, Y: 720}, dt)
	    if ctx.Begin("Settings", nil, imcore.WindowNone) {
	        ctx.Text("Hello World")
	        if ctx.Button("Save") {
	            save()
	        }
	        ctx.SliderFloat("Volume", &volume, 0, 1)
	    }
	    ctx.End()

	    var dd imcore.DrawData
	    ctx.Render(&dd)
	    renderer.RenderDrawData(&dd)
	}

GUI wraps a context, a draw data buffer and a Renderer for the common
single-window loop. Package backend/opengl provides a Renderer and a GLFW
input adapter; package font builds glyph atlases.

# Frame Lifecycle

NewFrame drains the event queue into the input state, evicts windows
unseen for Config.WindowEvictFrames frames, picks the hovered window and
starts the frame. Every Begin needs a matching End, including when Begin
returned false. EndFrame (called by Render when omitted) closes the
frame. Calling a widget outside Begin/End panics with a *UsageError.

# Identifiers

Widgets are identified by the FNV-1a hash of their label combined with
the ID stack. Text after "##" is hashed but not displayed, so two buttons
can both read "Delete":

	ctx.Button("Delete##file")
	ctx.Button("Delete##folder")

Use PushID/PopID around loops:

	for i, item := range items {
	    ctx.PushIDInt(i)
	    ctx.Selectable(item.Name, i == selected)
	    ctx.PopID()
	}

WithID overrides the identity while keeping the label.

# Hover, Active and Focus

Only one item is hovered per frame; when items overlap, the last one
declared wins. Pressing an item makes it active until the mouse button is
released, and no other item becomes hovered meanwhile. Keyboard focus is
separate: Tab and Shift+Tab cycle focusable items in declaration order,
and Space or Enter activates the focused item.

# Keyboard Shortcuts Reference

## InputText

Navigation:

	Left / Right     Move cursor one character
	Ctrl+Left/Right  Move cursor one word
	Home / End       Jump to start or end of line
	Ctrl+Home/End    Jump to start or end of text

Selection:

	Shift+<move>     Extend the selection
	Ctrl+A           Select all text
	Double-click     Select all text
	Drag             Select with the mouse

Clipboard:

	Ctrl+C           Copy (disabled for passwords)
	Ctrl+X           Cut (disabled for passwords)
	Ctrl+V           Paste

Undo/Redo:

	Ctrl+Z           Undo
	Ctrl+Y           Redo
	Ctrl+Shift+Z     Redo

Control:

	Enter            Commit and stop editing
	Escape           Restore the text from before editing and stop
	Backspace        Delete before the cursor, or the selection
	Delete           Delete after the cursor, or the selection
	Ctrl+Backspace   Delete the previous word

## Sliders

	Left / Right     Step the focused slider (OptStep, or 1% of the range)

## Drags

	Shift+Drag       Ten times faster
	Alt+Drag         A hundred times slower

## Tree Nodes

	Left / Right     Close or open the focused node

## Windows

	Mouse Wheel      Scroll content
	Title bar drag   Move the window
	Click            Bring the window to the front

# Widgets

## Text

	Text(text)                      Plain text
	Textf(format, args...)          Formatted text
	TextColored(text, color)        Colored text
	TextDisabled(text)              Dimmed text
	TextWrapped(text)               Wrapped to the content region
	LabelText(label, value)         Value with a label on the right
	BulletText(text)                Bullet point with text

## Buttons

	Button(label, opts...)          Standard button
	SmallButton(label)              Button without vertical padding
	InvisibleButton(id, size, flags) Hit area with no visuals
	Checkbox(label, &value)         Boolean toggle
	CheckboxFlags(label, &flags, mask)
	RadioButton(label, active)      Single radio button
	RadioButtonInt(label, &v, value)
	RadioGroup(label, &v, items)    Vertical radio group
	Selectable(label, selected)     Full-width selectable row

## Values

	SliderFloat / SliderInt         Drag a grab along a track
	DragFloat / DragInt             Drag horizontally to change a value
	InputText(label, &text)         Single-line text editing
	InputFloat / InputInt           Numeric text with optional +/- steps
	Combo(label, &index, items)     Dropdown selection
	BeginCombo / EndCombo           Dropdown with custom contents
	ListBox(label, &index, items)   Scrolling selection list

## Structure

	TreeNode / TreePop              Collapsible hierarchy
	CollapsingHeader(label)         Framed collapsible section
	BeginChild / EndChild           Scrolling region
	BeginGroup / EndGroup           Treat several items as one
	BeginTable / EndTable           Columns, headers and sorting
	BeginPopup / EndPopup           Floating window closed by clicking outside
	BeginTooltip / SetTooltip       Tooltip at the pointer

## Misc

	Separator, Spacing, Dummy, Indent, SameLine
	ProgressBar(fraction, overlay)
	PlotLines / PlotHistogram
	Image(texture, size, uv0, uv1, tint)
	BeginDragDropSource / BeginDragDropTarget

# Widget Options

Most widgets take functional options:

	WithID(id)                Identity override
	WithWidth(w), WithHeight(h), WithSize(w, h)
	Disabled(true)            Dim and ignore input
	WithTooltip(text)         Tooltip after Config.HoverTooltipDelay
	WithFormat(format)        printf format for values
	WithRange(min, max)       Clamp drags and numeric inputs
	WithStep(step)            Slider snapping or numeric input steps
	WithDragSpeed(speed)      Units per pixel for drags
	WithHint(text)            Placeholder for empty inputs
	WithMaxLength(n)          Input length limit in runes
	Password(), ReadOnly(), EnterReturnsTrue()
	DefaultOpen()             Tree node or header starts open
	WithFilter(text)          List box substring filter
	WithOverlay(text)         Text over a plot

A negative width is measured from the right edge of the content region.

# Configuration

Config holds input timing (key repeat, double click, drag threshold) and
lifetime policy. LoadConfig and LoadStyle read TOML:

	key_repeat_delay = 0.3
	window_evict_frames = 600

	[style]
	frame_padding = [6, 4]

	[style.colors]
	Button = "#3A3A3AFF"

# Ambient Context

Programs with a single UI can use the package-level functions, which act
on the context installed by CreateContext or SetCurrentContext:

	imcore.CreateContext()
	imcore.NewFrame(size, dt)
	imcore.Begin("Tools", nil, 0)
	imcore.Button("Run")
	imcore.End()

Everything they do is also available as a method on *Context.
*/
package imcore
