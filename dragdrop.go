package imcore

import "math"

// DragDropFlags tune drag sources and drop targets.
type DragDropFlags uint32

const (
	DragDropNone                 DragDropFlags = 0
	DragDropSourceNoPreview      DragDropFlags = 1 << 0 // Caller draws no tooltip preview
	DragDropSourceAllowNullID    DragDropFlags = 1 << 1 // Items without an ID get one from their rect
	DragDropAcceptBeforeDelivery DragDropFlags = 1 << 8 // Return the payload while it is still previewing
	DragDropAcceptNoHighlight    DragDropFlags = 1 << 9
)

// Payload is the data carried by a drag. Data is owned by the context and
// valid until the drag ends.
type Payload struct {
	SourceID  ID
	DataType  string
	Data      []byte
	DataFrame uint64 // Frame SetDragDropPayload last ran
	Preview   bool   // A target with a matching type is hovered
	Delivery  bool   // The source button was released over the target
}

// IsDataType reports whether the payload carries type t.
func (p *Payload) IsDataType(t string) bool {
	return p != nil && p.DataType == t
}

type dragDropState struct {
	active       bool
	withinSource bool
	withinTarget bool
	sourceFlags  DragDropFlags
	button       MouseButton
	sourceFrame  uint64
	released     bool // Source button went up this frame; delivery frame
	payload      Payload

	targetID       ID
	targetRect     Rect
	acceptIDCurr   ID
	acceptIDPrev   ID
	acceptArea     float32
	acceptFrame    uint64
	tooltipPending bool
}

func (d *dragDropState) beginFrame(ctx *Context) {
	d.acceptIDPrev = d.acceptIDCurr
	d.acceptIDCurr = 0
	d.acceptArea = math.MaxFloat32
	if d.active && d.released {
		ctx.logger.Debug("drag finished", "source", d.payload.SourceID, "type", d.payload.DataType,
			"delivered", d.acceptIDPrev != 0)
		d.clear()
		return
	}
	if d.active && !ctx.Input.MouseDown(d.button) {
		d.released = true
	}
}

func (d *dragDropState) endFrame(ctx *Context) {
	if d.withinSource || d.withinTarget {
		panic(usageErrorf("EndFrame", "drag and drop scope left open; call EndDragDropSource/EndDragDropTarget"))
	}
	// A source that stopped being submitted cancels the drag.
	if d.active && !d.released && d.sourceFrame+1 < ctx.FrameCount {
		ctx.logger.Debug("drag cancelled; source not submitted", "source", d.payload.SourceID)
		d.clear()
	}
}

func (d *dragDropState) clear() {
	*d = dragDropState{acceptArea: math.MaxFloat32}
}

// BeginDragDropSource starts or continues a drag from the last item once it
// is held and dragged past the threshold. On true, call SetDragDropPayload,
// optionally draw a preview, then EndDragDropSource.
func (ctx *Context) BeginDragDropSource(flags DragDropFlags) bool {
	w := ctx.mustWindow("BeginDragDropSource")
	d := &ctx.dragDrop
	button := MouseButtonLeft
	id := ctx.lastItem.ID
	if id == 0 {
		if flags&DragDropSourceAllowNullID == 0 {
			return false
		}
		r := ctx.lastItem.Rect
		id = HashBytes(rectBytes(r), w.ID)
		if ctx.ItemHoverable(r, id) && ctx.Input.MouseClicked(button) {
			ctx.SetActiveID(id, w)
			ctx.activeIDButton = button
		}
		ctx.keepAliveID(id)
	}
	if ctx.activeID != id || ctx.activeIDButton != button {
		return false
	}
	if !d.active && !ctx.Input.IsMouseDragging(button, -1) {
		return false
	}
	if !d.active {
		d.clear()
		d.active = true
		d.button = button
		d.payload.SourceID = id
		ctx.logger.Debug("drag started", "source", id, "frame", ctx.FrameCount)
	}
	d.sourceFlags = flags
	d.sourceFrame = ctx.FrameCount
	d.withinSource = true
	d.tooltipPending = false
	if flags&DragDropSourceNoPreview == 0 {
		ctx.BeginTooltip()
		d.tooltipPending = true
	}
	return true
}

func rectBytes(r Rect) []byte {
	out := make([]byte, 0, 16)
	for _, f := range [4]float32{r.X, r.Y, r.W, r.H} {
		b := math.Float32bits(f)
		out = append(out, byte(b), byte(b>>8), byte(b>>16), byte(b>>24))
	}
	return out
}

// SetDragDropPayload attaches typed data to the current drag. It returns
// true when a target accepted the payload this or last frame.
func (ctx *Context) SetDragDropPayload(dataType string, data []byte) bool {
	d := &ctx.dragDrop
	if !d.withinSource {
		panic(usageErrorf("SetDragDropPayload", "not inside BeginDragDropSource"))
	}
	if dataType == "" {
		panic(usageErrorf("SetDragDropPayload", "payload type must not be empty"))
	}
	d.payload.DataType = dataType
	d.payload.Data = append(d.payload.Data[:0], data...)
	d.payload.DataFrame = ctx.FrameCount
	return d.acceptFrame == ctx.FrameCount || d.acceptFrame+1 == ctx.FrameCount
}

// EndDragDropSource closes a successful BeginDragDropSource.
func (ctx *Context) EndDragDropSource() {
	d := &ctx.dragDrop
	if !d.withinSource {
		panic(usageErrorf("EndDragDropSource", "no matching BeginDragDropSource"))
	}
	if d.tooltipPending {
		ctx.EndTooltip()
		d.tooltipPending = false
	}
	d.withinSource = false
}

// BeginDragDropTarget makes the last item a drop target while a drag is in
// flight and the pointer is over it. On true, call AcceptDragDropPayload
// then EndDragDropTarget.
func (ctx *Context) BeginDragDropTarget() bool {
	w := ctx.mustWindow("BeginDragDropTarget")
	d := &ctx.dragDrop
	if !d.active {
		return false
	}
	if ctx.hoveredWindow == nil || ctx.hoveredWindow.RootWindow != w.RootWindow {
		return false
	}
	r := ctx.lastItem.Rect
	if ctx.lastItem.Status&itemHoveredRect == 0 {
		return false
	}
	id := ctx.lastItem.ID
	if id == 0 {
		id = HashBytes(rectBytes(r), w.ID)
	}
	if id == d.payload.SourceID {
		return false
	}
	d.targetID = id
	d.targetRect = r
	d.withinTarget = true
	return true
}

// AcceptDragDropPayload returns the payload when it has dataType ("" takes
// any type) and the drag is released over this target. The smallest of
// several nested targets wins. With DragDropAcceptBeforeDelivery the
// payload is also returned while previewing.
func (ctx *Context) AcceptDragDropPayload(dataType string, flags DragDropFlags) *Payload {
	d := &ctx.dragDrop
	if !d.withinTarget {
		panic(usageErrorf("AcceptDragDropPayload", "not inside BeginDragDropTarget"))
	}
	if dataType != "" && dataType != d.payload.DataType {
		return nil
	}
	area := d.targetRect.W * d.targetRect.H
	if area > d.acceptArea {
		return nil
	}
	d.acceptIDCurr = d.targetID
	d.acceptArea = area
	d.acceptFrame = ctx.FrameCount

	d.payload.Preview = d.acceptIDPrev == d.targetID
	d.payload.Delivery = d.payload.Preview && d.released
	if d.payload.Preview && flags&DragDropAcceptNoHighlight == 0 {
		r := d.targetRect.Expand(2)
		ctx.currentWindow.DrawList.AddRect(r.X, r.Y, r.W, r.H, ctx.style.Color(ColDragDropTarget), 2)
	}
	if d.payload.Delivery {
		ctx.logger.Debug("drag payload delivered", "source", d.payload.SourceID, "target", d.targetID,
			"type", d.payload.DataType)
	}
	if !d.payload.Delivery && flags&DragDropAcceptBeforeDelivery == 0 {
		return nil
	}
	return &d.payload
}

// EndDragDropTarget closes a successful BeginDragDropTarget.
func (ctx *Context) EndDragDropTarget() {
	d := &ctx.dragDrop
	if !d.withinTarget {
		panic(usageErrorf("EndDragDropTarget", "no matching BeginDragDropTarget"))
	}
	d.withinTarget = false
}

// IsDragDropActive reports whether a drag is in flight.
func (ctx *Context) IsDragDropActive() bool {
	return ctx.dragDrop.active
}

// DragDropPayload returns the in-flight payload, or nil.
func (ctx *Context) DragDropPayload() *Payload {
	if !ctx.dragDrop.active {
		return nil
	}
	return &ctx.dragDrop.payload
}
