package imcore

// DrawData is the per-frame snapshot handed to a renderer. The caller owns
// it and passes it to Render, so independent contexts never share one.
// The lists point into the context and stay valid until the next NewFrame.
type DrawData struct {
	Valid            bool
	DisplayPos       Vec2
	DisplaySize      Vec2
	FramebufferScale Vec2
	CmdLists         []*DrawList
	TotalVtxCount    int
	TotalIdxCount    int
}

// Clear resets the snapshot while keeping the list slice capacity.
func (dd *DrawData) Clear() {
	dd.Valid = false
	for i := range dd.CmdLists {
		dd.CmdLists[i] = nil
	}
	dd.CmdLists = dd.CmdLists[:0]
	dd.TotalVtxCount = 0
	dd.TotalIdxCount = 0
}

// AddDrawList appends a finalized, non-empty list and updates the totals.
func (dd *DrawData) AddDrawList(dl *DrawList) {
	if dl == nil {
		return
	}
	dl.Finalize()
	if len(dl.CmdBuffer) == 0 {
		return
	}
	dd.CmdLists = append(dd.CmdLists, dl)
	dd.TotalVtxCount += len(dl.VtxBuffer)
	dd.TotalIdxCount += len(dl.IdxBuffer)
}

// CmdCount returns the number of draw commands across all lists.
func (dd *DrawData) CmdCount() int {
	n := 0
	for _, dl := range dd.CmdLists {
		n += len(dl.CmdBuffer)
	}
	return n
}

// ScaleClipRects multiplies every clip rectangle by scale, for renderers
// whose framebuffer differs from the logical display size.
func (dd *DrawData) ScaleClipRects(scale Vec2) {
	for _, dl := range dd.CmdLists {
		for i := range dl.CmdBuffer {
			c := &dl.CmdBuffer[i].ClipRect
			c[0] *= scale.X
			c[1] *= scale.Y
			c[2] *= scale.X
			c[3] *= scale.Y
		}
	}
}
