package imcore

// OnceUponAFrame guards a block so it runs at most once per frame.
//
//	var once imcore.OnceUponAFrame
//	if once.Test(ctx) {
//	    // runs once this frame even if reached several times
//	}
type OnceUponAFrame struct {
	refFrame uint64
	used     bool
}

// Test returns true the first time it is called in a frame.
func (o *OnceUponAFrame) Test(ctx *Context) bool {
	if o.used && o.refFrame == ctx.FrameCount {
		return false
	}
	o.used = true
	o.refFrame = ctx.FrameCount
	return true
}
