package main

import (
	"fmt"

	"github.com/go-theft-auto/imcore"
)

// scene is a small fixed UI touching windows, widgets, tables and popups.
type scene struct {
	clicks  int
	enabled bool
	volume  float32
	mode    int
	name    string
}

func (s *scene) draw(ctx *imcore.Context) {
	ctx.SetNextWindowPos(imcore.Vec2{X: 20, Y: 20}, imcore.CondFirstUseEver)
	ctx.SetNextWindowSize(imcore.Vec2{X: 300, Y: 260}, imcore.CondFirstUseEver)
	if ctx.Begin("Controls", nil, imcore.WindowNone) {
		if ctx.Button(fmt.Sprintf("Clicked %d##btn", s.clicks)) {
			s.clicks++
		}
		ctx.Checkbox("Enabled", &s.enabled)
		ctx.SliderFloat("Volume", &s.volume, 0, 1)
		ctx.Combo("Mode", &s.mode, []string{"Fast", "Balanced", "Quality"})
		ctx.InputText("Name", &s.name, imcore.WithHint("type here"))
		if ctx.TreeNode("Details") {
			ctx.BulletText("windows are hashed by name")
			ctx.BulletText("widgets by label within their window")
			ctx.TreePop()
		}
	}
	ctx.End()

	ctx.SetNextWindowPos(imcore.Vec2{X: 340, Y: 20}, imcore.CondFirstUseEver)
	ctx.SetNextWindowSize(imcore.Vec2{X: 260, Y: 200}, imcore.CondFirstUseEver)
	if ctx.Begin("Table", nil, imcore.WindowNone) {
		if ctx.BeginTable("t", 2, imcore.TableFlagsBorders|imcore.TableFlagsRowBg, imcore.Vec2{}) {
			ctx.TableSetupColumn("Key", imcore.TableColumnFlagsWidthFixed, 80)
			ctx.TableSetupColumn("Value", imcore.TableColumnFlagsWidthStretch, 1)
			ctx.TableHeadersRow()
			for i := range 5 {
				ctx.TableNextRow()
				ctx.TableNextColumn()
				ctx.Textf("k%d", i)
				ctx.TableNextColumn()
				ctx.Textf("%d", i*i)
			}
			ctx.EndTable()
		}
	}
	ctx.End()
}
