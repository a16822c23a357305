// Command demo opens a GLFW window and shows the core widgets.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./cmd/demo/        # run this example
//
// Pass -config to load TOML settings (see imcore.LoadSettings).
package main

import (
	"cmp"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imcore"
	"github.com/go-theft-auto/imcore/backend/opengl"
	"github.com/go-theft-auto/imcore/font"
)

const (
	windowWidth  = 1024
	windowHeight = 720
	windowTitle  = "imcore demo"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML config file")
	fontSize := flag.Float64("font-size", 16, "font size in pixels")
	flag.Parse()

	if err := run(*configPath, float32(*fontSize)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, fontSize float32) error {
	cfg := imcore.DefaultConfig()
	style := imcore.DefaultStyle()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if cfg, style, err = imcore.LoadSettings(data, style); err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fw, fh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fw, fh)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	fonts, err := font.NewDefaultManager(fontSize)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	renderer.UploadFonts(fonts)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ui := imcore.New(renderer, imcore.WithContextOptions(
		imcore.WithConfig(cfg),
		imcore.WithStyle(style),
		imcore.WithLogger(logger),
		imcore.WithFontProvider(fonts),
	))
	input := opengl.NewGLFWInput(window, ui.Context())
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		ui.Resize(w, h)
	})

	d := &demo{slider: 0.5, quality: 1, name: "imcore"}
	last := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(input.DisplaySize(), dt)
		ctx.FramebufferScale = input.FramebufferScale()
		d.draw(ctx)
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}
	return nil
}

type demo struct {
	clicks  int
	slider  float32
	count   int
	enabled bool
	quality int
	name    string
	rows    []row
}

type row struct {
	name  string
	score int
}

func (d *demo) draw(ctx *imcore.Context) {
	ctx.SetNextWindowPos(imcore.Vec2{X: 20, Y: 20}, imcore.CondFirstUseEver)
	ctx.SetNextWindowSize(imcore.Vec2{X: 360, Y: 480}, imcore.CondFirstUseEver)
	if ctx.Begin("Widgets", nil, imcore.WindowNone) {
		ctx.Text("Hello from imcore!")
		if ctx.Button(fmt.Sprintf("Click me (%d)", d.clicks), imcore.WithTooltip("Counts clicks")) {
			d.clicks++
		}
		ctx.SameLine()
		ctx.Checkbox("Enabled", &d.enabled)

		ctx.Separator()
		ctx.SliderFloat("Slider", &d.slider, 0, 1)
		ctx.DragInt("Count", &d.count, imcore.WithRange(0, 100))
		ctx.Combo("Quality", &d.quality, []string{"Low", "Medium", "High"})
		ctx.InputText("Name", &d.name, imcore.WithHint("your name"))
		ctx.ProgressBar(d.slider, "")

		if ctx.CollapsingHeader("Log") {
			ctx.TextWrapped("Only the visible lines below are submitted each frame.")
			if ctx.BeginChild("log", imcore.Vec2{Y: 120}, true, imcore.WindowNone) {
				clipper := ctx.BeginListClipper(1000, -1)
				for clipper.Step() {
					for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
						ctx.Textf("line %d", i)
					}
				}
			}
			ctx.EndChild()
		}
	}
	ctx.End()

	ctx.SetNextWindowPos(imcore.Vec2{X: 400, Y: 20}, imcore.CondFirstUseEver)
	ctx.SetNextWindowSize(imcore.Vec2{X: 320, Y: 300}, imcore.CondFirstUseEver)
	if ctx.Begin("Scores", nil, imcore.WindowNone) {
		d.scores(ctx)
	}
	ctx.End()
}

func (d *demo) scores(ctx *imcore.Context) {
	if d.rows == nil {
		for i := range 40 {
			d.rows = append(d.rows, row{name: fmt.Sprintf("Player %02d", i), score: (i * 37) % 101})
		}
	}
	flags := imcore.TableFlagsSortable | imcore.TableFlagsBorders | imcore.TableFlagsRowBg
	if !ctx.BeginTable("scores", 2, flags, imcore.Vec2{}) {
		return
	}
	ctx.TableSetupColumn("Name", imcore.TableColumnFlagsWidthStretch, 1)
	ctx.TableSetupColumn("Score", imcore.TableColumnFlagsWidthFixed, 60)
	ctx.TableHeadersRow()
	if specs := ctx.TableSortSpecs(); specs != nil && specs.Dirty {
		sortRows(d.rows, specs)
		specs.Dirty = false
	}
	for _, r := range d.rows {
		ctx.TableNextRow()
		ctx.TableNextColumn()
		ctx.Text(r.name)
		ctx.TableNextColumn()
		ctx.Text(fmt.Sprint(r.score))
	}
	ctx.EndTable()
}

func sortRows(rows []row, specs *imcore.TableSortSpecs) {
	if len(specs.Specs) == 0 {
		return
	}
	s := specs.Specs[0]
	slices.SortStableFunc(rows, func(a, b row) int {
		c := cmp.Compare(a.score, b.score)
		if s.ColumnIndex == 0 {
			c = strings.Compare(a.name, b.name)
		}
		if s.Direction == imcore.SortDescending {
			c = -c
		}
		return c
	})
}
