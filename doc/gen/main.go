// Command gen renders every widget with sample data, captures framebuffer pixels,
// and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imcore"
	"github.com/go-theft-auto/imcore/backend/opengl"
	"github.com/go-theft-auto/imcore/font"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                    // filename without extension
	width  int                       // viewport width
	height int                       // viewport height
	draw   func(ctx *imcore.Context) // widget drawing function
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	fonts, err := font.NewDefaultManager(15)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	renderer.UploadFonts(fonts)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, fonts, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, fonts *font.Manager, s screenshot, outDir string) error {
	// The hidden window stays at 800x600, larger than every screenshot;
	// only the renderer's projection follows the shot size.
	renderer.Resize(s.width, s.height)

	// Fresh GUI per screenshot so no state leaks between captures.
	ui := imcore.New(renderer, imcore.WithContextOptions(imcore.WithFontProvider(fonts)))
	size := imcore.Vec2{X: float32(s.width), Y: float32(s.height)}

	// Windows are hidden on their first frame while they measure content.
	for range 2 {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(size, 1.0/60.0)
		ctx.SetNextWindowPos(imcore.Vec2{}, imcore.CondAlways)
		ctx.SetNextWindowSize(size, imcore.CondAlways)
		if ctx.Begin(s.name, nil, imcore.WindowNoTitleBar|imcore.WindowNoMove) {
			s.draw(ctx)
		}
		ctx.End()
		if err := ui.End(); err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	// Create image
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	// Encode JPEG
	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	// Shared state for widgets that need pointers.
	var (
		checked     = true
		unchecked   = false
		radioIdx    = 1
		inputText   = "Hello, world!"
		numFloat    = float32(3.14)
		numInt      = 42
		sliderFloat = float32(0.65)
		sliderInt   = 7
		dragFloat   = float32(12.5)
		comboIdx    = 1
		listIdx     = 2
		history     = []float32{0.2, 0.5, 0.4, 0.8, 0.6, 0.9, 0.3, 0.7, 0.5, 0.65}
	)

	return []screenshot{
		{
			name: "text", width: 400, height: 200,
			draw: func(ctx *imcore.Context) {
				ctx.Text("Plain text")
				ctx.TextColored("Colored text (yellow)", imcore.ColorYellow)
				ctx.TextDisabled("Disabled text")
				ctx.TextWrapped("This is wrapped text that will break across lines when it reaches the edge of the available width.")
				ctx.LabelText("Label", "Value")
				ctx.BulletText("Bullet item")
			},
		},
		{
			name: "button", width: 400, height: 100,
			draw: func(ctx *imcore.Context) {
				ctx.Button("Standard Button")
				ctx.SmallButton("Small A")
				ctx.SameLine()
				ctx.SmallButton("Small B")
				ctx.SameLine()
				ctx.SmallButton("Small C")
			},
		},
		{
			name: "checkbox", width: 300, height: 80,
			draw: func(ctx *imcore.Context) {
				ctx.Checkbox("Enabled feature", &checked)
				ctx.Checkbox("Disabled feature", &unchecked)
			},
		},
		{
			name: "radio_button", width: 300, height: 120,
			draw: func(ctx *imcore.Context) {
				ctx.RadioGroup("Quality", &radioIdx, []string{"Low", "Medium", "High"})
			},
		},
		{
			name: "input_text", width: 400, height: 100,
			draw: func(ctx *imcore.Context) {
				ctx.InputText("Name", &inputText)
				empty := ""
				ctx.InputText("Search", &empty, imcore.WithHint("type to search"))
			},
		},
		{
			name: "input_number", width: 400, height: 100,
			draw: func(ctx *imcore.Context) {
				ctx.InputFloat("Float", &numFloat, imcore.WithStep(0.1), imcore.WithFormat("%.2f"))
				ctx.InputInt("Int", &numInt)
			},
		},
		{
			name: "slider", width: 400, height: 120,
			draw: func(ctx *imcore.Context) {
				ctx.SliderFloat("Float", &sliderFloat, 0, 1)
				ctx.SliderInt("Int", &sliderInt, 0, 10)
				ctx.DragFloat("Drag", &dragFloat, imcore.WithDragSpeed(0.1), imcore.WithFormat("%.1f"))
			},
		},
		{
			name: "combo", width: 400, height: 60,
			draw: func(ctx *imcore.Context) {
				ctx.Combo("Mode", &comboIdx, []string{"Fast", "Balanced", "Quality"})
			},
		},
		{
			name: "list_box", width: 400, height: 200,
			draw: func(ctx *imcore.Context) {
				ctx.ListBox("Fruit", &listIdx, []string{"Apple", "Banana", "Cherry", "Date", "Elderberry", "Fig", "Grape", "Honeydew"})
			},
		},
		{
			name: "tree", width: 400, height: 180,
			draw: func(ctx *imcore.Context) {
				if ctx.TreeNode("Scene", imcore.DefaultOpen()) {
					if ctx.TreeNode("Camera", imcore.DefaultOpen()) {
						ctx.Text("fov 70")
						ctx.TreePop()
					}
					if ctx.TreeNode("Light", imcore.WithOpt(imcore.OptLeaf, true)) {
						ctx.TreePop()
					}
					ctx.TreePop()
				}
				ctx.CollapsingHeader("Collapsed header")
			},
		},
		{
			name: "plot", width: 400, height: 160,
			draw: func(ctx *imcore.Context) {
				ctx.PlotLines("Lines", history, imcore.WithHeight(60))
				ctx.PlotHistogram("Histogram", history, imcore.WithHeight(60), imcore.WithOverlay("load"))
			},
		},
		{
			name: "progress_bar", width: 400, height: 60,
			draw: func(ctx *imcore.Context) {
				ctx.ProgressBar(0.42, "")
			},
		},
		{
			name: "table", width: 400, height: 160,
			draw: func(ctx *imcore.Context) {
				if ctx.BeginTable("t", 3, imcore.TableFlagsBorders|imcore.TableFlagsRowBg, imcore.Vec2{}) {
					ctx.TableSetupColumn("Name", imcore.TableColumnFlagsWidthStretch, 1)
					ctx.TableSetupColumn("Kind", imcore.TableColumnFlagsWidthFixed, 80)
					ctx.TableSetupColumn("Size", imcore.TableColumnFlagsWidthFixed, 60)
					ctx.TableHeadersRow()
					for i, name := range []string{"main.go", "go.mod", "README.md"} {
						ctx.TableNextRow()
						ctx.TableNextColumn()
						ctx.Text(name)
						ctx.TableNextColumn()
						ctx.Text("file")
						ctx.TableNextColumn()
						ctx.Textf("%d KB", (i+1)*3)
					}
					ctx.EndTable()
				}
			},
		},
	}
}
