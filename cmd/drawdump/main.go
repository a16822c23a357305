// Command drawdump runs a scripted UI headlessly and prints what the
// renderer would receive: one row per draw list and, with -cmds, one row
// per draw command.
//
// Usage:
//
//	go run ./cmd/drawdump -frames 3 -click 60,70@2 -cmds
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-theft-auto/imcore"
	"github.com/go-theft-auto/imcore/font"
)

type clickFlag []click

type click struct {
	pos   imcore.Vec2
	frame int
}

func (c *clickFlag) String() string {
	parts := make([]string, len(*c))
	for i, cl := range *c {
		parts[i] = fmt.Sprintf("%g,%g@%d", cl.pos.X, cl.pos.Y, cl.frame)
	}
	return strings.Join(parts, " ")
}

// Set parses "x,y@frame"; the frame defaults to 1.
func (c *clickFlag) Set(s string) error {
	cl := click{frame: 1}
	if at := strings.IndexByte(s, '@'); at >= 0 {
		f, err := strconv.Atoi(s[at+1:])
		if err != nil {
			return fmt.Errorf("bad frame in %q: %w", s, err)
		}
		cl.frame = f
		s = s[:at]
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(xs, 32)
	if err != nil {
		return fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(ys, 32)
	if err != nil {
		return fmt.Errorf("bad y in %q: %w", s, err)
	}
	cl.pos = imcore.Vec2{X: float32(x), Y: float32(y)}
	*c = append(*c, cl)
	return nil
}

func main() {
	var clicks clickFlag
	frames := flag.Int("frames", 2, "frames to run")
	width := flag.Float64("width", 800, "display width")
	height := flag.Float64("height", 600, "display height")
	configPath := flag.String("config", "", "TOML config and style")
	useFont := flag.Bool("font", true, "measure with the Go Regular atlas instead of fixed-width fallback")
	cmds := flag.Bool("cmds", false, "list every draw command")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Var(&clicks, "click", "left click at x,y@frame (repeatable)")
	flag.Parse()

	imcore.SetVerbose(*verbose)
	opts := options{
		frames:  *frames,
		size:    imcore.Vec2{X: float32(*width), Y: float32(*height)},
		clicks:  clicks,
		useFont: *useFont,
	}
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read config:", err)
			os.Exit(1)
		}
		opts.config = data
	}

	dd, err := run(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(renderSummary(dd, *cmds))
}

type options struct {
	frames  int
	size    imcore.Vec2
	clicks  []click
	useFont bool
	config  []byte
}

// run drives the scene for opts.frames frames and returns the last
// frame's draw data.
func run(opts options) (*imcore.DrawData, error) {
	ctxOpts := []imcore.ContextOption{}
	if opts.config != nil {
		cfg, style, err := imcore.LoadSettings(opts.config, imcore.DefaultStyle())
		if err != nil {
			return nil, err
		}
		ctxOpts = append(ctxOpts, imcore.WithConfig(cfg), imcore.WithStyle(style))
	}
	if opts.useFont {
		fonts, err := font.NewDefaultManager(16)
		if err != nil {
			return nil, err
		}
		fonts.Atlas("default").SetTextureID(1)
		ctxOpts = append(ctxOpts, imcore.WithFontProvider(fonts))
	}

	g := imcore.New(nil, imcore.WithContextOptions(ctxOpts...))
	s := &scene{}
	for frame := 1; frame <= opts.frames; frame++ {
		ctx := g.Context()
		for _, cl := range opts.clicks {
			if cl.frame == frame {
				ctx.Events.AddMousePos(cl.pos.X, cl.pos.Y)
				ctx.Events.AddMouseButton(imcore.MouseButtonLeft, true)
			} else if cl.frame == frame-1 {
				ctx.Events.AddMouseButton(imcore.MouseButtonLeft, false)
			}
		}
		s.draw(g.Begin(opts.size, 1.0/60))
		if err := g.End(); err != nil {
			return nil, err
		}
	}
	return g.DrawData(), nil
}
