package imcore

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds input timing and bookkeeping knobs for a Context.
type Config struct {
	KeyRepeatDelay          float32 `toml:"key_repeat_delay"`           // Seconds before a held key repeats
	KeyRepeatRate           float32 `toml:"key_repeat_rate"`            // Seconds between repeats
	MouseDragThreshold      float32 `toml:"mouse_drag_threshold"`       // Pixels before a press becomes a drag
	MouseDoubleClickTime    float32 `toml:"mouse_double_click_time"`    // Seconds
	MouseDoubleClickMaxDist float32 `toml:"mouse_double_click_max_dist"` // Pixels
	DefaultDeltaTime        float32 `toml:"default_delta_time"`         // Used when NewFrame gets dt <= 0
	TrickleEventQueue       bool    `toml:"trickle_event_queue"`
	WindowEvictFrames       uint64  `toml:"window_evict_frames"` // 0 disables eviction
	HoverTooltipDelay       float32 `toml:"hover_tooltip_delay"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		KeyRepeatDelay:          0.275,
		KeyRepeatRate:           0.050,
		MouseDragThreshold:      6,
		MouseDoubleClickTime:    0.30,
		MouseDoubleClickMaxDist: 6,
		DefaultDeltaTime:        1.0 / 60.0,
		TrickleEventQueue:       true,
		WindowEvictFrames:       600,
		HoverTooltipDelay:       0.5,
	}
}

// LoadConfig parses TOML over DefaultConfig. Unknown keys are an error.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.DefaultDeltaTime <= 0 {
		return cfg, fmt.Errorf("failed to parse config: default_delta_time must be positive, got %v", cfg.DefaultDeltaTime)
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a TOML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	return LoadConfig(data)
}

// MarshalConfig encodes cfg as TOML.
func MarshalConfig(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// styleFile is the TOML shape of a theme. Absent fields keep the base value.
type styleFile struct {
	Alpha            *float32          `toml:"alpha"`
	DisabledAlpha    *float32          `toml:"disabled_alpha"`
	WindowPadding    *[2]float32       `toml:"window_padding"`
	WindowBorderSize *float32          `toml:"window_border_size"`
	FramePadding     *[2]float32       `toml:"frame_padding"`
	ItemSpacing      *[2]float32       `toml:"item_spacing"`
	ItemInnerSpacing *[2]float32       `toml:"item_inner_spacing"`
	IndentSpacing    *float32          `toml:"indent_spacing"`
	CellPadding      *[2]float32       `toml:"cell_padding"`
	ScrollbarSize    *float32          `toml:"scrollbar_size"`
	GrabMinSize      *float32          `toml:"grab_min_size"`
	FontName         *string           `toml:"font_name"`
	FontSize         *float32          `toml:"font_size"`
	CharWidth        *float32          `toml:"char_width"`
	Colors           map[string]string `toml:"colors"`
}

// LoadStyle applies a TOML theme on top of base.
//
//	alpha = 0.95
//	item_spacing = [8.0, 4.0]
//	[colors]
//	Text = "#FFFFFF"
//	WindowBg = "#141414F0"
func LoadStyle(data []byte, base Style) (Style, error) {
	var f styleFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return base, fmt.Errorf("failed to parse style: %w", err)
	}

	s := base
	setF := func(dst *float32, src *float32) {
		if src != nil {
			*dst = *src
		}
	}
	setV := func(dst *Vec2, src *[2]float32) {
		if src != nil {
			*dst = Vec2{src[0], src[1]}
		}
	}
	setF(&s.Alpha, f.Alpha)
	setF(&s.DisabledAlpha, f.DisabledAlpha)
	setV(&s.WindowPadding, f.WindowPadding)
	setF(&s.WindowBorderSize, f.WindowBorderSize)
	setV(&s.FramePadding, f.FramePadding)
	setV(&s.ItemSpacing, f.ItemSpacing)
	setV(&s.ItemInnerSpacing, f.ItemInnerSpacing)
	setF(&s.IndentSpacing, f.IndentSpacing)
	setV(&s.CellPadding, f.CellPadding)
	setF(&s.ScrollbarSize, f.ScrollbarSize)
	setF(&s.GrabMinSize, f.GrabMinSize)
	setF(&s.FontSize, f.FontSize)
	setF(&s.CharWidth, f.CharWidth)
	if f.FontName != nil {
		s.FontName = *f.FontName
	}

	for name, hex := range f.Colors {
		c, ok := ColByName(name)
		if !ok {
			return base, fmt.Errorf("failed to parse style: unknown color %q", name)
		}
		v, err := ParseHexColor(hex)
		if err != nil {
			return base, fmt.Errorf("failed to parse style: color %s: %w", name, err)
		}
		s.Colors[c] = v
	}
	return s, nil
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" into a packed color.
func ParseHexColor(s string) (uint32, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return 0, fmt.Errorf("invalid hex color %q", s)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(h) == 6 {
		n = n<<8 | 0xFF
	}
	return RGBA(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)), nil
}

// LoadSettings parses a file holding Config keys at the top level and an
// optional [style] table applied over base.
//
//	key_repeat_delay = 0.3
//	[style]
//	frame_padding = [6.0, 4.0]
//	[style.colors]
//	Button = "#3A3A3AFF"
func LoadSettings(data []byte, base Style) (Config, Style, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return DefaultConfig(), base, fmt.Errorf("failed to parse settings: %w", err)
	}
	styleRaw, hasStyle := raw["style"]
	delete(raw, "style")

	cfgData, err := toml.Marshal(raw)
	if err != nil {
		return DefaultConfig(), base, fmt.Errorf("failed to parse settings: %w", err)
	}
	cfg, err := LoadConfig(cfgData)
	if err != nil {
		return cfg, base, err
	}
	if !hasStyle {
		return cfg, base, nil
	}
	if _, ok := styleRaw.(map[string]any); !ok {
		return cfg, base, fmt.Errorf("failed to parse settings: style must be a table")
	}
	styleData, err := toml.Marshal(styleRaw)
	if err != nil {
		return cfg, base, fmt.Errorf("failed to parse settings: %w", err)
	}
	style, err := LoadStyle(styleData, base)
	return cfg, style, err
}
