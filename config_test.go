package imcore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig([]byte(`
key_repeat_delay = 0.5
trickle_event_queue = false
window_evict_frames = 10
`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.KeyRepeatDelay != 0.5 || cfg.TrickleEventQueue || cfg.WindowEvictFrames != 10 {
		t.Errorf("parsed config = %+v", cfg)
	}
	if cfg.KeyRepeatRate != DefaultConfig().KeyRepeatRate {
		t.Error("unset keys should keep their defaults")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "no_such_key = 1"},
		{"bad syntax", "key_repeat_delay = "},
		{"zero delta", "default_delta_time = 0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestMarshalConfigRoundTrip(t *testing.T) {
	in := DefaultConfig()
	in.MouseDragThreshold = 12
	data, err := MarshalConfig(in)
	if err != nil {
		t.Fatalf("MarshalConfig: %v", err)
	}
	out, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imcore.toml")
	if err := os.WriteFile(path, []byte("hover_tooltip_delay = 1.25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.HoverTooltipDelay != 1.25 {
		t.Errorf("HoverTooltipDelay = %v", cfg.HoverTooltipDelay)
	}
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoadStyle(t *testing.T) {
	base := DefaultStyle()
	s, err := LoadStyle([]byte(`
alpha = 0.5
item_spacing = [10.0, 2.0]
font_name = "mono"

[colors]
Text = "#FF0000"
WindowBg = "#00FF0080"
`), base)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if s.Alpha != 0.5 || s.ItemSpacing != (Vec2{10, 2}) || s.FontName != "mono" {
		t.Errorf("style fields not applied: alpha=%v spacing=%v font=%q", s.Alpha, s.ItemSpacing, s.FontName)
	}
	if s.Colors[ColText] != RGBA(0xFF, 0, 0, 0xFF) {
		t.Errorf("Text color = %#x", s.Colors[ColText])
	}
	if s.Colors[ColWindowBg] != RGBA(0, 0xFF, 0, 0x80) {
		t.Errorf("WindowBg color = %#x", s.Colors[ColWindowBg])
	}
	if s.FramePadding != base.FramePadding {
		t.Error("absent fields should keep the base value")
	}
}

func TestLoadStyleErrors(t *testing.T) {
	base := DefaultStyle()
	for _, data := range []string{
		"[colors]\nNotAColor = \"#FFFFFF\"",
		"[colors]\nText = \"red\"",
		"unknown_field = 1",
	} {
		s, err := LoadStyle([]byte(data), base)
		if err == nil {
			t.Errorf("LoadStyle(%q) should fail", data)
		}
		if s.Colors != base.Colors {
			t.Errorf("LoadStyle(%q) should return base on error", data)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"#FFFFFF", ColorWhite, false},
		{"000000", ColorBlack, false},
		{"#11223344", RGBA(0x11, 0x22, 0x33, 0x44), false},
		{"#FFF", 0, true},
		{"#GGGGGG", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestLoadSettings(t *testing.T) {
	cfg, style, err := LoadSettings([]byte(`
key_repeat_rate = 0.1

[style]
frame_padding = [6.0, 4.0]

[style.colors]
Button = "#3A3A3AFF"
`), DefaultStyle())
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if cfg.KeyRepeatRate != 0.1 {
		t.Errorf("KeyRepeatRate = %v", cfg.KeyRepeatRate)
	}
	if style.FramePadding != (Vec2{6, 4}) {
		t.Errorf("FramePadding = %v", style.FramePadding)
	}
	if style.Colors[ColButton] != RGBA(0x3A, 0x3A, 0x3A, 0xFF) {
		t.Errorf("Button color = %#x", style.Colors[ColButton])
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"style not a table", `style = 3`, "style must be a table"},
		{"bad config key", "bogus = true", "failed to parse config"},
		{"bad style key", "[style]\nbogus = 1", "failed to parse style"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LoadSettings([]byte(tt.data), DefaultStyle())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadSettingsEmpty(t *testing.T) {
	base := LightStyle()
	cfg, style, err := LoadSettings(nil, base)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if cfg != DefaultConfig() || style.Colors != base.Colors {
		t.Error("empty settings should yield defaults and the base style")
	}
}
