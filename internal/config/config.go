// Package config loads dock styles from files and the environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ivoronin/dockview/pkg/dock"
	"github.com/ivoronin/dockview/pkg/geom"
	"github.com/ivoronin/dockview/pkg/surface"
)

// EnvPrefix prefixes environment overrides, e.g. DOCKVIEW_SEPARATOR_EXTRA.
const EnvPrefix = "DOCKVIEW"

// ErrUnsupportedFormat is returned for style files and dump formats other
// than TOML, YAML or JSON.
var ErrUnsupportedFormat = errors.New("unsupported style format")

// File is the serialized form of dock.Style. Colors are hex strings.
type File struct {
	Padding                 *Margin  `mapstructure:"padding" toml:"padding,omitempty" yaml:"padding,omitempty"`
	BorderColor             string   `mapstructure:"border_color" toml:"border_color" yaml:"border_color"`
	BorderWidth             float32  `mapstructure:"border_width" toml:"border_width" yaml:"border_width"`
	SelectionColor          string   `mapstructure:"selection_color" toml:"selection_color" yaml:"selection_color"`
	SeparatorWidth          float32  `mapstructure:"separator_width" toml:"separator_width" yaml:"separator_width"`
	SeparatorExtra          float32  `mapstructure:"separator_extra" toml:"separator_extra" yaml:"separator_extra"`
	SeparatorColor          string   `mapstructure:"separator_color" toml:"separator_color" yaml:"separator_color"`
	TabBarBackgroundColor   string   `mapstructure:"tab_bar_background_color" toml:"tab_bar_background_color" yaml:"tab_bar_background_color"`
	TabOutlineColor         string   `mapstructure:"tab_outline_color" toml:"tab_outline_color" yaml:"tab_outline_color"`
	TabRounding             Rounding `mapstructure:"tab_rounding" toml:"tab_rounding" yaml:"tab_rounding"`
	TabBackgroundColor      string   `mapstructure:"tab_background_color" toml:"tab_background_color" yaml:"tab_background_color"`
	TabTextColorUnfocused   string   `mapstructure:"tab_text_color_unfocused" toml:"tab_text_color_unfocused" yaml:"tab_text_color_unfocused"`
	TabTextColorFocused     string   `mapstructure:"tab_text_color_focused" toml:"tab_text_color_focused" yaml:"tab_text_color_focused"`
	CloseTabColor           string   `mapstructure:"close_tab_color" toml:"close_tab_color" yaml:"close_tab_color"`
	CloseTabActiveColor     string   `mapstructure:"close_tab_active_color" toml:"close_tab_active_color" yaml:"close_tab_active_color"`
	CloseTabBackgroundColor string   `mapstructure:"close_tab_background_color" toml:"close_tab_background_color" yaml:"close_tab_background_color"`
	ShowCloseButtons        bool     `mapstructure:"show_close_buttons" toml:"show_close_buttons" yaml:"show_close_buttons"`
}

// Margin mirrors geom.Margin.
type Margin struct {
	Left   float32 `mapstructure:"left" toml:"left" yaml:"left"`
	Right  float32 `mapstructure:"right" toml:"right" yaml:"right"`
	Top    float32 `mapstructure:"top" toml:"top" yaml:"top"`
	Bottom float32 `mapstructure:"bottom" toml:"bottom" yaml:"bottom"`
}

// Rounding mirrors geom.Rounding.
type Rounding struct {
	NW float32 `mapstructure:"nw" toml:"nw" yaml:"nw"`
	NE float32 `mapstructure:"ne" toml:"ne" yaml:"ne"`
	SW float32 `mapstructure:"sw" toml:"sw" yaml:"sw"`
	SE float32 `mapstructure:"se" toml:"se" yaml:"se"`
}

// FromStyle converts a style to its serialized form.
func FromStyle(s dock.Style) File {
	f := File{
		BorderColor:             s.BorderColor.Hex(),
		BorderWidth:             s.BorderWidth,
		SelectionColor:          s.SelectionColor.Hex(),
		SeparatorWidth:          s.SeparatorWidth,
		SeparatorExtra:          s.SeparatorExtra,
		SeparatorColor:          s.SeparatorColor.Hex(),
		TabBarBackgroundColor:   s.TabBarBackgroundColor.Hex(),
		TabOutlineColor:         s.TabOutlineColor.Hex(),
		TabRounding:             Rounding(s.TabRounding),
		TabBackgroundColor:      s.TabBackgroundColor.Hex(),
		TabTextColorUnfocused:   s.TabTextColorUnfocused.Hex(),
		TabTextColorFocused:     s.TabTextColorFocused.Hex(),
		CloseTabColor:           s.CloseTabColor.Hex(),
		CloseTabActiveColor:     s.CloseTabActiveColor.Hex(),
		CloseTabBackgroundColor: s.CloseTabBackgroundColor.Hex(),
		ShowCloseButtons:        s.ShowCloseButtons,
	}
	if s.Padding != nil {
		m := Margin(*s.Padding)
		f.Padding = &m
	}
	return f
}

// Style converts the serialized form back to a style. A malformed color is
// reported with its key and wraps surface.ErrInvalidColor.
func (f File) Style() (dock.Style, error) {
	s := dock.Style{
		BorderWidth:      f.BorderWidth,
		SeparatorWidth:   f.SeparatorWidth,
		SeparatorExtra:   f.SeparatorExtra,
		TabRounding:      geom.Rounding(f.TabRounding),
		ShowCloseButtons: f.ShowCloseButtons,
	}
	if f.Padding != nil {
		m := geom.Margin(*f.Padding)
		s.Padding = &m
	}

	colors := []struct {
		key string
		src string
		dst *surface.Color
	}{
		{"border_color", f.BorderColor, &s.BorderColor},
		{"selection_color", f.SelectionColor, &s.SelectionColor},
		{"separator_color", f.SeparatorColor, &s.SeparatorColor},
		{"tab_bar_background_color", f.TabBarBackgroundColor, &s.TabBarBackgroundColor},
		{"tab_outline_color", f.TabOutlineColor, &s.TabOutlineColor},
		{"tab_background_color", f.TabBackgroundColor, &s.TabBackgroundColor},
		{"tab_text_color_unfocused", f.TabTextColorUnfocused, &s.TabTextColorUnfocused},
		{"tab_text_color_focused", f.TabTextColorFocused, &s.TabTextColorFocused},
		{"close_tab_color", f.CloseTabColor, &s.CloseTabColor},
		{"close_tab_active_color", f.CloseTabActiveColor, &s.CloseTabActiveColor},
		{"close_tab_background_color", f.CloseTabBackgroundColor, &s.CloseTabBackgroundColor},
	}
	for _, c := range colors {
		parsed, err := surface.ParseColor(c.src)
		if err != nil {
			return dock.Style{}, fmt.Errorf("%s: %w", c.key, err)
		}
		*c.dst = parsed
	}
	return s, nil
}

// Load overlays the style file at path and DOCKVIEW_* environment variables
// onto base. An empty path applies only the environment.
func Load(path string, base dock.Style) (dock.Style, error) {
	v := viper.New()
	setDefaults(v, FromStyle(base))

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		if _, err := formatOf(path); err != nil {
			return dock.Style{}, err
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return dock.Style{}, fmt.Errorf("read style %s: %w", path, err)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return dock.Style{}, fmt.Errorf("unmarshal style: %w", err)
	}
	s, err := f.Style()
	if err != nil {
		return dock.Style{}, fmt.Errorf("style %s: %w", displayPath(path), err)
	}
	return s, nil
}

func setDefaults(v *viper.Viper, f File) {
	if f.Padding != nil {
		v.SetDefault("padding.left", f.Padding.Left)
		v.SetDefault("padding.right", f.Padding.Right)
		v.SetDefault("padding.top", f.Padding.Top)
		v.SetDefault("padding.bottom", f.Padding.Bottom)
	}
	v.SetDefault("border_color", f.BorderColor)
	v.SetDefault("border_width", f.BorderWidth)
	v.SetDefault("selection_color", f.SelectionColor)
	v.SetDefault("separator_width", f.SeparatorWidth)
	v.SetDefault("separator_extra", f.SeparatorExtra)
	v.SetDefault("separator_color", f.SeparatorColor)
	v.SetDefault("tab_bar_background_color", f.TabBarBackgroundColor)
	v.SetDefault("tab_outline_color", f.TabOutlineColor)
	v.SetDefault("tab_rounding.nw", f.TabRounding.NW)
	v.SetDefault("tab_rounding.ne", f.TabRounding.NE)
	v.SetDefault("tab_rounding.sw", f.TabRounding.SW)
	v.SetDefault("tab_rounding.se", f.TabRounding.SE)
	v.SetDefault("tab_background_color", f.TabBackgroundColor)
	v.SetDefault("tab_text_color_unfocused", f.TabTextColorUnfocused)
	v.SetDefault("tab_text_color_focused", f.TabTextColorFocused)
	v.SetDefault("close_tab_color", f.CloseTabColor)
	v.SetDefault("close_tab_active_color", f.CloseTabActiveColor)
	v.SetDefault("close_tab_background_color", f.CloseTabBackgroundColor)
	v.SetDefault("show_close_buttons", f.ShowCloseButtons)
}

// formatOf maps a file extension to a format name.
func formatOf(path string) (string, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "toml", "json":
		return ext, nil
	case "yaml", "yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(path))
	}
}

func displayPath(path string) string {
	if path == "" {
		return "(environment)"
	}
	return path
}
