package config

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// StyleSet holds styles for various sections of the picker
type StyleSet struct {
	Basic    Style `json:"Basic" yaml:"Basic"`
	Cursor   Style `json:"Cursor" yaml:"Cursor"`
	Selected Style `json:"Selected" yaml:"Selected"`
	Prompt   Style `json:"Prompt" yaml:"Prompt"`
	Status   Style `json:"Status" yaml:"Status"`
}

// Attribute represents terminal display attributes such as colors
// and text styling (bold, underline, reverse). It is a uint32 bitfield:
//
//	Bits 0-8:   Palette color index (0=default, 1-256 for 256-color palette)
//	Bits 0-23:  RGB color value (when AttrTrueColor flag is set)
//	Bit 24:     AttrTrueColor flag
//	Bit 25:     AttrBold
//	Bit 26:     AttrUnderline
//	Bit 27:     AttrReverse
type Attribute uint32

// Named palette color constants (values 0-8).
const (
	ColorDefault Attribute = 0x0000
	ColorBlack   Attribute = 0x0001
	ColorRed     Attribute = 0x0002
	ColorGreen   Attribute = 0x0003
	ColorYellow  Attribute = 0x0004
	ColorBlue    Attribute = 0x0005
	ColorMagenta Attribute = 0x0006
	ColorCyan    Attribute = 0x0007
	ColorWhite   Attribute = 0x0008
)

const (
	AttrTrueColor Attribute = 0x01000000
	AttrBold      Attribute = 0x02000000
	AttrUnderline Attribute = 0x04000000
	AttrReverse   Attribute = 0x08000000

	attrMask = AttrBold | AttrUnderline | AttrReverse
)

// Color returns a without its text styling bits.
func (a Attribute) Color() Attribute {
	return a &^ attrMask
}

// Has reports whether a carries the styling bit attr.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr == attr
}

// Style describes display attributes for foreground and background.
type Style struct {
	Fg Attribute
	Bg Attribute
}

var colorNames = map[string]Attribute{
	"default": ColorDefault,
	"black":   ColorBlack,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
}

var attrNames = map[string]Attribute{
	"bold":      AttrBold,
	"underline": AttrUnderline,
	"reverse":   AttrReverse,
}

// NewStyleSet creates a new StyleSet struct
func NewStyleSet() *StyleSet {
	ss := &StyleSet{}
	ss.Init()
	return ss
}

// Init initializes the StyleSet with the default look of each section.
func (ss *StyleSet) Init() {
	ss.Basic = Style{Fg: ColorDefault, Bg: ColorDefault}
	ss.Cursor = Style{Fg: ColorDefault | AttrUnderline, Bg: ColorMagenta}
	ss.Selected = Style{Fg: ColorBlack | AttrBold, Bg: ColorCyan}
	ss.Prompt = Style{Fg: ColorDefault | AttrBold, Bg: ColorDefault}
	ss.Status = Style{Fg: ColorDefault | AttrReverse, Bg: ColorDefault}
}

// UnmarshalJSON decodes a JSON array of strings into a Style.
func (s *Style) UnmarshalJSON(buf []byte) error {
	raw := []string{}
	if err := json.Unmarshal(buf, &raw); err != nil {
		return errors.Wrap(err, "failed to unmarshal Style")
	}
	return StringsToStyle(s, raw)
}

// UnmarshalYAML decodes a YAML array of strings into a Style.
func (s *Style) UnmarshalYAML(unmarshal func(any) error) error {
	var raw []string
	if err := unmarshal(&raw); err != nil {
		return errors.Wrap(err, "failed to unmarshal Style from YAML")
	}
	return StringsToStyle(s, raw)
}

// StringsToStyle parses color and attribute names (e.g. "red",
// "on_blue", "bold", "214", "#ff00ff") into style. Unknown names are
// reported as an error.
func StringsToStyle(style *Style, raw []string) error {
	style.Fg = ColorDefault
	style.Bg = ColorDefault

	var attrs Attribute
	for _, s := range raw {
		if attr, ok := attrNames[s]; ok {
			attrs |= attr
			continue
		}

		if name, ok := strings.CutPrefix(s, "on_"); ok {
			bg, err := parseColor(name)
			if err != nil {
				return err
			}
			style.Bg = bg
			continue
		}

		fg, err := parseColor(s)
		if err != nil {
			return err
		}
		style.Fg = fg
	}
	style.Fg |= attrs

	return nil
}

func parseColor(s string) (Attribute, error) {
	if c, ok := colorNames[s]; ok {
		return c, nil
	}

	if hex, ok := strings.CutPrefix(s, "#"); ok && len(hex) == 6 {
		if rgb, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return Attribute(rgb) | AttrTrueColor, nil
		}
	}

	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Attribute(n + 1), nil
	}

	return ColorDefault, errors.Errorf("unknown color or attribute %q", s)
}
