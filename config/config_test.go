package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

var expectedConfig = Config{
	Items: []Item{
		{"name": "apple", "color": "red"},
		{"name": "banana", "color": "yellow"},
	},
	Selected:        []int{1},
	Multiple:        true,
	Label:           "name",
	Layout:          LayoutTypeBottomUp,
	Prompt:          "[pick]",
	SelectionPrefix: "*",
	Style: StyleSet{
		Basic: Style{
			Fg: ColorDefault,
			Bg: ColorDefault,
		},
		Cursor: Style{
			Fg: ColorBlack | AttrUnderline,
			Bg: ColorCyan,
		},
		Selected: Style{
			Fg: ColorBlack | AttrBold,
			Bg: ColorCyan,
		},
		Prompt: Style{
			Fg: ColorGreen | AttrBold,
			Bg: ColorDefault,
		},
		Status: Style{
			Fg: ColorDefault | AttrReverse,
			Bg: ColorDefault,
		},
	},
}

const yamlConfig = `
Items:
  - name: apple
    color: red
  - name: banana
    color: yellow
Selected: [1]
Multiple: true
Layout: bottom-up
Style:
  Basic:
    - on_default
    - default
  Cursor:
    - underline
    - on_cyan
    - black
  Prompt:
    - green
    - bold
Prompt: "[pick]"
`

func TestReadRC(t *testing.T) {
	txt := `
{
	"Items": [
		{"name": "apple", "color": "red"},
		{"name": "banana", "color": "yellow"}
	],
	"Selected": [1],
	"Multiple": true,
	"Layout": "bottom-up",
	"Style": {
		"Basic": ["on_default", "default"],
		"Cursor": ["underline", "on_cyan", "black"],
		"Prompt": ["green", "bold"]
	},
	"Prompt": "[pick]"
}
`
	var cfg Config
	require.NoError(t, cfg.Init(), "Config.Init should succeed")
	require.NoError(t, json.Unmarshal([]byte(txt), &cfg), "Unmarshalling config should succeed")
	require.Equal(t, expectedConfig, cfg, "configuration matches expected")
	require.NoError(t, cfg.Validate())
}

func TestReadRCYAML(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.Init(), "Config.Init should succeed")
	require.NoError(t, yaml.Unmarshal([]byte(yamlConfig), &cfg), "Unmarshalling YAML config should succeed")
	require.Equal(t, expectedConfig, cfg, "YAML configuration matches expected")
}

func TestReadFilenameYAML(t *testing.T) {
	dir := t.TempDir()
	yamlFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte(yamlConfig), 0o644))

	var cfg Config
	require.NoError(t, cfg.Init())
	require.NoError(t, cfg.ReadFilename(yamlFile))
	require.Equal(t, expectedConfig, cfg)
}

func TestReadFilenameInvalid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
	"Items": [{"name": "apple"}, null],
	"Selected": [0, 5, -1],
	"Layout": "sideways"
}`), 0o644))

	var cfg Config
	require.NoError(t, cfg.Init())
	err := cfg.ReadFilename(file)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr), "validation errors are aggregated")
	require.Len(t, merr.Errors, 4)
	require.Contains(t, err.Error(), "invalid layout type: sideways")
	require.Contains(t, err.Error(), "item 1 is empty")
	require.Contains(t, err.Error(), "selected index 5 is out of range")
	require.Contains(t, err.Error(), "selected index -1 is out of range")

	require.Error(t, cfg.ReadFilename(filepath.Join(dir, "missing.json")))
}

func TestValidateKeepsMultipleInitialSelection(t *testing.T) {
	cfg := Config{
		Items:    []Item{{"name": "a"}, {"name": "b"}},
		Selected: []int{0, 1, 1},
		Layout:   DefaultLayoutType,
	}
	require.NoError(t, cfg.Validate(), "single-select cardinality is enforced by the store, not the settings file")
}

func TestReadItems(t *testing.T) {
	dir := t.TempDir()

	yamlFile := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("- name: a\n- name: b\n  tag: x\n"), 0o644))
	items, err := ReadItems(yamlFile)
	require.NoError(t, err)
	require.Equal(t, []Item{{"name": "a"}, {"name": "b", "tag": "x"}}, items)

	jsonFile := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`[{"name": "c"}]`), 0o644))
	items, err = ReadItems(jsonFile)
	require.NoError(t, err)
	require.Equal(t, []Item{{"name": "c"}}, items)

	badFile := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badFile, []byte(`{"name": "c"}`), 0o644))
	_, err = ReadItems(badFile)
	require.Error(t, err)
}

func TestStringsToStyle(t *testing.T) {
	tests := []struct {
		strings []string
		style   *Style
	}{
		{
			strings: []string{"on_default", "default"},
			style:   &Style{Fg: ColorDefault, Bg: ColorDefault},
		},
		{
			strings: []string{"bold", "on_blue", "yellow"},
			style:   &Style{Fg: ColorYellow | AttrBold, Bg: ColorBlue},
		},
		{
			strings: []string{"underline", "on_cyan", "black"},
			style:   &Style{Fg: ColorBlack | AttrUnderline, Bg: ColorCyan},
		},
		{
			strings: []string{"reverse", "on_red", "white"},
			style:   &Style{Fg: ColorWhite | AttrReverse, Bg: ColorRed},
		},
		{
			strings: []string{"underline", "on_240", "214"},
			style:   &Style{Fg: Attribute(214+1) | AttrUnderline, Bg: Attribute(240 + 1)},
		},
		{
			strings: []string{"#ff8800", "on_#0088ff"},
			style:   &Style{Fg: Attribute(0xff8800) | AttrTrueColor, Bg: Attribute(0x0088ff) | AttrTrueColor},
		},
		{
			strings: []string{"bold", "#00ff00", "on_#000000"},
			style:   &Style{Fg: Attribute(0x00ff00) | AttrTrueColor | AttrBold, Bg: Attribute(0x000000) | AttrTrueColor},
		},
	}

	var a Style
	for _, test := range tests {
		require.NoError(t, StringsToStyle(&a, test.strings), "StringsToStyle should succeed")
		require.Equal(t, test.style, &a, "Expected '%s' to be '%#v', but got '%#v'", test.strings, test.style, a)
	}

	require.Error(t, StringsToStyle(&a, []string{"blinking"}))
	require.Error(t, StringsToStyle(&a, []string{"on_nope"}))
}

func TestAttribute(t *testing.T) {
	a := ColorRed | AttrBold | AttrReverse
	require.Equal(t, ColorRed, a.Color())
	require.True(t, a.Has(AttrBold))
	require.True(t, a.Has(AttrReverse))
	require.False(t, a.Has(AttrUnderline))

	tc := Attribute(0x123456) | AttrTrueColor | AttrUnderline
	require.Equal(t, Attribute(0x123456)|AttrTrueColor, tc.Color())
}

func TestLocateRcfile(t *testing.T) {
	dir := t.TempDir()

	homedirFunc = func() (string, error) {
		return dir, nil
	}

	expected := []string{
		filepath.Join(dir, "selstore"),
		filepath.Join(dir, "1", "selstore"),
		filepath.Join(dir, "2", "selstore"),
		filepath.Join(dir, "3", "selstore"),
		filepath.Join(dir, ".selstore"),
	}

	i := 0
	locater := LocatorFunc(func(dir string) (string, error) {
		require.True(t, i <= len(expected)-1, "Got %d directories, only have %d", i+1, len(expected))
		require.Equal(t, expected[i], dir, "Expected %s, got %s", expected[i], dir)
		i++
		return "", errors.New("error: Not found")
	})

	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", strings.Join(
		[]string{
			filepath.Join(dir, "1"),
			filepath.Join(dir, "2"),
			filepath.Join(dir, "3"),
		},
		fmt.Sprintf("%c", filepath.ListSeparator),
	))

	_, err := LocateRcfile(locater)
	require.Error(t, err)
	require.Equal(t, len(expected), i)

	expected[0] = filepath.Join(dir, ".config", "selstore")
	t.Setenv("XDG_CONFIG_HOME", "")
	i = 0
	_, err = LocateRcfile(locater)
	require.Error(t, err)
	require.Equal(t, len(expected), i)
}

func TestLocateRcfileYAML(t *testing.T) {
	dir := t.TempDir()

	rcDir := filepath.Join(dir, ".selstore")
	require.NoError(t, os.MkdirAll(rcDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(rcDir, "config.yaml"), []byte("{}"), 0o644))

	homedirFunc = func() (string, error) {
		return dir, nil
	}

	// Clear XDG vars so it falls through to ~/.selstore/
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_DIRS", "")

	file, err := LocateRcfile(DefaultConfigLocator)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(rcDir, "config.yaml"), file)
}
