package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Item is a single entry of the item list. Items read from a settings
// file are plain maps; each decoded map is a distinct object, so it has
// its own identity within a store.
type Item = map[string]any

// Config holds all the data that can be configured in the
// external configuration file
type Config struct {
	// Items is the initial list of items to choose from.
	Items []Item `json:"Items" yaml:"Items"`

	// Selected lists the indexes of the initially selected items.
	Selected []int `json:"Selected" yaml:"Selected"`

	// Multiple enables multi-select mode.
	Multiple bool `json:"Multiple" yaml:"Multiple"`

	// Label names the item property that is displayed for each item.
	// Items lacking the property are displayed as their full content.
	Label string `json:"Label" yaml:"Label"`

	Prompt string     `json:"Prompt" yaml:"Prompt"`
	Layout LayoutType `json:"Layout" yaml:"Layout"`
	Style  StyleSet   `json:"Style" yaml:"Style"`

	// Use this prefix to denote currently selected items
	SelectionPrefix string `json:"SelectionPrefix" yaml:"SelectionPrefix"`
}

const (
	// DefaultPrompt is the default prompt string shown above the list.
	DefaultPrompt = "SELECT>"

	// DefaultLabel is the property displayed when Label is unset.
	DefaultLabel = "name"

	// DefaultSelectionPrefix marks selected items.
	DefaultSelectionPrefix = "*"
)

// Encodings understood for settings and item files.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var homedirFunc = os.UserHomeDir

// ConfigFormat returns the encoding of a settings file: YAML for .yaml
// and .yml files, JSON otherwise.
func ConfigFormat(filename string) string {
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ItemsFormat returns the encoding of an item file: JSON for .json
// files, YAML otherwise.
func ItemsFormat(filename string) string {
	if filepath.Ext(filename) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// Init initializes the Config with default values
func (c *Config) Init() error {
	c.Style.Init()
	c.Prompt = DefaultPrompt
	c.Label = DefaultLabel
	c.Layout = DefaultLayoutType
	c.SelectionPrefix = DefaultSelectionPrefix
	return nil
}

// ReadFilename reads the config from the given file, and
// does the appropriate processing, if any
func (c *Config) ReadFilename(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to open file %s", filename)
	}
	defer f.Close()

	switch ConfigFormat(filename) {
	case FormatYAML:
		if err := yaml.NewDecoder(f).Decode(c); err != nil {
			return errors.Wrap(err, "failed to decode YAML")
		}
	default:
		if err := json.NewDecoder(f).Decode(c); err != nil {
			return errors.Wrap(err, "failed to decode JSON")
		}
	}

	return c.Validate()
}

// Validate checks the configuration for consistency, reporting every
// problem it finds.
func (c *Config) Validate() error {
	var result *multierror.Error

	if !IsValidLayoutType(c.Layout) {
		result = multierror.Append(result, errors.Errorf("invalid layout type: %s", c.Layout))
	}

	for i, item := range c.Items {
		if item == nil {
			result = multierror.Append(result, errors.Errorf("item %d is empty", i))
		}
	}

	for _, idx := range c.Selected {
		if idx < 0 || idx >= len(c.Items) {
			result = multierror.Append(result, errors.Errorf("selected index %d is out of range (%d items)", idx, len(c.Items)))
		}
	}

	return result.ErrorOrNil()
}

// ReadItems reads a list of items from a YAML or JSON file. The file
// must contain a sequence of mappings.
func ReadItems(filename string) ([]Item, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file %s", filename)
	}
	defer f.Close()

	items, err := DecodeItems(f, ItemsFormat(filename))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode items from %s", filename)
	}
	return items, nil
}

// DecodeItems reads a sequence of mappings from r.
func DecodeItems(r io.Reader, format string) ([]Item, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read items")
	}

	var items []Item
	if format == FormatJSON {
		err = json.Unmarshal(buf, &items)
	} else {
		err = yaml.Unmarshal(buf, &items)
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DecodeValue decodes a single scalar written on the command line the
// same way values of the given format are decoded, so that it compares
// equal to item properties read from such a file. Text that is not a
// valid value is kept as a string.
func DecodeValue(raw, format string) any {
	var v any
	var err error
	if format == FormatJSON {
		err = json.Unmarshal([]byte(raw), &v)
	} else {
		err = yaml.Unmarshal([]byte(raw), &v)
	}
	if err != nil || v == nil {
		return raw
	}
	return v
}

// Locator locates a config file in a given directory.
type Locator interface {
	Locate(string) (string, error)
}

// LocatorFunc is a function that implements Locator.
type LocatorFunc func(string) (string, error)

// Locate calls the underlying function.
func (f LocatorFunc) Locate(dir string) (string, error) {
	return f(dir)
}

var configFilenames = []string{"config.json", "config.yaml", "config.yml"}

// DefaultConfigLocator searches for a config file with one of the known
// filenames (config.json, config.yaml, config.yml) in the given directory.
var DefaultConfigLocator = LocatorFunc(func(dir string) (string, error) {
	for _, basename := range configFilenames {
		file := filepath.Join(dir, basename)
		if _, err := os.Stat(file); err == nil {
			return file, nil
		}
	}
	return "", errors.Errorf("config file not found in %s", dir)
})

// LocateRcfile attempts to find the config file in various locations
func LocateRcfile(locater Locator) (string, error) {
	// http://standards.freedesktop.org/basedir-spec/basedir-spec-latest.html
	//
	// Try in this order:
	//	  $XDG_CONFIG_HOME/selstore/config.{json,yaml,yml}
	//    $XDG_CONFIG_DIR/selstore/config.{json,yaml,yml} (where XDG_CONFIG_DIR is listed in $XDG_CONFIG_DIRS)
	//	  ~/.selstore/config.{json,yaml,yml}

	home, uErr := homedirFunc()

	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		if file, err := locater.Locate(filepath.Join(dir, "selstore")); err == nil {
			return file, nil
		}
	} else if uErr == nil { // silently ignore failure for homedir()
		if file, err := locater.Locate(filepath.Join(home, ".config", "selstore")); err == nil {
			return file, nil
		}
	}

	if dirs := os.Getenv("XDG_CONFIG_DIRS"); dirs != "" {
		for dir := range strings.SplitSeq(dirs, fmt.Sprintf("%c", filepath.ListSeparator)) {
			if file, err := locater.Locate(filepath.Join(dir, "selstore")); err == nil {
				return file, nil
			}
		}
	}

	if uErr == nil {
		if file, err := locater.Locate(filepath.Join(home, ".selstore")); err == nil {
			return file, nil
		}
	}

	return "", errors.New("config file not found")
}
