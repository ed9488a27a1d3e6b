package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/goccy/go-yaml"
	pdebug "github.com/lestrrat-go/pdebug"
	"github.com/peco/selstore"
	"github.com/peco/selstore/config"
	"github.com/peco/selstore/internal/sighandler"
	"github.com/peco/selstore/internal/util"
	"github.com/peco/selstore/ui"
	"github.com/pkg/errors"
)

var version = "v0.1.0"

// CLI loads items, applies the requested operations to a store and
// prints the resulting state.
type CLI struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	newScreen func() ui.Screen
}

// New creates a CLI bound to the process' standard streams.
func New() *CLI {
	return &CLI{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		newScreen: func() ui.Screen { return ui.NewTcellScreen() },
	}
}

// Run executes the command line in args (without the program name).
func (c *CLI) Run(ctx context.Context, args []string) error {
	if pdebug.Enabled {
		g := pdebug.Marker("CLI.Run %v", args)
		defer g.End()
	}

	var opts cliOptions
	args, err := opts.parse(args, c.Stderr)
	if err != nil {
		return err
	}

	if opts.OptHelp {
		c.Stderr.Write(opts.help())
		return nil
	}

	if opts.OptVersion {
		fmt.Fprintf(c.Stdout, "selstore: %s\n", version)
		return nil
	}

	cfg, rcfile, err := c.readConfig(opts)
	if err != nil {
		return err
	}
	opts.apply(&cfg)

	items, format, err := c.readItems(cfg, rcfile, args)
	if err != nil {
		return err
	}

	ops, err := parseOps(opts.OptOps, format)
	if err != nil {
		return err
	}

	selected := cfg.Selected
	if len(opts.OptSelect) > 0 {
		selected = opts.OptSelect
	}
	store, err := selstore.New(items,
		selstore.WithMultiple(cfg.Multiple),
		selstore.WithSelected(selected...),
	)
	if err != nil {
		return errors.Wrap(err, "failed to create store")
	}

	for _, op := range ops {
		if err := op.apply(store); err != nil {
			return err
		}
	}

	state := store.Get()
	if opts.OptInteractive {
		state, err = c.pick(ctx, store, cfg)
		if err != nil {
			return err
		}
	}

	return writeState(c.Stdout, state, opts.OptOutput)
}

// readConfig reads the settings file named by --rcfile, or the first
// one found in the usual locations.
func (c *CLI) readConfig(opts cliOptions) (config.Config, string, error) {
	var cfg config.Config
	if err := cfg.Init(); err != nil {
		return cfg, "", errors.Wrap(err, "failed to initialize config")
	}

	rcfile := opts.OptRcfile
	if rcfile == "" {
		if file, err := config.LocateRcfile(config.DefaultConfigLocator); err == nil {
			rcfile = file
		}
	}

	if rcfile != "" {
		if err := cfg.ReadFilename(rcfile); err != nil {
			return cfg, "", errors.Wrapf(err, "failed to read config file %s", rcfile)
		}
	}
	return cfg, rcfile, nil
}

// apply overrides settings with the values given on the command line
func (options cliOptions) apply(cfg *config.Config) {
	if options.OptMultiple {
		cfg.Multiple = true
	}
	if options.OptLabel != "" {
		cfg.Label = options.OptLabel
	}
	if options.OptPrompt != "" {
		cfg.Prompt = options.OptPrompt
	}
	if options.OptLayout != "" {
		cfg.Layout = options.OptLayout
	}
	if options.OptSelectionPrefix != "" {
		cfg.SelectionPrefix = options.OptSelectionPrefix
	}
}

// readItems loads the items from FILE, from stdin when it is not a
// terminal, or from the settings file, in that order. It also reports
// the encoding the items were read with.
func (c *CLI) readItems(cfg config.Config, rcfile string, args []string) ([]config.Item, string, error) {
	switch {
	case len(args) > 0:
		items, err := config.ReadItems(args[0])
		if err != nil {
			return nil, "", err
		}
		return items, config.ItemsFormat(args[0]), nil
	case c.Stdin != nil && !util.IsTerminal(c.Stdin) && len(cfg.Items) == 0:
		// YAML is a superset of JSON, so both are accepted
		items, err := config.DecodeItems(c.Stdin, config.FormatYAML)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to decode items from stdin")
		}
		return items, config.FormatYAML, nil
	case len(cfg.Items) > 0:
		return cfg.Items, config.ConfigFormat(rcfile), nil
	default:
		return nil, "", errors.New("you must supply items via filename, stdin or the settings file")
	}
}

// pick lets the user change the selection in the terminal
func (c *CLI) pick(ctx context.Context, store *selstore.Store[config.Item], cfg config.Config) (selstore.State[config.Item], error) {
	release, err := util.AcquireTerminal()
	if err != nil {
		return store.Get(), errors.Wrap(err, "failed to prepare the terminal")
	}
	defer release()

	screen := c.newScreen()
	if err := screen.Init(); err != nil {
		return store.Get(), errors.Wrap(err, "failed to initialize screen")
	}
	defer screen.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sig := sighandler.New(os.Interrupt, syscall.SIGTERM)
	sig.SignalReceivedFunc = func(os.Signal) bool {
		cancel()
		return false
	}
	go sig.Loop(ctx)

	picker := ui.NewPicker(store, screen, labelFunc(cfg.Label),
		ui.WithPrompt(cfg.Prompt),
		ui.WithSelectionPrefix(cfg.SelectionPrefix),
		ui.WithLayout(cfg.Layout),
		ui.WithStyles(cfg.Style),
	)

	state, err := picker.Run(ctx)
	if err != nil {
		if errors.Is(err, ui.ErrCanceled) || errors.Is(err, context.Canceled) {
			return state, util.SetExitStatus(util.MakeIgnorable(err), 1)
		}
		return state, errors.Wrap(err, "picker failed")
	}
	return state, nil
}

// labelFunc displays the property named label, or the whole item when
// it has no such property.
func labelFunc(label string) func(config.Item) string {
	return func(item config.Item) string {
		if v, ok := item[label]; ok && v != nil {
			return fmt.Sprint(v)
		}
		return fmt.Sprint(item)
	}
}

func writeState(w io.Writer, st selstore.State[config.Item], format string) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(st), "failed to encode state as JSON")
	}

	buf, err := yaml.Marshal(st)
	if err != nil {
		return errors.Wrap(err, "failed to encode state as YAML")
	}
	_, err = w.Write(buf)
	return errors.Wrap(err, "failed to write state")
}
