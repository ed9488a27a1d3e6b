package main

import (
	"bytes"
	"fmt"
	"io"
	"reflect"

	"github.com/jessevdk/go-flags"
	"github.com/peco/selstore/config"
	"github.com/pkg/errors"
)

type cliOptions struct {
	OptHelp            bool     `short:"h" long:"help" description:"show this help message and exit"`
	OptRcfile          string   `long:"rcfile" description:"path to the settings file"`
	OptVersion         bool     `long:"version" description:"print the version and exit"`
	OptMultiple        bool     `short:"m" long:"multiple" description:"allow more than one item to be selected"`
	OptSelect          []int    `short:"s" long:"select" description:"index of an initially selected item (0 base). may be repeated"`
	OptLabel           string   `long:"label" description:"item property displayed in the picker. default is 'name'"`
	OptPrompt          string   `long:"prompt" description:"specify the prompt string"`
	OptLayout          string   `long:"layout" description:"layout to be used. 'top-down' or 'bottom-up'. default is 'top-down'"`
	OptSelectionPrefix string   `long:"selection-prefix" description:"prefix marking selected items in the picker"`
	OptOps             []string `long:"op" description:"operation applied to the selection, in order. may be repeated.\nselect:<i,...>, extend:<i,...>, unselect[:<i,...>],\nselect-by:<prop>=<value>, extend-by:<prop>=<value>,\nunselect-by:<prop>=<value>, reset"`
	OptOutput          string   `long:"output" description:"output format, 'yaml' or 'json'. default is 'yaml'"`
	OptInteractive     bool     `short:"i" long:"interactive" description:"pick items in the terminal after the operations are applied"`
}

func (options *cliOptions) parse(s []string, stderr io.Writer) ([]string, error) {
	p := flags.NewParser(options, flags.None)
	args, err := p.ParseArgs(s)
	if err != nil {
		stderr.Write(options.help())
		return nil, errors.Wrap(err, "invalid command line options")
	}

	if err := options.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid command line arguments")
	}

	return args, nil
}

func (options cliOptions) Validate() error {
	if options.OptLayout != "" {
		if !config.IsValidLayoutType(options.OptLayout) {
			return errors.New("unknown layout: '" + options.OptLayout + "'")
		}
	}

	switch options.OptOutput {
	case "", config.FormatYAML, config.FormatJSON:
	default:
		return errors.New("unknown output format: '" + options.OptOutput + "'")
	}
	return nil
}

func (options cliOptions) help() []byte {
	buf := bytes.Buffer{}

	fmt.Fprintf(&buf, `
Usage: selstore [options] [FILE]

Options:
`)

	t := reflect.TypeOf(options)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag

		var o string
		if s := tag.Get("short"); s != "" {
			o = fmt.Sprintf("-%s, --%s", tag.Get("short"), tag.Get("long"))
		} else {
			o = fmt.Sprintf("--%s", tag.Get("long"))
		}

		fmt.Fprintf(
			&buf,
			"  %-21s %s\n",
			o,
			tag.Get("description"),
		)
	}

	return buf.Bytes()
}
