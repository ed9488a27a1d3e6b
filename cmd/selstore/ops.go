package main

import (
	"strconv"
	"strings"

	"github.com/peco/selstore"
	"github.com/peco/selstore/config"
	"github.com/pkg/errors"
)

type opKind int

const (
	opSelect     opKind = iota + 1 // replace the selection with the given indexes
	opExtend                       // add the given indexes to the selection
	opUnselect                     // remove the given indexes, or everything
	opSelectBy                     // replace the selection with the first matching item
	opExtendBy                     // add the first matching item to the selection
	opUnselectBy                   // remove the first matching item
	opReset                        // republish the items and clear the selection
)

var opNames = map[string]opKind{
	"select":      opSelect,
	"extend":      opExtend,
	"unselect":    opUnselect,
	"select-by":   opSelectBy,
	"extend-by":   opExtendBy,
	"unselect-by": opUnselectBy,
	"reset":       opReset,
}

// operation is one --op argument
type operation struct {
	kind    opKind
	indexes []int
	prop    string
	value   any
}

// parseOps parses every --op argument. Values in <prop>=<value> pairs
// are decoded with format so they compare equal to item properties.
func parseOps(list []string, format string) ([]operation, error) {
	ops := make([]operation, 0, len(list))
	for _, s := range list {
		op, err := parseOp(s, format)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseOp(s, format string) (operation, error) {
	name, arg, hasArg := strings.Cut(s, ":")
	kind, ok := opNames[name]
	if !ok {
		return operation{}, errors.Errorf("unknown operation %q", name)
	}

	op := operation{kind: kind}
	switch kind {
	case opSelect, opExtend:
		if arg == "" {
			return operation{}, errors.Errorf("operation %q requires a list of indexes", name)
		}
		indexes, err := parseIndexes(arg)
		if err != nil {
			return operation{}, errors.Wrapf(err, "invalid operation %q", s)
		}
		op.indexes = indexes
	case opUnselect:
		if arg != "" {
			indexes, err := parseIndexes(arg)
			if err != nil {
				return operation{}, errors.Wrapf(err, "invalid operation %q", s)
			}
			op.indexes = indexes
		}
	case opSelectBy, opExtendBy, opUnselectBy:
		prop, raw, ok := strings.Cut(arg, "=")
		if !ok || prop == "" {
			return operation{}, errors.Errorf("operation %q requires <property>=<value>", name)
		}
		op.prop = prop
		op.value = config.DecodeValue(raw, format)
	case opReset:
		if hasArg {
			return operation{}, errors.Errorf("operation %q takes no argument", name)
		}
	}
	return op, nil
}

func parseIndexes(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	indexes := make([]int, 0, len(fields))
	for _, f := range fields {
		i, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid index %q", f)
		}
		indexes = append(indexes, i)
	}
	return indexes, nil
}

// apply performs op on store. Indexes and properties that match
// nothing are ignored, as the store ignores them.
func (op operation) apply(store *selstore.Store[config.Item]) error {
	switch op.kind {
	case opSelect:
		store.SelectIndex(true, op.indexes...)
	case opExtend:
		store.SelectIndex(false, op.indexes...)
	case opUnselect:
		if len(op.indexes) == 0 {
			store.UnselectAll()
		} else {
			store.UnselectIndex(op.indexes...)
		}
	case opSelectBy:
		store.SelectIndex(true, store.FindIndexBy(op.prop, op.value))
	case opExtendBy:
		store.SelectIndex(false, store.FindIndexBy(op.prop, op.value))
	case opUnselectBy:
		if idx := store.FindIndexBy(op.prop, op.value); idx >= 0 {
			store.UnselectIndex(idx)
		}
	case opReset:
		if err := store.Reset(store.Get().Items); err != nil {
			return errors.Wrap(err, "failed to reset items")
		}
	}
	return nil
}
