package main

import (
	"context"
	"fmt"
	"os"

	"github.com/peco/selstore/internal/util"
)

func main() {
	if err := New().Run(context.Background(), os.Args[1:]); err != nil {
		if !util.IsIgnorableError(err) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		st, _ := util.GetExitStatus(err)
		os.Exit(st)
	}
}
