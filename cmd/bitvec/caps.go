package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/hupe1980/bitvec/bitscan"
	"github.com/urfave/cli/v2"
)

var Caps = cli.Command{
	Action: printCaps,
	Name:   "caps",
	Usage:  "prints the active bit scan implementation and detected CPU features",
}

func printCaps(ctx *cli.Context) error {
	w := ctx.App.Writer
	features := bitscan.Features()
	if len(features) == 0 {
		features = []string{"-"}
	}

	fmt.Fprintf(w, "platform:        %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "active:          %s\n", bitscan.Active())
	fmt.Fprintf(w, "overridden:      %v\n", bitscan.IsOverridden())
	fmt.Fprintf(w, "hardware 32-bit: %v\n", bitscan.Has32BitScan())
	fmt.Fprintf(w, "hardware 64-bit: %v\n", bitscan.Has64BitScan())
	fmt.Fprintf(w, "cpu features:    %s\n", strings.Join(features, ","))
	return nil
}
