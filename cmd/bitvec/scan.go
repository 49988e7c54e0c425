package main

import (
	"fmt"
	"strconv"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/bitscan"
	"github.com/hupe1980/bitvec/internal/input"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var Scan = cli.Command{
	Action:    doScan,
	Name:      "scan",
	Usage:     "reports size and first set bits of bit strings",
	ArgsUsage: "[bit-string...]",
	Flags: []cli.Flag{
		&widthFlag,
		&inputFlag,
		&concurrencyFlag,
	},
}

var (
	widthFlag = cli.IntFlag{
		Name:  "width",
		Usage: "word width in bits (32 or 64)",
		Value: 64,
	}
	inputFlag = cli.StringSliceFlag{
		Name:  "input",
		Usage: "file holding a bit string; .zst, .gz and .lz4 files are decompressed",
	}
	concurrencyFlag = cli.IntFlag{
		Name:  "concurrency",
		Usage: "number of inputs scanned in parallel",
		Value: 4,
	}
)

type source struct {
	name string
	path string // empty for inline bit strings
	text string
}

type report struct {
	name        string
	size        int
	capacity    int
	ones        int
	left, right string
}

func (r report) String() string {
	return fmt.Sprintf("%s\tsize=%d\tcap=%d\tones=%d\tleft=%s\tright=%s",
		r.name, r.size, r.capacity, r.ones, r.left, r.right)
}

func doScan(ctx *cli.Context) error {
	logger, err := newLogger(ctx)
	if err != nil {
		return err
	}

	width := ctx.Int(widthFlag.Name)
	if width != 32 && width != 64 {
		return fmt.Errorf("invalid width %d, must be 32 or 64", width)
	}

	var sources []source
	for _, path := range ctx.StringSlice(inputFlag.Name) {
		sources = append(sources, source{name: path, path: path})
	}
	for i, arg := range ctx.Args().Slice() {
		sources = append(sources, source{name: "arg" + strconv.Itoa(i), text: arg})
	}
	if len(sources) == 0 {
		return fmt.Errorf("no input, pass bit strings or --%s", inputFlag.Name)
	}

	reports := make([]report, len(sources))
	g, _ := errgroup.WithContext(ctx.Context)
	g.SetLimit(max(1, ctx.Int(concurrencyFlag.Name)))
	for i, src := range sources {
		g.Go(func() error {
			text := src.text
			if src.path != "" {
				var err error
				if text, err = input.ReadAll(src.path); err != nil {
					return err
				}
			}

			l := logger.WithInput(src.name).WithWidth(width)
			var err error
			if width == 32 {
				reports[i], err = scanText[uint32](src.name, text, l)
			} else {
				reports[i], err = scanText[uint64](src.name, text, l)
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range reports {
		fmt.Fprintln(ctx.App.Writer, r)
	}
	return nil
}

func scanText[W bitscan.Word](name, text string, logger *bitvec.Logger) (report, error) {
	v, err := bitvec.Parse[W](text, bitvec.WithLogger(logger))
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", name, err)
	}
	return report{
		name:     name,
		size:     v.Len(),
		capacity: v.Cap(),
		ones:     v.Count(),
		left:     formatPos(v.CountZero(bitvec.Left)),
		right:    formatPos(v.CountZero(bitvec.Right)),
	}, nil
}

func formatPos(pos int, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.Itoa(pos)
}
