package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"
	"github.com/wcharczuk/bytefmt/pkg/bytefmt"
	"golang.org/x/sys/unix"
)

func main() {
	if err := commandRoot.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

var commandRoot = &cli.Command{
	Name:  "bytefmt",
	Usage: "Convert between raw byte counts and human-readable sizes.",
	Commands: []*cli.Command{
		commandFormat,
		commandParse,
		commandDF,
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		cli.ShowAppHelp(cmd)
		return nil
	},
}

var commandFormat = &cli.Command{
	Name:      "format",
	Usage:     "Format a raw byte count as a human-readable size.",
	ArgsUsage: "[VALUE]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "unit",
			Usage: "Force the output unit (e.g. KB); unknown units fall back to auto-selection",
		},
		&cli.StringFlag{
			Name:  "decimal-places",
			Value: "2",
			Usage: "Number of fractional digits before trimming",
		},
		&cli.BoolFlag{
			Name:  "fixed-decimals",
			Usage: "Keep trailing zero fractional digits",
		},
		&cli.StringFlag{
			Name:  "unit-separator",
			Usage: "String placed between the number and the unit",
		},
		&cli.StringFlag{
			Name:  "thousands-separator",
			Usage: "String placed every three digits of the integer part",
		},
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		if !c.Args().Present() {
			return fmt.Errorf("Must provide a VALUE")
		}
		if len(c.Args().Slice()) > 1 {
			return fmt.Errorf("Must only provide a VALUE")
		}
		value, err := strconv.ParseFloat(c.Args().First(), 64)
		if err != nil {
			return fmt.Errorf("format failed: %w", err)
		}
		places, err := strconv.Atoi(c.String("decimal-places"))
		if err != nil {
			return fmt.Errorf("format failed: invalid decimal-places; %w", err)
		}
		formatted, ok := bytefmt.Format(value,
			bytefmt.WithUnit(c.String("unit")),
			bytefmt.DecimalPlaces(places),
			bytefmt.FixedDecimals(c.Bool("fixed-decimals")),
			bytefmt.UnitSeparator(c.String("unit-separator")),
			bytefmt.ThousandsSeparator(c.String("thousands-separator")),
		)
		if !ok {
			return fmt.Errorf("format failed: value is not finite")
		}
		fmt.Fprintf(os.Stdout, "%s\n", formatted)
		return nil
	},
}

var commandParse = &cli.Command{
	Name:      "parse",
	Usage:     "Parse human-readable sizes (e.g. 1.5KB) into raw byte counts.",
	ArgsUsage: "[SIZE...]",
	Action: func(ctx context.Context, c *cli.Command) error {
		if !c.Args().Present() {
			return fmt.Errorf("Must provide at least one SIZE")
		}
		for _, arg := range c.Args().Slice() {
			value, err := bytefmt.Parse(arg)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%d\n", value)
		}
		return nil
	},
}

var commandDF = &cli.Command{
	Name:      "df",
	Usage:     "Report filesystem space for a path in human-readable sizes.",
	ArgsUsage: "[PATH]",
	Action: func(ctx context.Context, c *cli.Command) error {
		path := c.Args().First()
		if path == "" {
			path = "."
		}
		var st unix.Statfs_t
		if err := unix.Statfs(path, &st); err != nil {
			return fmt.Errorf("df failed: %w", err)
		}
		blockSize := uint64(st.Bsize)
		total := float64(uint64(st.Blocks) * blockSize)
		free := float64(uint64(st.Bfree) * blockSize)
		available := float64(uint64(st.Bavail) * blockSize)
		fmt.Fprintf(os.Stdout, "Total:     %s\n", formatSpace(total))
		fmt.Fprintf(os.Stdout, "Free:      %s\n", formatSpace(free))
		fmt.Fprintf(os.Stdout, "Available: %s\n", formatSpace(available))
		return nil
	},
}

func formatSpace(value float64) string {
	formatted, _ := bytefmt.Format(value, bytefmt.UnitSeparator(" "))
	return formatted
}
