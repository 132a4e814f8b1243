package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/xtaci/statecrack/rngsolve"
	"github.com/xtaci/statecrack/rngtypes"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "statecrack"
	myApp.Usage = "recover a PRNG's internal state from its observed outputs"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "type, t",
			Usage: "generator type: V8, V8_LEGACY, V8_INT, MT19937",
		},
		cli.IntFlag{
			Name:  "predict, p",
			Value: 10,
			Usage: "number of future values to predict once solved",
		},
		cli.Int64Flag{
			Name:  "multiplier, m",
			Usage: "integer multiplier; required and used only for V8_INT",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		rt, ok := parseRngType(c.String("type"))
		if !ok {
			color.Red("invalid or missing -t/--type")
			cli.ShowAppHelp(c)
			os.Exit(1)
		}
		cfg := Config{
			Type:       rt,
			Predict:    c.Int("predict"),
			Multiplier: uint64(c.Int64("multiplier")),
		}
		if rt == rngtypes.V8Int && cfg.Multiplier == 0 {
			color.Red("V8_INT requires a positive -m/--multiplier")
			cli.ShowAppHelp(c)
			os.Exit(1)
		}

		log.Println("type:", rt)
		log.Println("predict:", cfg.Predict)
		if rt == rngtypes.V8Int {
			log.Println("multiplier:", cfg.Multiplier)
		}

		os.Exit(run(cfg, os.Stdin, os.Stdout))
		return nil
	}

	if err := myApp.Run(os.Args); err != nil {
		log.Printf("%+v\n", err)
		os.Exit(1)
	}
}

// run feeds stdin to the matching solver, stopping early once a solved
// status is reached, then emits up to cfg.Predict predictions. It
// returns the process exit code of spec.md §6.
func run(cfg Config, in io.Reader, out io.Writer) int {
	if rngsolve.IsFloatType(cfg.Type) {
		return runFloat(cfg, in, out)
	}
	return runInt(cfg, in, out)
}

func isSolvedStatus(status rngtypes.SolverStatus) bool {
	return status == rngtypes.StatusSolved || status == rngtypes.StatusSolvedBeforeCacheRefill
}

func runFloat(cfg Config, in io.Reader, out io.Writer) int {
	solver, err := rngsolve.CreateFloat(cfg.Type)
	if err != nil {
		color.Red("%+v", err)
		return 1
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, perr := strconv.ParseFloat(line, 64)
		if perr != nil {
			color.Red("unparseable input line: %q", line)
			return 1
		}
		solver.AddValue(v)
		if solver.Status() == rngtypes.StatusNotSolvable {
			return 2
		}
		if isSolvedStatus(solver.Status()) {
			break
		}
	}

	for i := 0; i < cfg.Predict; i++ {
		v, perr := solver.PredictNext()
		if perr == rngtypes.ErrNotSolvable {
			return 2
		}
		if perr == rngtypes.ErrNotEnoughData {
			return 3
		}
		if perr != nil {
			color.Red("%+v", perr)
			return 1
		}
		fmt.Fprintln(out, v)
	}
	return 0
}

func runInt(cfg Config, in io.Reader, out io.Writer) int {
	solver, err := rngsolve.CreateInt(cfg.Type, cfg.Multiplier)
	if err != nil {
		color.Red("%+v", err)
		return 1
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, perr := strconv.ParseUint(line, 10, 64)
		if perr != nil {
			color.Red("unparseable input line: %q", line)
			return 1
		}
		solver.AddValue(v)
		if solver.Status() == rngtypes.StatusNotSolvable {
			return 2
		}
		if isSolvedStatus(solver.Status()) {
			break
		}
	}

	for i := 0; i < cfg.Predict; i++ {
		v, perr := solver.PredictNext()
		if perr == rngtypes.ErrNotSolvable {
			return 2
		}
		if perr == rngtypes.ErrNotEnoughData {
			return 3
		}
		if perr != nil {
			color.Red("%+v", perr)
			return 1
		}
		fmt.Fprintln(out, v)
	}
	return 0
}
