// Command reindeer solves a reindeer maze read from a file or stdin.
//
// It prints the minimal route cost on the first line and the number of cells
// lying on any minimal route on the second.
//
//	reindeer [flags] [file]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/kr/pretty"

	"github.com/katalvlaran/reindeer/maze"
	"github.com/katalvlaran/reindeer/solve"
)

func main() {
	log.SetFlags(0)
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, solve.ErrNoPath):
		log.Print("no path")
		os.Exit(2)
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("reindeer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		part      = fs.Int("part", 0, "answer to print: 1 (cost), 2 (cell count) or 0 (both)")
		paths     = fs.Bool("paths", false, "also print the number of distinct minimal routes")
		stats     = fs.Bool("stats", false, "print search counters to stderr")
		dump      = fs.Bool("dump", false, "pretty-print the full solution to stderr")
		fgprofOut = fs.String("fgprof", "", "write a wall-clock profile to `file`")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: reindeer [flags] [file]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *part < 0 || *part > 2 {
		return fmt.Errorf("-part must be 0, 1 or 2, got %d", *part)
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return flag.ErrHelp
	}

	if *fgprofOut != "" {
		f, err := os.Create(*fgprofOut)
		if err != nil {
			return err
		}
		defer f.Close()
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				log.Printf("fgprof: %s", err)
			}
		}()
	}

	m, err := readMaze(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	if *part == 1 && !*paths && !*stats && !*dump {
		cost, err := solve.SolveCostOnly(m)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, cost)
		return nil
	}

	sol, err := solve.Solve(m)
	if err != nil {
		return err
	}
	if *part != 2 {
		fmt.Fprintln(stdout, sol.Cost)
	}
	if *part != 1 {
		fmt.Fprintln(stdout, len(sol.Cells))
	}
	if *paths {
		n, err := solve.CountRoutes(m)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, n)
	}
	if *stats {
		st := sol.Stats
		fmt.Fprintf(stderr, "maze %dx%d, %s states\n", m.Width, m.Height, humanize.Comma(int64(m.Len()*maze.NumFacings)))
		fmt.Fprintf(stderr, "pushed %s, popped %s, stale %s\n",
			humanize.Comma(int64(st.Pushed)), humanize.Comma(int64(st.Popped)), humanize.Comma(int64(st.Stale)))
		fmt.Fprintf(stderr, "expanded %s, improved %s, ties %s\n",
			humanize.Comma(int64(st.Expanded)), humanize.Comma(int64(st.Improved)), humanize.Comma(int64(st.Ties)))
	}
	if *dump {
		fmt.Fprintf(stderr, "%# v\n", pretty.Formatter(sol))
	}
	return nil
}

// readMaze parses the named file, or stdin when name is empty or "-".
func readMaze(name string, stdin io.Reader) (*maze.Maze, error) {
	if name == "" || name == "-" {
		return maze.Parse(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := maze.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}
