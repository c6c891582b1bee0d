// Command gridpath runs one shortest-path search over a cost grid and prints
// the route, one cell per line, for a display to replay.
//
// Usage:
//
//	gridpath -start 0,0 -goal 4,4 [-grid file] [-block "1,2;2,2"] [-env .env]
//
// Without -grid a GRIDPATH_ROWS×GRIDPATH_COLS grid of GRIDPATH_FILL cells is
// used (20×20 of 1 by default). Each -block cell is toggled before searching.
// Exit status is 0 on success or -h, 2 when no route exists, and 1 on any
// other error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// exitNoPath is the exit status when the search completes without a route.
const exitNoPath = 2

func main() {
	if code := exitCode(run(os.Args[1:], os.Stdout)); code != 0 {
		os.Exit(code)
	}
}

// exitCode logs err and maps it to the process exit status.
// A -h/-help request is a success; flag has already printed the usage.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, pathfind.ErrNoPath):
		log.Printf("[APP] [INFO] %v", err)
		return exitNoPath
	default:
		log.Printf("[APP] [FATAL] %v", err)
		return 1
	}
}

// run parses args, builds the grid, searches, and writes the route to out.
func run(args []string, out io.Writer) error {
	fset := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	var (
		gridFile = fset.String("grid", "", "grid text file (rows of integer costs, 0 = obstacle)")
		startArg = fset.String("start", "", "start cell as row,col")
		goalArg  = fset.String("goal", "", "goal cell as row,col")
		blockArg = fset.String("block", "", "cells to toggle as obstacles, row,col;row,col")
		envFile  = fset.String("env", "", "optional .env file with GRIDPATH_* defaults")
	)
	if err := fset.Parse(args); err != nil {
		return err
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}

	start, err := parseCoord(*startArg)
	if err != nil {
		return fmt.Errorf("-start: %w", err)
	}
	goal, err := parseCoord(*goalArg)
	if err != nil {
		return fmt.Errorf("-goal: %w", err)
	}
	blocks, err := parseCoords(*blockArg)
	if err != nil {
		return fmt.Errorf("-block: %w", err)
	}

	g, err := loadGrid(*gridFile, cfg)
	if err != nil {
		return err
	}
	for _, c := range blocks {
		if err = g.ToggleObstacle(c); err != nil {
			return err
		}
	}

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	p, err := pathfind.FindShortestPathContext(ctx, g, start, goal)
	if err != nil {
		return err
	}
	log.Printf("[APP] [INFO] route %v→%v: %d cells, cost %d, %d settled", start, goal, p.Len(), p.Cost, p.Expanded)

	next := p.Replay()
	for c, ok := next(); ok; c, ok = next() {
		if _, err = fmt.Fprintf(out, "%d,%d\n", c.Row, c.Col); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "cost %d\n", p.Cost)
	return err
}

// loadGrid reads path when set, otherwise builds a grid from cfg.
func loadGrid(path string, cfg config.Config) (*grid.Grid, error) {
	if path == "" {
		return grid.New(cfg.Rows, cfg.Cols, grid.WithFill(cfg.Fill))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return grid.Parse(f)
}

// parseCoord parses "row,col".
func parseCoord(s string) (grid.Coord, error) {
	r, c, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return grid.Coord{}, fmt.Errorf("want row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("bad row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("bad column in %q: %w", s, err)
	}
	return grid.C(row, col), nil
}

// parseCoords parses a ';'-separated list of "row,col"; empty input yields nil.
func parseCoords(s string) ([]grid.Coord, error) {
	var out []grid.Coord
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := parseCoord(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
