package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a grid written as whitespace-separated integer rows.
// Blank lines and lines starting with '#' are skipped.
// Errors wrap ErrParse for unreadable tokens; shape and cost errors are
// the same as From2D.
func Parse(r io.Reader) (*Grid, error) {
	var values [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrParse, line, f)
			}
			row[i] = v
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return From2D(values)
}

// String renders g in the format accepted by Parse.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(g.cells[r*g.cols+c]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
