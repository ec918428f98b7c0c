package stablevec

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Sketch prints a one-line occupancy sketch of a vector's chunks to w, one
// cell per chunk: '#' for a full chunk, a digit 0–9 for the fill level of
// the partially populated tail chunk in tenths, '.' for a reserved and
// still empty chunk (for debugging purposes).
//
// When w is the process's stdout on a terminal, cells are colored and the
// line is capped to the terminal width.
func Sketch[T any](v *Vector[T], w io.Writer) {
	cols := 80
	colored := false
	if w == os.Stdout && term.IsTerminal(0) {
		if tw, _, err := term.GetSize(0); err == nil && tw > 0 {
			cols = tw
		}
		colored = true
	}
	full := color.New(color.FgGreen)
	tail := color.New(color.FgYellow)
	if !colored {
		full.DisableColor()
		tail.DisableColor()
	}

	cs := v.ChunkSize()
	n := v.Len()
	budget := cols - len(fmt.Sprintf("%d/%d ||", n, v.Cap()))
	fmt.Fprintf(w, "%d/%d |", n, v.Cap())
	for j := 0; j < v.idx.Chunks(); j++ {
		if budget <= 0 {
			io.WriteString(w, "+")
			break
		}
		clen := min(cs, n-j*cs)
		switch {
		case clen == cs:
			full.Fprint(w, "#")
		case clen <= 0:
			io.WriteString(w, ".")
		default:
			tail.Fprintf(w, "%d", clen*10/cs)
		}
		budget--
	}
	fmt.Fprintln(w, "|")
}
