package stablevec

import (
	"fmt"
	"io"
)

// Dot outputs the internal chunk structure of a vector in Graphviz DOT
// format (for debugging purposes). format renders a single element; passing
// nil omits element values and shows chunk occupancy only.
func Dot[T any](v *Vector[T], w io.Writer, format func(T) string) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	fmt.Fprintf(w, "\t\"vector\" [label=\"len %d | cap %d | chunk size %d\"];\n",
		v.Len(), v.Cap(), v.ChunkSize())
	cs := v.ChunkSize()
	n := v.Len()
	for j := 0; j < v.idx.Chunks(); j++ {
		clen := min(cs, n-j*cs)
		if clen < 0 {
			clen = 0 // reserved, still unpopulated chunk
		}
		label := fmt.Sprintf("chunk %d | %d/%d", j, clen, cs)
		if format != nil {
			for k := 0; k < clen; k++ {
				label += fmt.Sprintf(" | %s", format(*v.idx.Ref(j*cs+k)))
			}
		}
		fmt.Fprintf(w, "\t\"chunk%d\" [label=\"%s\"];\n", j, label)
		fmt.Fprintf(w, "\t\"vector\" -> \"chunk%d\";\n", j)
	}
	io.WriteString(w, "}\n")
}
