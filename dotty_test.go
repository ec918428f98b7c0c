package stablevec

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
)

func TestDotOutput(t *testing.T) {
	v, _ := WithChunkSize[int](2)
	v.Append(1, 2, 3)
	var buf bytes.Buffer
	Dot(v, &buf, strconv.Itoa)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Fatalf("unexpected DOT preamble: %q", out)
	}
	for _, want := range []string{"chunk 0", "chunk 1", "1/2", "\"vector\" -> \"chunk1\""} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output misses %q:\n%s", want, out)
		}
	}
}

func TestDotWithoutFormatter(t *testing.T) {
	v := Of("a", "b")
	var buf bytes.Buffer
	Dot(v, &buf, nil)
	if strings.Contains(buf.String(), "| a") {
		t.Errorf("nil formatter should omit element values:\n%s", buf.String())
	}
}

func TestSketchOccupancy(t *testing.T) {
	v, _ := WithChunkSize[int](2)
	v.Append(1, 2, 3)
	v.Reserve(7) // one reserved, still empty chunk
	var buf bytes.Buffer
	Sketch(v, &buf)
	out := strings.TrimSpace(buf.String())
	if out != "3/8 |#5..|" {
		t.Errorf("sketch = %q, want %q", out, "3/8 |#5..|")
	}
}
