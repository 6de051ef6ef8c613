package token

import (
	"fmt"
	"sort"
	"strconv"
)

// Doc records the newline offsets of a source document as it is
// scanned, so token positions can be reported as line and column
// without rescanning.
type Doc struct {
	src   []byte
	lines []int
}

func (d *Doc) mark(off int) {
	if n := len(d.lines); n > 0 && d.lines[n-1] == off {
		return
	}
	d.lines = append(d.lines, off)
}

func (d *Doc) at(off int) *Pos {
	return &Pos{Off: off, doc: d}
}

// Pos is a byte offset into a scanned document.
type Pos struct {
	Off int
	doc *Doc
}

// LineCol returns the 1-based line and column of the position.
func (p *Pos) LineCol() (int, int) {
	lines := p.doc.lines
	line := sort.Search(len(lines), func(i int) bool {
		return lines[i] >= p.Off
	})
	if line == 0 {
		return 1, p.Off + 1
	}
	return line + 1, p.Off - lines[line-1]
}

func (p Pos) String() string {
	line, col := p.LineCol()
	lo := max(0, p.Off-5)
	hi := min(p.Off+5, len(p.doc.src))
	sample := strconv.Quote(string(p.doc.src[lo:hi]))
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("line %d, col %d near `%s`", line, col, sample)
}
