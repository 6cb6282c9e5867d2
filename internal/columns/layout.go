package columns

import (
	"math"
	"sort"

	"github.com/HaiFongPan/colsplit/internal/resize"
)

// Layout is the cell geometry of a row of columns
type Layout struct {
	// Cells is the width of each column in terminal cells
	Cells []int
	// Offsets is the first cell of each column
	Offsets []int
	// Dividers is the cell holding the handle between column i and i+1
	Dividers []int
	Gap      int
	Width    int
}

// Compute lays out widths across totalWidth cells with gap cells between columns.
// Cells are assigned by largest remainder so they always fill the available space, and
// every column gets at least one cell when there is room for it.
func Compute(widths []float64, totalWidth, gap int) Layout {
	n := len(widths)
	l := Layout{Gap: gap, Width: totalWidth}
	if n == 0 {
		return l
	}

	avail := totalWidth - gap*(n-1)
	if avail < 0 {
		avail = 0
	}

	l.Cells = distribute(HostWidths(widths), avail)

	l.Offsets = make([]int, n)
	l.Dividers = make([]int, 0, n-1)
	x := 0
	for i, c := range l.Cells {
		l.Offsets[i] = x
		x += c
		if i < n-1 {
			// handle sits in the middle of the gap
			l.Dividers = append(l.Dividers, x+gap/2)
			x += gap
		}
	}
	return l
}

// Span is the extent, in cells, that the proportional widths occupy
func (l Layout) Span() int {
	span := 0
	for _, c := range l.Cells {
		span += c
	}
	return span
}

// HitDivider returns the boundary whose handle is within grab cells of x
func (l Layout) HitDivider(x, grab int) (int, bool) {
	best, bestDist := -1, math.MaxInt
	for i, d := range l.Dividers {
		dist := x - d
		if dist < 0 {
			dist = -dist
		}
		if dist <= grab && dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best, best >= 0
}

func distribute(widths []float64, avail int) []int {
	n := len(widths)
	cells := make([]int, n)
	total := resize.SegmentSet(widths).Total()
	if total <= 0 || avail <= 0 {
		return cells
	}

	minCell := 0
	if avail >= n {
		minCell = 1
	}

	type rem struct {
		idx  int
		frac float64
	}
	rems := make([]rem, n)
	used := 0
	for i, w := range widths {
		exact := w / total * float64(avail)
		c := int(math.Floor(exact))
		if c < minCell {
			c = minCell
		}
		cells[i] = c
		used += c
		rems[i] = rem{idx: i, frac: exact - math.Floor(exact)}
	}

	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; used < avail; i = (i + 1) % n {
		cells[rems[i].idx]++
		used++
	}
	// minimum-cell bumps can overshoot; take back from the widest columns
	for used > avail {
		widest := 0
		for i := range cells {
			if cells[i] > cells[widest] {
				widest = i
			}
		}
		cells[widest]--
		used--
	}
	return cells
}
