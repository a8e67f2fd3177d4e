package v3borders

// neighborOffsets lists the 8 neighbour offsets in the fixed cyclic
// order west, northwest, north, northeast, east, southeast, south,
// southwest. Index arithmetic is taken modulo 8 explicitly.
var neighborOffsets = [8][2]int{
	{-1, 0},
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
}

// dirIndex maps an arrival direction (dx, dy) to its cyclic index in
// neighborOffsets, indexed as dirIndex[dx+1][dy+1]. The centre entry
// (8) is unreachable during a trace but keeps the table total.
var dirIndex = [3][3]int{
	{1, 0, 7},
	{2, 8, 6},
	{3, 4, 5},
}

// Trace runs the full-grid border-following scan, relabeling the grid
// in place and filling its border table.
//
// nbd is the next unused border id and starts at 1, so the first
// discovered border gets id 2. lnbd tracks the border most recently
// closed on the current row and resets at each row start. A cell seeds
// a new outer border when it is unvisited foreground (label 1), its
// in-bounds left neighbour is background, and lnbd <= 0.
func Trace(g *LabelGrid) {
	nbd := 1
	for y := 0; y < g.H; y++ {
		lnbd := 0
		for x := 0; x < g.W; x++ {
			cur := g.At(x, y)

			if cur > 1 || cur < 0 {
				lnbd = cur
			}

			isOuter := x > 0 && g.At(x-1, y) == 0 && cur == 1

			if isOuter && lnbd <= 0 {
				nbd++
				traceBorder(g, x, y, nbd)
				if v := g.At(x, y); v != 1 {
					lnbd = v
				}
			} else if cur != 1 {
				lnbd = cur
			}
		}
	}
}

// traceBorder follows one border starting from the seed cell.
// Positions are tracked as offsets relative to the seed; (0, 0) is the
// seed itself and doubles as the loop-closure sentinel.
func traceBorder(g *LabelGrid, x, y, id int) {
	var found [2]int
	for _, off := range neighborOffsets {
		if g.At(x+off[0], y+off[1]) != 0 {
			found = off
			break
		}
	}

	if found == [2]int{} {
		// Isolated single-pixel border.
		g.put(x, y, -id)
		return
	}

	start := found
	follow := [2]int{}

	for {
		next, ok := nextBorderPixel(g, start, follow, x, y)
		if !ok {
			return
		}

		relabel(g, follow, x, y, id)

		// Classical termination: we found the seed again and the
		// current cell is the very first neighbour discovered, so the
		// border has been followed all the way around.
		if next == [2]int{} && follow == found {
			return
		}

		start = follow
		follow = next
	}
}

// nextBorderPixel scans the 8 neighbours of the cell at seed+follow
// counter-clockwise, starting just before the arrival direction and
// skipping the arrival slot itself. This search order keeps the
// labeled region on a consistent side of the walk. Returns the found
// position relative to the seed.
func nextBorderPixel(g *LabelGrid, start, follow [2]int, x, y int) ([2]int, bool) {
	dx := start[0] - follow[0]
	dy := start[1] - follow[1]
	startIdx := dirIndex[dx+1][dy+1]

	for i := startIdx + 6; i >= startIdx; i-- {
		off := neighborOffsets[i%8]
		pos := [2]int{follow[0] + off[0], follow[1] + off[1]}
		if g.At(x+pos[0], y+pos[1]) != 0 {
			return pos, true
		}
	}
	return [2]int{}, false
}

// relabel finalizes the cell at seed+follow: -id when its east
// neighbour is background, +id on first visit (label still 1). Cells
// already carrying another border's id are left untouched.
func relabel(g *LabelGrid, follow [2]int, x, y, id int) {
	cx := x + follow[0]
	cy := y + follow[1]

	if g.At(cx+1, cy) == 0 {
		g.put(cx, cy, -id)
	} else if g.At(cx, cy) == 1 {
		g.put(cx, cy, id)
	}
}
