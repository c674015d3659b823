package graph

// Point is a cell position in a grid.
type Point struct {
	Row, Col int
}

// Adjacent4 returns the neighbours of cell (row, col) in a grid of the given
// height and width, in order down, right, up, left. Neighbours outside of the
// grid are skipped.
func Adjacent4(height, width, row, col int) []Point {
	neighbours := make([]Point, 0, 4)
	for _, d := range [...]Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} {
		r, c := row+d.Row, col+d.Col
		if r >= 0 && r < height && c >= 0 && c < width {
			neighbours = append(neighbours, Point{Row: r, Col: c})
		}
	}
	return neighbours
}
