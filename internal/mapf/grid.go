package mapf

// Position is an integer grid coordinate.
type Position struct {
	X, Y int
}

// Add returns the position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the L1 distance between p and q.
func (p Position) Manhattan(q Position) int {
	return absInt(p.X-q.X) + absInt(p.Y-q.Y)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// waitOffsets lists the four cardinal moves plus the wait action, in a
// fixed, deterministic order so neighbor enumeration (and therefore
// tie-broken search results) is reproducible across runs.
var waitOffsets = [5][2]int{
	{1, 0},  // east
	{-1, 0}, // west
	{0, 1},  // south
	{0, -1}, // north
	{0, 0},  // wait
}

// Grid is a rectangular width x height occupancy map. Each cell is either
// free or an obstacle. A Grid is immutable once built: obstacles are set
// at construction time only.
type Grid struct {
	width, height int
	obstacle      []bool // row-major, len == width*height
}

// NewGrid creates a width x height grid with every cell free.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:    width,
		height:   height,
		obstacle: make([]bool, width*height),
	}
}

// Width returns the grid's width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's height.
func (g *Grid) Height() int { return g.height }

// SetObstacle marks (x, y) as an obstacle cell.
func (g *Grid) SetObstacle(x, y int) {
	g.obstacle[g.index(x, y)] = true
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// InBounds reports whether p lies within the grid's rectangle.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsFree reports whether p is inside the grid and not an obstacle.
func (g *Grid) IsFree(p Position) bool {
	return g.InBounds(p) && !g.obstacle[g.index(p.X, p.Y)]
}

// Neighbors returns the free cells reachable from p in one timestep: the
// four cardinal moves and the wait action, in that fixed order. p itself
// must be free; Neighbors does not validate this.
func (g *Grid) Neighbors(p Position) []Position {
	result := make([]Position, 0, len(waitOffsets))
	for _, d := range waitOffsets {
		next := p.Add(d[0], d[1])
		if g.IsFree(next) {
			result = append(result, next)
		}
	}
	return result
}
