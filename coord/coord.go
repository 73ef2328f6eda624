package coord

// CoordMin and CoordMax bound every Coord component; arithmetic that would
// step outside this range wraps around.
const (
	CoordMin = -1 << 20
	CoordMax = 1<<20 - 1
)

// Coord is an integer grid coordinate. Equality is strict.
type Coord struct {
	X, Y int
}

// New builds a Coord, wrapping x and y into [CoordMin, CoordMax].
func New(x, y int) Coord {
	return Coord{X: wrap(x), Y: wrap(y)}
}

func wrap(v int) int {
	const span = CoordMax - CoordMin + 1
	v = (v - CoordMin) % span
	if v < 0 {
		v += span
	}
	return v + CoordMin
}

// Add returns a+b, wrapped.
func (a Coord) Add(b Coord) Coord { return New(a.X+b.X, a.Y+b.Y) }

// Sub returns a-b, wrapped.
func (a Coord) Sub(b Coord) Coord { return New(a.X-b.X, a.Y-b.Y) }

// Equal is strict equality.
func (a Coord) Equal(b Coord) bool { return a.X == b.X && a.Y == b.Y }
