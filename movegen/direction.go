package movegen

// Direction is one of the eight compass directions. Its value is the fixed
// index into the ray table.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// NumDirections is the number of compass directions.
const NumDirections = 8

// (file, row) step per direction. North decreases the row, i.e. moves toward rank 8.
var directionSteps = [NumDirections][2]int{
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
}

var directionNames = [NumDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Slider direction lists. Generation walks them in this order.
var (
	RookDirections   = [4]Direction{North, East, South, West}
	BishopDirections = [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest}
	QueenDirections  = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
)

// Step returns the file and row increments of one step in d.
func (d Direction) Step() (dFile, dRow int) {
	s := directionSteps[d]
	return s[0], s[1]
}

// Delta is the square-index change of one step: North is -8, SouthEast is +9.
func (d Direction) Delta() int {
	df, dr := d.Step()
	return dr*8 + df
}

// Increasing reports whether squares along d have increasing indices
// (East, SouthEast, South, SouthWest). The nearest square on such a ray is
// its lowest set bit.
func (d Direction) Increasing() bool { return d.Delta() > 0 }

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction { return (d + 4) % NumDirections }

func (d Direction) String() string { return directionNames[d] }
