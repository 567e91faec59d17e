// Package game implements the falling-block puzzle engine: board state,
// piece movement and rotation, line clearing and the tick-driven game
// loop. It contains no terminal or input code; the platform layer drives
// it through Tick, Handle and Render.
package game

// Coord is a board position or a piece-relative offset.
// Y grows downward, X grows rightward.
type Coord struct {
	Y, X int
}

// ShapeType identifies one of the seven tetrominoes.
type ShapeType int

const (
	ShapeI ShapeType = iota
	ShapeO
	ShapeJ
	ShapeL
	ShapeS
	ShapeZ
	ShapeT

	shapeCount = 7
)

// String returns the conventional one-letter shape name.
func (s ShapeType) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeT:
		return "T"
	default:
		return "?"
	}
}

// shapes holds every rotation state of every tetromino as offsets from
// the piece anchor. Successive states are one clockwise quarter turn
// apart ((y, x) -> (x, -y)); shapes with rotational symmetry list only
// their distinct states, so I, S and Z have two and O has one.
var shapes = [shapeCount][][]Coord{
	ShapeI: {
		{{0, -2}, {0, -1}, {0, 0}, {0, 1}},
		{{-2, 0}, {-1, 0}, {0, 0}, {1, 0}},
	},
	ShapeO: {
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	ShapeJ: {
		{{1, 1}, {0, 1}, {0, 0}, {0, -1}},
		{{1, -1}, {1, 0}, {0, 0}, {-1, 0}},
		{{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
		{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
	},
	ShapeL: {
		{{1, -1}, {0, -1}, {0, 0}, {0, 1}},
		{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{-1, 1}, {0, 1}, {0, 0}, {0, -1}},
		{{1, 1}, {1, 0}, {0, 0}, {-1, 0}},
	},
	ShapeS: {
		{{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		{{0, 1}, {0, 0}, {1, 0}, {1, -1}},
	},
	ShapeZ: {
		{{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
		{{1, 1}, {1, 0}, {0, 0}, {0, -1}},
	},
	ShapeT: {
		{{0, 0}, {-1, 0}, {0, -1}, {0, 1}},
		{{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
		{{0, 0}, {0, -1}, {1, 0}, {0, 1}},
		{{0, 0}, {0, -1}, {1, 0}, {-1, 0}},
	},
}

// RotationCount returns the number of distinct rotation states.
func (s ShapeType) RotationCount() int {
	return len(shapes[s])
}

// Extent is the bounding range of a rotation state's offsets.
type Extent struct {
	MinY, MaxY int
	MinX, MaxX int
}

// extentOf computes the bounding range of a set of offsets.
func extentOf(offsets []Coord) Extent {
	e := Extent{
		MinY: offsets[0].Y, MaxY: offsets[0].Y,
		MinX: offsets[0].X, MaxX: offsets[0].X,
	}
	for _, c := range offsets[1:] {
		e.MinY = min(e.MinY, c.Y)
		e.MaxY = max(e.MaxY, c.Y)
		e.MinX = min(e.MinX, c.X)
		e.MaxX = max(e.MaxX, c.X)
	}
	return e
}
