package game

const (
	// bufferRows is the number of invisible rows above the visible
	// playfield where new pieces enter the board.
	bufferRows = 2

	// numColors is the number of piece color tags.
	numColors = 7
)

// Board is the playfield grid, invisible buffer rows included. Row
// bufferRows is the first visible row. A cell holds 0 when empty or a
// color tag 1..numColors, for settled and falling piece cells alike: the
// board is the single source of truth for what occupies the field.
type Board struct {
	width  int
	height int // visible rows, excluding the buffer
	cells  [][]int
}

func newBoard(height, width int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]int, height+bufferRows)
	for y := range b.cells {
		b.cells[y] = make([]int, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of visible rows.
func (b *Board) Height() int {
	return b.height
}

// Rows returns the total number of rows, buffer included.
func (b *Board) Rows() int {
	return len(b.cells)
}

// InBounds reports whether c lies inside the grid, buffer rows included.
func (b *Board) InBounds(c Coord) bool {
	return c.Y >= 0 && c.Y < len(b.cells) && c.X >= 0 && c.X < b.width
}

// Cell returns the value at c. The caller guarantees c is in bounds.
func (b *Board) Cell(c Coord) int {
	return b.cells[c.Y][c.X]
}

func (b *Board) setCell(c Coord, v int) {
	b.cells[c.Y][c.X] = v
}

// isRowFull reports whether every cell in row y is occupied.
func (b *Board) isRowFull(y int) bool {
	for x := 0; x < b.width; x++ {
		if b.cells[y][x] == 0 {
			return false
		}
	}
	return true
}

// clearRow empties every cell in row y.
func (b *Board) clearRow(y int) {
	for x := 0; x < b.width; x++ {
		b.cells[y][x] = 0
	}
}

// copyRow overwrites row to with the contents of row from.
func (b *Board) copyRow(to, from int) {
	copy(b.cells[to], b.cells[from])
}
