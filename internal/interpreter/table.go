package interpreter

// Grid size of the table the robot lives on.
const (
	TableWidth  = 5
	TableHeight = 5
)

// Table is the rectangular, zero-indexed area the robot may occupy.
type Table struct {
	Width  int
	Height int
}

func NewTable(width, height int) Table {
	return Table{Width: width, Height: height}
}

// DefaultTable returns the 5x5 table.
func DefaultTable() Table {
	return NewTable(TableWidth, TableHeight)
}

func (t Table) InBounds(x, y int) bool {
	return x >= 0 && x < t.Width && y >= 0 && y < t.Height
}
