package terminal

import "fmt"

// Geometry is the terminal size in character cells.
type Geometry struct {
	Rows int
	Cols int
}

func (g Geometry) String() string {
	return fmt.Sprintf("%d rows, %d columns", g.Rows, g.Cols)
}
