package builder

import "fmt"

const methodGrid = "Grid"

// Grid builds a rows×cols lattice in row-major order. Each cell links to
// its right neighbour, then to the one below.
func Grid(rows, cols int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		base, err := p.addVertices(methodGrid, rows*cols, cfg)
		if err != nil {
			return err
		}
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					p.link(at(r, c), at(r, c+1), cfg)
				}
				if r+1 < rows {
					p.link(at(r, c), at(r+1, c), cfg)
				}
			}
		}
		return nil
	}
}
