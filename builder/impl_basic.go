package builder

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
)

func tooFew(method string, n, minimum int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minimum, ErrTooFewVertices)
}

// Path builds P_n: edges i-(i+1).
func Path(n int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		base, err := p.addVertices(methodPath, n, cfg)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			p.link(base+i, base+i+1, cfg)
		}
		return nil
	}
}

// Cycle builds C_n: a path closed by the edge (n-1)-0.
func Cycle(n int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		base, err := p.addVertices(methodCycle, n, cfg)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			p.link(base+i, base+(i+1)%n, cfg)
		}
		return nil
	}
}

// Star builds a hub (first vertex) joined to n-1 leaves.
func Star(n int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		base, err := p.addVertices(methodStar, n, cfg)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			p.link(base, base+i, cfg)
		}
		return nil
	}
}

// Wheel builds W_n: a hub joined to every vertex of a rim cycle of n-1.
// Rim edges come first, then spokes.
func Wheel(n int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		base, err := p.addVertices(methodWheel, n, cfg)
		if err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			p.link(base+1+i, base+1+(i+1)%rim, cfg)
		}
		for i := 1; i < n; i++ {
			p.link(base, base+i, cfg)
		}
		return nil
	}
}

// Complete builds K_n with edges i-j for i<j in lexicographic order.
func Complete(n int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		base, err := p.addVertices(methodComplete, n, cfg)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				p.link(base+i, base+j, cfg)
			}
		}
		return nil
	}
}
