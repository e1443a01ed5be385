package builder

import "fmt"

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
)

// RandomSparse builds an Erdős–Rényi G(n, prob) graph: each pair i<j is
// linked independently with probability prob, drawn from the seeded RNG.
// The result may be disconnected, which exercises partial coverage.
func RandomSparse(n int, prob float64) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomSparse, n, minRandomNodes)
		}
		if prob < 0 || prob > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, prob, ErrInvalidProbability)
		}
		base, err := p.addVertices(methodRandomSparse, n, cfg)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < prob {
					p.link(base+i, base+j, cfg)
				}
			}
		}
		return nil
	}
}
