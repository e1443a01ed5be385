package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a preset description such as "cycle:5", "grid:3x4",
// "random:8:0.3" or a '+'-joined composition like "cycle:4+path:3".
//
// Names: path, cycle, star, wheel, complete take one size; grid takes
// ROWSxCOLS; random takes a size and an edge probability.
func Parse(spec string) ([]Constructor, error) {
	var cons []Constructor
	for _, part := range strings.Split(spec, "+") {
		fields := strings.Split(strings.TrimSpace(part), ":")
		name := strings.ToLower(fields[0])
		args := fields[1:]

		var (
			c   Constructor
			err error
		)
		switch name {
		case "path", "cycle", "star", "wheel", "complete":
			c, err = sized(name, args)
		case "grid":
			c, err = grid(args)
		case "random":
			c, err = random(args)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, fields[0])
		}
		if err != nil {
			return nil, err
		}
		cons = append(cons, c)
	}

	return cons, nil
}

func size(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %s size %q", ErrBadSize, name, arg)
	}

	return n, nil
}

func sized(name string, args []string) (Constructor, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s takes one size", ErrBadSize, name)
	}
	n, err := size(name, args[0])
	if err != nil {
		return nil, err
	}
	switch name {
	case "path":
		return Path(n), nil
	case "cycle":
		return Cycle(n), nil
	case "star":
		return Star(n), nil
	case "wheel":
		return Wheel(n), nil
	default:
		return Complete(n), nil
	}
}

func grid(args []string) (Constructor, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: grid takes ROWSxCOLS", ErrBadSize)
	}
	rs, cs, ok := strings.Cut(strings.ToLower(args[0]), "x")
	if !ok {
		return nil, fmt.Errorf("%w: grid %q is not ROWSxCOLS", ErrBadSize, args[0])
	}
	rows, err := size("grid", rs)
	if err != nil {
		return nil, err
	}
	cols, err := size("grid", cs)
	if err != nil {
		return nil, err
	}

	return Grid(rows, cols), nil
}

func random(args []string) (Constructor, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: random takes a size and a probability", ErrBadSize)
	}
	n, err := size("random", args[0])
	if err != nil {
		return nil, err
	}
	prob, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: random probability %q", ErrBadSize, args[1])
	}

	return RandomSparse(n, prob), nil
}
