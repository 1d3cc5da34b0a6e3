// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a preset expression into a Constructor.
//
// Accepted forms (case-insensitive):
//
//	path:N  cycle:N  star:N  wheel:N  complete:N
//	grid:RxC
//	random:N:P
func Parse(expr string) (Constructor, error) {
	name, args, _ := strings.Cut(strings.ToLower(strings.TrimSpace(expr)), ":")
	bad := func() (Constructor, error) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, expr)
	}

	switch name {
	case "path", "cycle", "star", "wheel", "complete":
		n, err := strconv.Atoi(args)
		if err != nil {
			return bad()
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
	case "grid":
		rs, cs, ok := strings.Cut(args, "x")
		if !ok {
			return bad()
		}
		rows, err1 := strconv.Atoi(rs)
		cols, err2 := strconv.Atoi(cs)
		if err1 != nil || err2 != nil {
			return bad()
		}
		return Grid(rows, cols), nil
	case "random":
		ns, ps, ok := strings.Cut(args, ":")
		if !ok {
			return bad()
		}
		n, err1 := strconv.Atoi(ns)
		p, err2 := strconv.ParseFloat(ps, 64)
		if err1 != nil || err2 != nil {
			return bad()
		}
		return RandomSparse(n, p), nil
	default:
		return bad()
	}
}
