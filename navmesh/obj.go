package navmesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseOBJ reads vertex and face records from a Wavefront OBJ stream. Polygons are fan
// triangulated; every other record is ignored.
func ParseOBJ(r io.Reader) (*Geometry, error) {
	g := &Geometry{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: vertex needs 3 components", line)
			}
			for _, f := range fields[1:4] {
				x, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", line, err)
				}
				g.Positions = append(g.Positions, x)
			}
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: face needs at least 3 vertices", line)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, f := range fields[1:] {
				ref, _, _ := strings.Cut(f, "/")
				i, err := strconv.Atoi(ref)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", line, err)
				}
				// OBJ indices are 1-based; negatives count back from the latest vertex
				if i < 0 {
					i = g.VertexCount() + i
				} else {
					i--
				}
				idx = append(idx, i)
			}
			for k := 1; k+1 < len(idx); k++ {
				g.Indices = append(g.Indices, idx[0], idx[k], idx[k+1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	return g, nil
}
