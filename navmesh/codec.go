package navmesh

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeZone serializes a built zone so it can be shipped pre-baked instead of rebuilt from
// geometry at startup.
func EncodeZone(z *Zone) ([]byte, error) {
	data, err := msgpack.Marshal(z)
	if err != nil {
		return nil, fmt.Errorf("encode zone: %w", err)
	}
	return data, nil
}

// DecodeZone is the inverse of EncodeZone. The result still needs SetZoneData before queries.
func DecodeZone(data []byte) (*Zone, error) {
	var z Zone
	if err := msgpack.Unmarshal(data, &z); err != nil {
		return nil, fmt.Errorf("decode zone: %w", err)
	}
	if len(z.Groups) == 0 {
		return nil, ErrEmptyGeometry
	}
	for gi, group := range z.Groups {
		for li, n := range group {
			if n == nil || n.ID != li || n.Group != gi {
				return nil, fmt.Errorf("decode zone: node %d of group %d is inconsistent", li, gi)
			}
			for _, id := range n.VertexIDs {
				if id < 0 || id >= len(z.Vertices) {
					return nil, fmt.Errorf("decode zone: %w: %d", ErrBadIndex, id)
				}
			}
		}
	}
	return &z, nil
}
