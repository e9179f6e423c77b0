package assets

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hjson/hjson-go/v4"

	"github.com/automoto/navpatrol/animation"
)

var ErrNoScene = errors.New("assets: model has no scene root")

// Node is one element of a model's scene graph.
type Node struct {
	Name     string
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
	Children []*Node
}

func (n *Node) SetRotation(q mgl64.Quat) {
	n.Rotation = q
}

// Find returns the first node named name in depth-first order.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

func (n *Node) clone() *Node {
	out := &Node{
		Name:     n.Name,
		Position: n.Position,
		Rotation: n.Rotation,
		Scale:    n.Scale,
		Children: make([]*Node, len(n.Children)),
	}
	for i, c := range n.Children {
		out.Children[i] = c.clone()
	}
	return out
}

// Model is a loaded skeletal asset: a scene graph plus its animation clips.
type Model struct {
	Name  string
	Root  *Node
	Clips []*animation.Clip
}

// Clone deep-copies the scene graph. Clips are shared since they are never mutated.
func (m *Model) Clone() *Model {
	return &Model{Name: m.Name, Root: m.Root.clone(), Clips: m.Clips}
}

type nodeDesc struct {
	Name     string     `json:"name" jsonschema:"required"`
	Position []float64  `json:"position,omitempty" jsonschema:"minItems=3,maxItems=3"`
	Rotation []float64  `json:"rotation,omitempty" jsonschema:"description=Euler angles in degrees (XYZ),minItems=3,maxItems=3"`
	Scale    []float64  `json:"scale,omitempty" jsonschema:"minItems=3,maxItems=3"`
	Children []nodeDesc `json:"children,omitempty"`
}

// ModelDesc is the on-disk model descriptor.
type ModelDesc struct {
	Name  string           `json:"name" jsonschema:"required"`
	Clips []animation.Clip `json:"clips"`
	Root  *nodeDesc        `json:"root"`
}

// LoadModel reads an Hjson model descriptor.
func LoadModel(fsys fs.FS, path string) (*Model, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}
	return ParseModel(data)
}

func ParseModel(data []byte) (*Model, error) {
	var desc ModelDesc
	if err := hjson.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if desc.Root == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoScene, desc.Name)
	}

	m := &Model{Name: desc.Name, Root: desc.Root.build()}
	for i := range desc.Clips {
		c := desc.Clips[i]
		m.Clips = append(m.Clips, &c)
	}
	return m, nil
}

func (d *nodeDesc) build() *Node {
	n := &Node{
		Name:     d.Name,
		Position: vec3Or(d.Position, mgl64.Vec3{}),
		Rotation: mgl64.QuatIdent(),
		Scale:    vec3Or(d.Scale, mgl64.Vec3{1, 1, 1}),
	}
	if len(d.Rotation) == 3 {
		n.Rotation = mgl64.AnglesToQuat(
			mgl64.DegToRad(d.Rotation[0]),
			mgl64.DegToRad(d.Rotation[1]),
			mgl64.DegToRad(d.Rotation[2]),
			mgl64.XYZ,
		)
	}
	for i := range d.Children {
		n.Children = append(n.Children, d.Children[i].build())
	}
	return n
}

func vec3Or(v []float64, def mgl64.Vec3) mgl64.Vec3 {
	if len(v) != 3 {
		return def
	}
	return mgl64.Vec3{v[0], v[1], v[2]}
}
