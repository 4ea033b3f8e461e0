package scene

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ByteArena/c2"
)

// Vec is a 2D vector written as {x: 1, y: 2}.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec) C2() c2.C2Vec2 {
	return c2.MakeC2Vec2(v.X, v.Y)
}

func FromC2(v c2.C2Vec2) Vec {
	return Vec{X: v.X, Y: v.Y}
}

// TransformSpec places a polygon in the world. Angle is in radians.
type TransformSpec struct {
	Position Vec     `yaml:"position"`
	Angle    float64 `yaml:"angle"`
}

// ShapeSpec describes one named shape. Which fields are read depends on Type:
// circle uses Center and Radius, aabb Min and Max, capsule A, B and Radius,
// poly Points and the optional Transform.
type ShapeSpec struct {
	Name      string         `yaml:"name"`
	Type      string         `yaml:"type"`
	Center    Vec            `yaml:"center,omitempty"`
	Radius    float64        `yaml:"radius,omitempty"`
	Min       Vec            `yaml:"min,omitempty"`
	Max       Vec            `yaml:"max,omitempty"`
	A         Vec            `yaml:"a,omitempty"`
	B         Vec            `yaml:"b,omitempty"`
	Points    []Vec          `yaml:"points,omitempty"`
	Transform *TransformSpec `yaml:"transform,omitempty"`
}

type RaySpec struct {
	Origin    Vec     `yaml:"origin"`
	Direction Vec     `yaml:"direction"`
	Distance  float64 `yaml:"distance"`
}

// QuerySpec is one question asked of the scene. A and B name shapes; raycast
// queries use Ray and B only.
type QuerySpec struct {
	ID        string   `yaml:"id,omitempty"`
	Kind      string   `yaml:"kind"`
	A         string   `yaml:"a,omitempty"`
	B         string   `yaml:"b"`
	Ray       *RaySpec `yaml:"ray,omitempty"`
	VelocityA Vec      `yaml:"velocity_a,omitempty"`
	VelocityB Vec      `yaml:"velocity_b,omitempty"`
	UseRadius bool     `yaml:"use_radius,omitempty"`
}

// Document is the YAML form of a scene.
type Document struct {
	Shapes  []ShapeSpec `yaml:"shapes"`
	Queries []QuerySpec `yaml:"queries"`
}

// LoadYAML loads a scene document from a YAML reader.
func LoadYAML(r io.Reader) (*Document, error) {
	var d Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, errors.Wrap(err, "failed to decode scene document")
	}
	return &d, nil
}
