package scene

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ByteArena/c2"
)

type QueryKind string

const (
	KindCollided QueryKind = "collided"
	KindCollide  QueryKind = "collide"
	KindGjk      QueryKind = "gjk"
	KindRaycast  QueryKind = "raycast"
	KindToi      QueryKind = "toi"
)

// Body is a built shape with its placement. Transform is nil for shapes that
// live in world space.
type Body struct {
	Name      string
	Shape     c2.C2Shape
	Transform *c2.C2Transform
}

type Query struct {
	ID        string
	Kind      QueryKind
	A         *Body
	B         *Body
	Ray       c2.C2Ray
	VelocityA c2.C2Vec2
	VelocityB c2.C2Vec2
	UseRadius bool
}

// Scene is a validated, read-only document. Queries may run concurrently.
type Scene struct {
	Bodies  map[string]*Body
	Queries []Query
}

// Build validates the document and constructs its shapes and queries.
// Queries without an id are given a random one.
func Build(doc *Document) (*Scene, error) {
	s := &Scene{
		Bodies:  make(map[string]*Body, len(doc.Shapes)),
		Queries: make([]Query, 0, len(doc.Queries)),
	}

	for i, def := range doc.Shapes {
		if def.Name == "" {
			return nil, errors.Errorf("shape #%d has no name", i)
		}
		if _, ok := s.Bodies[def.Name]; ok {
			return nil, errors.Errorf("duplicate shape name %q", def.Name)
		}
		body, err := buildBody(def)
		if err != nil {
			return nil, errors.Wrapf(err, "shape %q", def.Name)
		}
		s.Bodies[def.Name] = body
	}

	for i, def := range doc.Queries {
		q, err := s.buildQuery(def)
		if err != nil {
			return nil, errors.Wrapf(err, "query #%d", i)
		}
		s.Queries = append(s.Queries, q)
	}

	return s, nil
}

func buildBody(def ShapeSpec) (*Body, error) {
	body := &Body{Name: def.Name}

	if def.Radius < 0 {
		return nil, errors.Errorf("negative radius %g", def.Radius)
	}

	switch def.Type {
	case c2.C2Shape_Type.E_circle.String():
		body.Shape = c2.MakeC2Circle(def.Center.C2(), def.Radius)

	case c2.C2Shape_Type.E_aabb.String():
		bb := c2.MakeC2Aabb(def.Min.C2(), def.Max.C2())
		if !bb.IsValid() {
			return nil, errors.New("aabb min exceeds max")
		}
		body.Shape = bb

	case c2.C2Shape_Type.E_capsule.String():
		body.Shape = c2.MakeC2Capsule(def.A.C2(), def.B.C2(), def.Radius)

	case c2.C2Shape_Type.E_poly.String():
		points := make([]c2.C2Vec2, len(def.Points))
		for i, p := range def.Points {
			points[i] = p.C2()
		}
		poly := c2.C2MakePoly(points)
		if !poly.IsSolid() {
			return nil, errors.Errorf("polygon hull has %d vertices, need at least 3", poly.Count)
		}
		body.Shape = &poly
		if def.Transform != nil {
			xf := c2.MakeC2TransformFromAngle(def.Transform.Position.C2(), def.Transform.Angle)
			body.Transform = &xf
		}

	default:
		return nil, errors.Errorf("unknown shape type %q", def.Type)
	}

	if def.Transform != nil && body.Transform == nil {
		return nil, errors.Errorf("transform is only supported for poly shapes")
	}

	return body, nil
}

func (s *Scene) body(name string) (*Body, error) {
	b, ok := s.Bodies[name]
	if !ok {
		return nil, errors.Errorf("unknown shape %q", name)
	}
	return b, nil
}

func (s *Scene) buildQuery(def QuerySpec) (Query, error) {
	q := Query{
		ID:        def.ID,
		Kind:      QueryKind(def.Kind),
		VelocityA: def.VelocityA.C2(),
		VelocityB: def.VelocityB.C2(),
		UseRadius: def.UseRadius,
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}

	var err error
	if q.B, err = s.body(def.B); err != nil {
		return q, err
	}

	switch q.Kind {
	case KindCollided, KindCollide, KindGjk, KindToi:
		if q.A, err = s.body(def.A); err != nil {
			return q, err
		}

	case KindRaycast:
		if def.Ray == nil {
			return q, errors.New("raycast query without ray")
		}
		d := c2.C2Vec2SafeNorm(def.Ray.Direction.C2())
		if d.LengthSquared() == 0 {
			return q, errors.New("ray direction has zero length")
		}
		if def.Ray.Distance < 0 {
			return q, errors.Errorf("negative ray distance %g", def.Ray.Distance)
		}
		q.Ray = c2.MakeC2Ray(def.Ray.Origin.C2(), d, def.Ray.Distance)

	default:
		return q, errors.Errorf("unknown query kind %q", def.Kind)
	}

	return q, nil
}
