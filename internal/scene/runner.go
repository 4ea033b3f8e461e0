package scene

import (
	"context"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ByteArena/c2"
)

// Result is the outcome of one query. Only the fields meaningful for the
// query kind are set.
type Result struct {
	ID         string    `yaml:"id"`
	Kind       QueryKind `yaml:"kind"`
	Hit        bool      `yaml:"hit"`
	Normal     *Vec      `yaml:"normal,omitempty"`
	Points     []Vec     `yaml:"points,omitempty"`
	Depths     []float64 `yaml:"depths,omitempty"`
	Distance   *float64  `yaml:"distance,omitempty"`
	PointA     *Vec      `yaml:"point_a,omitempty"`
	PointB     *Vec      `yaml:"point_b,omitempty"`
	T          *float64  `yaml:"t,omitempty"`
	Iterations int       `yaml:"iterations,omitempty"`
}

// Report lists results in query order. Digest identifies the numbers of a
// run independently of query ids, so two runs of one scene can be compared.
type Report struct {
	Results []Result `yaml:"results"`
	Hits    int      `yaml:"hits"`
	Digest  string   `yaml:"digest"`
}

type Runner struct {
	logger  *zap.Logger
	workers int
}

// NewRunner returns a runner evaluating at most workers queries at a time.
// A non-positive worker count means one.
func NewRunner(logger *zap.Logger, workers int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	return &Runner{logger: logger, workers: workers}
}

// Run evaluates every query of the scene. It stops early when ctx is done.
func (r *Runner) Run(ctx context.Context, s *Scene) (*Report, error) {
	results := make([]Result, len(s.Queries))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(r.workers)

	for i := range s.Queries {
		i := i
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			q := &s.Queries[i]
			results[i] = Evaluate(q)
			r.logger.Debug("query evaluated",
				zap.String("id", q.ID),
				zap.String("kind", string(q.Kind)),
				zap.Bool("hit", results[i].Hit),
				zap.Int("iterations", results[i].Iterations),
			)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "scene run interrupted")
	}

	report := &Report{Results: results}
	digest := xxhash.New()
	for _, res := range results {
		if res.Hit {
			report.Hits++
		}
		_, _ = digest.WriteString(res.canonical())
	}
	report.Digest = fmt.Sprintf("%016x", digest.Sum64())

	r.logger.Info("scene run finished",
		zap.Int("queries", len(results)),
		zap.Int("hits", report.Hits),
		zap.String("digest", report.Digest),
	)

	return report, nil
}

// Evaluate answers a single query.
func Evaluate(q *Query) Result {
	res := Result{ID: q.ID, Kind: q.Kind}

	switch q.Kind {
	case KindCollided:
		res.Hit = c2.C2Collided(q.A.Shape, q.A.Transform, q.B.Shape, q.B.Transform)

	case KindCollide:
		m := c2.C2Collide(q.A.Shape, q.A.Transform, q.B.Shape, q.B.Transform)
		res.Hit = m.Count > 0
		if res.Hit {
			n := FromC2(m.N)
			res.Normal = &n
			for i := 0; i < m.Count; i++ {
				res.Points = append(res.Points, FromC2(m.ContactPoints[i]))
				res.Depths = append(res.Depths, m.Depths[i])
			}
		}

	case KindGjk:
		out := c2.C2Gjk(q.A.Shape, q.A.Transform, q.B.Shape, q.B.Transform, q.UseRadius, nil)
		pa, pb := FromC2(out.PointA), FromC2(out.PointB)
		res.Hit = out.Distance == 0
		res.Distance = &out.Distance
		res.PointA = &pa
		res.PointB = &pb
		res.Iterations = out.Iterations

	case KindRaycast:
		out, ok := c2.C2CastRay(q.Ray, q.B.Shape, q.B.Transform)
		res.Hit = ok
		if ok {
			n := FromC2(out.N)
			res.T = &out.T
			res.Normal = &n
			p := FromC2(out.Impact(q.Ray))
			res.PointA = &p
		}

	case KindToi:
		out := c2.C2Toi(q.A.Shape, q.A.Transform, q.VelocityA, q.B.Shape, q.B.Transform, q.VelocityB, q.UseRadius)
		res.Hit = out.Hit
		res.T = &out.Toi
		res.Iterations = out.Iterations
		if out.Hit {
			n, p := FromC2(out.N), FromC2(out.P)
			res.Normal = &n
			res.PointA = &p
		}
	}

	return res
}

// Rendering used for the digest. Ids are not part of it.
func (res Result) canonical() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s|%t|%d", res.Kind, res.Hit, res.Iterations)
	vec := func(v *Vec) {
		if v != nil {
			fmt.Fprintf(&sb, "|%.6f,%.6f", v.X, v.Y)
		}
	}
	scalar := func(f *float64) {
		if f != nil {
			fmt.Fprintf(&sb, "|%.6f", *f)
		}
	}
	vec(res.Normal)
	for i := range res.Points {
		vec(&res.Points[i])
	}
	for i := range res.Depths {
		scalar(&res.Depths[i])
	}
	scalar(res.Distance)
	vec(res.PointA)
	vec(res.PointB)
	scalar(res.T)
	sb.WriteString("\n")
	return sb.String()
}
