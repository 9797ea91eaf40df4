package groupopt

import "log"

// Logger is the minimal logging surface the optimizer needs to report the
// non-fatal "geometric edge case" diagnostics from the error model
// (backwards input triangle, missing opposite edge, already-linked triangle
// side, flipped output normal). It is satisfied by *log.Logger.
type Logger interface {
	Printf(format string, args ...any)
}

type stdLogger struct{}

func (stdLogger) Printf(format string, args ...any) { log.Printf(format, args...) }

// Default compile-time arena sizes, carried over from the original
// MAX_OPT_VERTEXES / MAX_OPT_EDGES limits.
const (
	DefaultMaxVertices = 0x10000
	DefaultMaxEdges    = 0x40000

	// DefaultColinearEpsilon is the 3D perpendicular-distance tolerance used
	// by CombineColinearEdges (spec invariant V6 / COLINEAR_EPSILON).
	DefaultColinearEpsilon = 0.1
)

type config struct {
	maxVertices int
	maxEdges    int

	colinearEpsilon float64

	logger Logger

	robustPredicates bool
	strictEdgeCounts bool

	internCellSize float64
}

func newDefaultConfig() config {
	return config{
		maxVertices:     DefaultMaxVertices,
		maxEdges:        DefaultMaxEdges,
		colinearEpsilon: DefaultColinearEpsilon,
		logger:          stdLogger{},
		internCellSize:  1.0,
	}
}

// Option configures a Context during construction, in the same
// functional-options style used across this module's sibling packages.
type Option func(*config)

// WithMaxVertices overrides the vertex arena capacity.
func WithMaxVertices(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxVertices = n
		}
	}
}

// WithMaxEdges overrides the edge arena capacity.
func WithMaxEdges(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxEdges = n
		}
	}
}

// WithColinearEpsilon overrides COLINEAR_EPSILON (spec invariant V6).
func WithColinearEpsilon(eps float64) Option {
	return func(c *config) {
		if eps >= 0 {
			c.colinearEpsilon = eps
		}
	}
}

// WithLogger installs the diagnostic logger used for the optimizer's
// non-fatal error class. The zero value logs through log.Default().
func WithLogger(l Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRobustPredicates switches IsTriangleValid's underlying orientation
// test from the spec-mandated tripled exact-zero comparison to the
// adaptive-precision predicate package (algorithm/robust), for callers
// processing groups where float64 cross-product cancellation is a known
// problem. It changes which near-degenerate triangles are admitted, so it
// defaults to off; see DESIGN.md for the tradeoff.
func WithRobustPredicates(enable bool) Option {
	return func(c *config) { c.robustPredicates = enable }
}

// WithStrictEdgeCounts makes OptimizeOptList log, right after
// CombineColinearEdges, every vertex whose incident-edge count is
// neither 0 nor 2. The original implementation
// tolerates this silently ("this can still happen at diamond
// intersections"); this is an opt-in diagnostic, not a behavior change.
func WithStrictEdgeCounts(enable bool) Option {
	return func(c *config) { c.strictEdgeCounts = enable }
}

// WithInternCellSize sets the bucket size used by the spatial hash that
// accelerates vertex interning (FindOptVertex). It does not change the
// exact-equality semantics of interning (invariant V3): it only changes how
// many existing vertices are compared against before falling back to a
// fresh allocation.
func WithInternCellSize(size float64) Option {
	return func(c *config) {
		if size > 0 {
			c.internCellSize = size
		}
	}
}
