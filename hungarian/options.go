package hungarian

import (
	"fmt"
	"math"
)

// InfPolicy selects the value that replaces NaN/±Inf costs before solving.
type InfPolicy int

const (
	// InfPenalty replaces non-finite costs with
	//
	//	max + size·(max − min) + 1
	//
	// where max/min are the extreme finite costs and size = max(M,N).
	// Any complete assignment touching a replaced cell then costs strictly
	// more than every all-finite complete assignment, so infinite cells are
	// only selected when no all-finite assignment exists. When the penalty
	// overflows to ±Inf it degrades to max.
	InfPenalty InfPolicy = iota

	// InfAsMax replaces non-finite costs with the largest finite cost. An
	// infinite cell may then tie with (and win against) a legitimate
	// maximum-cost cell.
	InfAsMax
)

// String returns the flag-friendly policy name.
func (p InfPolicy) String() string {
	switch p {
	case InfPenalty:
		return "penalty"
	case InfAsMax:
		return "max"
	default:
		return fmt.Sprintf("InfPolicy(%d)", int(p))
	}
}

// DefaultEpsilon is the zero tolerance used unless WithEpsilon is given.
// Working cells v with v <= DefaultEpsilon count as zeros.
const DefaultEpsilon = 0.0

// Option configures the solver via functional arguments.
// If an Option is invalid (e.g. negative epsilon), it is recorded internally
// and surfaced as ErrOptionViolation by NewSolver / Solve.
type Option func(*Options)

// Options holds the solver configuration.
type Options struct {
	// Epsilon is the zero tolerance (>= 0, finite). It is converted to the
	// element type, so any value below 1 acts as 0 for integer costs.
	Epsilon float64

	// InfPolicy chooses the replacement for non-finite costs.
	InfPolicy InfPolicy

	// OnStep, when set, is called before each state-machine step with the
	// number of currently covered columns. A Solver shared between
	// goroutines calls it concurrently.
	OnStep func(step Step, covered int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Epsilon = DefaultEpsilon
//   - InfPolicy = InfPenalty
//   - no OnStep hook
func DefaultOptions() Options {
	return Options{
		Epsilon:   DefaultEpsilon,
		InfPolicy: InfPenalty,
	}
}

// WithEpsilon sets the zero tolerance.
//
//	eps >= 0 and finite: accepted
//	otherwise: invalid option → ErrOptionViolation
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			o.err = fmt.Errorf("%w: Epsilon must be finite and non-negative (%v)", ErrOptionViolation, eps)

			return
		}
		o.Epsilon = eps
	}
}

// WithInfPolicy selects how NaN/±Inf costs are replaced.
// Unknown policies are recorded as ErrOptionViolation.
func WithInfPolicy(p InfPolicy) Option {
	return func(o *Options) {
		switch p {
		case InfPenalty, InfAsMax:
			o.InfPolicy = p
		default:
			o.err = fmt.Errorf("%w: unknown InfPolicy %d", ErrOptionViolation, int(p))
		}
	}
}

// WithOnStep registers a callback run before every state-machine step.
// A nil fn is ignored.
func WithOnStep(fn func(step Step, covered int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// gatherOptions applies opts over DefaultOptions and returns the first
// recorded violation, if any.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn == nil {
			continue
		}
		fn(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
