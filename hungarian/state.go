package hungarian

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/assign/matrix"
)

// mark tags one cell of the mask matrix.
type mark uint8

const (
	markNormal mark = iota // no role in the current assignment
	markStar               // tentative assignment
	markPrime              // zero under augmenting-path search
)

// working is the element type the state machine computes in. Integer costs
// run on int64, float costs on float64; the caller's T only appears at the
// API edge.
type working interface {
	int64 | float64
}

// machine is the type-erased view Solver.Solve drives.
type machine interface {
	run(onStep func(Step, int)) error
	extract(rows, cols int) (Assignment, error)
}

// state is the per-call working set of one Solve invocation. It is created
// by newState, mutated only by the steps in steps.go and dropped after
// extract; nothing in it survives or is shared across calls.
type state[W working] struct {
	size  int // side of the square working matrix
	eps   W   // zero tolerance in element units
	limit W   // largest representable W, for the Adjust overflow check

	work *matrix.Dense[W]    // reduced costs, size×size
	mask *matrix.Dense[mark] // Normal/Star/Prime tags, size×size
	cost [][]W               // row views of work
	tags [][]mark            // row views of mask

	rowCover []bool
	colCover []bool

	// saved zero: the most recently primed cell (PrimeSearch → Augment)
	saveRow, saveCol int

	// alternating sequence of Augment, with an O(1) membership grid
	path   []Pair
	inPath []bool // size*size, row-major

	err error // set when a step cannot continue (ErrCostRange)
}

// newMachine copies cost into the working type and runs preprocessing.
//
// Implementation:
//   - Stage 1: copy cost into a Dense (nil/empty input rejected).
//   - Stage 2: widen to float64 (float T) or to int64 offsets from the
//     minimum (integer T, ErrCostRange when the span exceeds int64).
//   - Stage 3: newState on the widened copy.
func newMachine[T matrix.Number](cost matrix.Matrix[T], o Options) (machine, error) {
	src, err := matrix.FromMatrix(cost)
	switch {
	case errors.Is(err, matrix.ErrNilMatrix):
		return nil, ErrNilMatrix
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return nil, ErrEmptyMatrix
	case err != nil:
		return nil, fmt.Errorf("hungarian: copy cost matrix: %w", err)
	}

	if isFloat[T]() {
		st, err := newState(matrix.Convert(src, func(v T) float64 { return float64(v) }), o)
		if err != nil {
			return nil, err
		}

		return st, nil
	}

	wide, err := widenInts(src)
	if err != nil {
		return nil, err
	}
	st, err := newState(wide, o)
	if err != nil {
		return nil, err
	}

	return st, nil
}

// newState runs the preprocessing stage on an already widened private copy.
//
// Implementation:
//   - Stage 1: pad to size×size with the largest finite cost.
//   - Stage 2: replace NaN/±Inf per InfPolicy.
//   - Stage 3: subtract row minima, then column minima.
//   - Stage 4: allocate the mask, covers and path buffers.
func newState[W working](work *matrix.Dense[W], o Options) (*state[W], error) {
	rows, cols := work.Shape()
	size := max(rows, cols)

	var err error
	if rows != cols {
		pad, _ := work.MaxFinite() // zero when nothing is finite
		if work, err = work.Resize(size, size, pad); err != nil {
			return nil, err
		}
	}
	if err = matrix.ValidateSquare[W](work); err != nil {
		return nil, fmt.Errorf("hungarian: working matrix: %w", err)
	}

	if work.HasNonFinite() {
		if _, err = work.ReplaceNonFinite(nonFiniteSubstitute(work, o.InfPolicy, size)); err != nil {
			return nil, err
		}
	}

	if _, err = work.ReduceRows(); err == nil {
		_, err = work.ReduceCols()
	}
	if errors.Is(err, matrix.ErrOverflow) {
		return nil, fmt.Errorf("hungarian: reduce: %w: %w", ErrCostRange, err)
	}
	if err != nil {
		return nil, err
	}

	mask, err := matrix.NewDense[mark](size, size)
	if err != nil {
		return nil, err
	}

	s := &state[W]{
		size:     size,
		eps:      W(o.Epsilon),
		limit:    upperBound[W](),
		work:     work,
		mask:     mask,
		cost:     make([][]W, size),
		tags:     make([][]mark, size),
		rowCover: make([]bool, size),
		colCover: make([]bool, size),
		path:     make([]Pair, 0, 2*size),
		inPath:   make([]bool, size*size),
	}
	var i int
	for i = 0; i < size; i++ {
		s.cost[i] = work.RowView(i)
		s.tags[i] = mask.RowView(i)
	}

	return s, nil
}

// nonFiniteSubstitute picks the finite value that replaces NaN/±Inf cells.
// With no finite cell at all every assignment is equally bad; zero is used.
func nonFiniteSubstitute[W working](m *matrix.Dense[W], policy InfPolicy, size int) W {
	hi, ok := m.MaxFinite()
	if !ok {
		var zero W

		return zero
	}
	if policy == InfAsMax {
		return hi
	}

	lo, _ := m.MinFinite()
	penalty := hi + W(size)*(hi-lo) + 1
	if !matrix.IsFinite(penalty) || penalty <= hi {
		return hi
	}

	return penalty
}

// isZero is the single zero test of the state machine.
func (s *state[W]) isZero(v W) bool { return v <= s.eps }

// starInRow returns the column of the star in row r, or -1.
func (s *state[W]) starInRow(r int) int {
	for c, t := range s.tags[r] {
		if t == markStar {
			return c
		}
	}

	return -1
}

// coveredCols counts the covered columns.
func (s *state[W]) coveredCols() int {
	n := 0
	for _, c := range s.colCover {
		if c {
			n++
		}
	}

	return n
}

// pushPath appends (r,c) to the alternating sequence.
func (s *state[W]) pushPath(r, c int) {
	s.path = append(s.path, Pair{Row: r, Col: c})
	s.inPath[r*s.size+c] = true
}

// onPath reports whether (r,c) is already in the alternating sequence.
func (s *state[W]) onPath(r, c int) bool { return s.inPath[r*s.size+c] }

// resetPath empties the sequence and clears exactly the grid cells it set.
func (s *state[W]) resetPath() {
	for _, p := range s.path {
		s.inPath[p.Row*s.size+p.Col] = false
	}
	s.path = s.path[:0]
}

// extract trims the mask to the original rows×cols shape and collects the
// starred cells. Stars in padding rows/columns are dropped. The row-major
// walk yields pairs already sorted ascending by row.
func (s *state[W]) extract(rows, cols int) (Assignment, error) {
	trimmed, err := s.mask.Resize(rows, cols, markNormal)
	if err != nil {
		return nil, err
	}

	out := make(Assignment, 0, min(rows, cols))
	trimmed.Do(func(i, j int, t mark) bool {
		if t == markStar {
			out = append(out, Pair{Row: i, Col: j})
		}

		return true
	})

	return out, nil
}
