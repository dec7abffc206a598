package hungarian

import "fmt"

// run drives the labeling state machine from StepStar until CoverCheck
// reports a complete assignment or a step records an error. onStep may be nil.
//
// Transitions:
//
//	Star        → CoverCheck
//	CoverCheck  → done | PrimeSearch
//	PrimeSearch → PrimeSearch | Augment | Adjust
//	Augment     → CoverCheck
//	Adjust      → PrimeSearch
func (s *state[W]) run(onStep func(Step, int)) error {
	step := StepStar
	for step != stepDone {
		if onStep != nil {
			onStep(step, s.coveredCols())
		}
		switch step {
		case StepStar:
			step = s.starZeros()
		case StepCoverCheck:
			step = s.coverCheck()
		case StepPrimeSearch:
			step = s.primeSearch()
		case StepAugment:
			step = s.augment()
		case StepAdjust:
			step = s.adjust()
		default:
			panic("hungarian: unknown step " + step.String())
		}
	}

	return s.err
}

// starZeros stars every zero whose row and column hold no star yet,
// scanning row-major. First found wins.
func (s *state[W]) starZeros() Step {
	rowStarred := make([]bool, s.size)
	colStarred := make([]bool, s.size)

	var r, c int
	for r = 0; r < s.size; r++ {
		for c = 0; c < s.size; c++ {
			if rowStarred[r] || colStarred[c] || !s.isZero(s.cost[r][c]) {
				continue
			}
			s.tags[r][c] = markStar
			rowStarred[r] = true
			colStarred[c] = true
		}
	}

	return StepCoverCheck
}

// coverCheck covers every column holding a star. size covered columns mean
// size independent stars, i.e. a complete assignment.
func (s *state[W]) coverCheck() Step {
	covered := 0

	var r, c int
	for r = 0; r < s.size; r++ {
		for c = 0; c < s.size; c++ {
			if s.tags[r][c] == markStar {
				s.colCover[c] = true
				covered++
			}
		}
	}

	if covered >= s.size {
		return stepDone
	}

	return StepPrimeSearch
}

// primeSearch primes one uncovered zero and records it as the saved zero.
// A star in the same row moves the cover from the star's column to the
// row; otherwise the saved zero starts an augmenting path.
func (s *state[W]) primeSearch() Step {
	r, c, ok := s.findUncoveredZero()
	if !ok {
		return StepAdjust
	}

	s.tags[r][c] = markPrime
	s.saveRow, s.saveCol = r, c

	if sc := s.starInRow(r); sc >= 0 {
		s.rowCover[r] = true
		s.colCover[sc] = false

		return StepPrimeSearch
	}

	return StepAugment
}

// findUncoveredZero scans columns outer, rows inner. The order decides
// which optimum is returned when several exist.
func (s *state[W]) findUncoveredZero() (row, col int, ok bool) {
	for col = 0; col < s.size; col++ {
		if s.colCover[col] {
			continue
		}
		for row = 0; row < s.size; row++ {
			if !s.rowCover[row] && s.isZero(s.cost[row][col]) {
				return row, col, true
			}
		}
	}

	return -1, -1, false
}

// augment builds the alternating sequence from the saved zero
//
//	Z0     = saved prime
//	Z2k+1  = star in the column of Z2k
//	Z2k+2  = prime in the row of Z2k+1
//
// until no unvisited cell continues it, then unstars its stars and stars its
// primes. This grows the star count by one. All primes and covers are
// cleared afterwards.
func (s *state[W]) augment() Step {
	s.resetPath()
	s.pushPath(s.saveRow, s.saveCol)

	col := s.saveCol
	for {
		row := s.findOffPath(col, -1, markStar)
		if row < 0 {
			break
		}
		s.pushPath(row, col)

		col = s.findOffPath(-1, row, markPrime)
		if col < 0 {
			break
		}
		s.pushPath(row, col)
	}

	for _, p := range s.path {
		switch s.tags[p.Row][p.Col] {
		case markStar:
			s.tags[p.Row][p.Col] = markNormal
		case markPrime:
			s.tags[p.Row][p.Col] = markStar
		}
	}
	s.resetPath()

	var r, c int
	for r = 0; r < s.size; r++ {
		for c = 0; c < s.size; c++ {
			if s.tags[r][c] == markPrime {
				s.tags[r][c] = markNormal
			}
		}
	}
	clear(s.rowCover)
	clear(s.colCover)

	return StepCoverCheck
}

// findOffPath looks for a cell tagged t that is not yet on the path, either
// down column col (row < 0) or along row row (col < 0). It returns the
// varying index, or -1.
func (s *state[W]) findOffPath(col, row int, t mark) int {
	var i int
	if row < 0 {
		for i = 0; i < s.size; i++ {
			if s.tags[i][col] == t && !s.onPath(i, col) {
				return i
			}
		}

		return -1
	}
	for i = 0; i < s.size; i++ {
		if s.tags[row][i] == t && !s.onPath(row, i) {
			return i
		}
	}

	return -1
}

// adjust takes h, the smallest uncovered value, adds it to every cell that
// is covered twice (row and column) and subtracts it from every cell that is
// not covered at all. This is the usual "add to covered rows, subtract from
// uncovered columns" with the net effect applied once per cell. Stars,
// primes and covers are left as they are; no cell drops below zero. A cell
// that would exceed the working type records ErrCostRange and stops the run.
func (s *state[W]) adjust() Step {
	var (
		h     W
		found bool
		r, c  int
	)
	for r = 0; r < s.size; r++ {
		if s.rowCover[r] {
			continue
		}
		for c = 0; c < s.size; c++ {
			if !s.colCover[c] && (!found || s.cost[r][c] < h) {
				h, found = s.cost[r][c], true
			}
		}
	}
	if !found {
		// covered rows + covered columns < size whenever the assignment is
		// incomplete, so an uncovered cell must exist.
		panic("hungarian: adjust found no uncovered cell")
	}

	for r = 0; r < s.size; r++ {
		if !s.rowCover[r] {
			continue
		}
		for c = 0; c < s.size; c++ {
			if s.colCover[c] && s.cost[r][c] > s.limit-h {
				s.err = fmt.Errorf("hungarian: adjust cell (%d,%d): %w", r, c, ErrCostRange)

				return stepDone
			}
		}
	}

	for r = 0; r < s.size; r++ {
		for c = 0; c < s.size; c++ {
			switch {
			case s.rowCover[r] && s.colCover[c]:
				s.cost[r][c] += h
			case !s.rowCover[r] && !s.colCover[c]:
				s.cost[r][c] -= h
			}
		}
	}

	return StepPrimeSearch
}
