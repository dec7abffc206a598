// Package hungarian solves the rectangular linear assignment problem with the
// classical Kuhn–Munkres (Hungarian) algorithm.
//
// 🚀 What is the assignment problem?
//
//	Given an M×N cost matrix, pick min(M,N) cells so that no row and no
//	column is used twice and the sum of the picked costs is minimal.
//	Typical uses:
//	  • multi-object tracking (detections ↔ tracks)
//	  • task / worker allocation
//	  • bipartite matching under cost minimization
//
// ✨ How it works:
//
//	Preprocessing : pad to a square working matrix with the largest finite
//	                 cost, sanitize NaN/±Inf, subtract row minima then
//	                 column minima.
//	State machine : five steps iterated until every column is covered:
//	                   Star        greedily star independent zeros (row-major)
//	                   CoverCheck  cover starred columns; done when all covered
//	                   PrimeSearch prime an uncovered zero (column-major scan)
//	                   Augment     flip the alternating prime/star path
//	                   Adjust      move the smallest uncovered value
//	Postprocessing: drop padding, collect starred cells sorted by row.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/assign/hungarian"
//
//	pairs, err := hungarian.SolveRows([][]float64{
//	  {4, 1, 3},
//	  {2, 0, 5},
//	})
//	// pairs == Assignment{{Row: 0, Col: 1}, {Row: 1, Col: 0}}
//
// Every call owns its working state, so a single Solver may be shared by
// many goroutines.
//
// Numeric policy:
//
//   - A working cell counts as zero when it is <= Epsilon (default 0, i.e.
//     exact for integers and tolerant only of negative rounding drift for
//     floats). Use WithEpsilon for noisy float data.
//   - NaN and ±Inf costs are replaced before solving; see InfPolicy.
//   - The search runs on int64 (integer T, as offsets from the minimum) or
//     float64 (float T), so narrow types such as int8 never wrap. A span
//     that does not fit the working type fails with ErrCostRange.
//   - Ties between equal-cost optima are broken by scan order (row-major
//     starring, column-major priming). The returned cost is always optimal;
//     which optimum is returned is deterministic but order-dependent.
//
// Performance:
//
//   - Time:   O(n³) with n = max(M,N)
//   - Memory: O(n²)
package hungarian
