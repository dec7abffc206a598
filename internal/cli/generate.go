package cli

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/assign/matrix"
)

// defaultSeed is used when --seed is 0, so unseeded runs repeat.
const defaultSeed int64 = 5489

// generateCost fills a rows×cols matrix with integer costs in [low, high].
func generateCost(rows, cols int, seed int64, low, high int) (*matrix.Dense[float64], error) {
	if low > high {
		return nil, fmt.Errorf("--low (%d) must not exceed --high (%d)", low, high)
	}
	if seed == 0 {
		seed = defaultSeed
	}

	m, err := matrix.NewDense[float64](rows, cols)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < rows; i++ {
		row := m.RowView(i)
		for j = 0; j < cols; j++ {
			row[j] = float64(low + rng.Intn(high-low+1))
		}
	}

	return m, nil
}
