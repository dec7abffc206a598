package cli

import (
	"fmt"
	"os"

	"github.com/katalvlaran/assign/matrix"
	"gopkg.in/yaml.v3"
)

// costFile is the on-disk cost matrix format:
//
//	cost:
//	  - [4, 1, 3]
//	  - [2, .inf, 5]
type costFile struct {
	Cost [][]float64 `yaml:"cost"`
}

// loadCostFile reads and validates a YAML cost matrix.
func loadCostFile(path string) (*matrix.Dense[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cf costFile
	if err = yaml.NewDecoder(f).Decode(&cf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(cf.Cost) == 0 || len(cf.Cost[0]) == 0 {
		return nil, fmt.Errorf("%s: no cost rows", path)
	}

	m, err := matrix.NewDenseFrom(cf.Cost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
