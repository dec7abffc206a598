package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/assign/hungarian"
	"github.com/katalvlaran/assign/matrix"
)

// render prints the cost matrix right-aligned, one `row col` line per pair
// and the total cost.
func render(w io.Writer, cost *matrix.Dense[float64], pairs hungarian.Assignment, total float64) error {
	if _, err := fmt.Fprintln(w, "cost ="); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	var i int
	for i = 0; i < cost.Rows(); i++ {
		for _, v := range cost.RowView(i) {
			fmt.Fprintf(tw, "%v\t", v)
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "assignments =")
	for _, p := range pairs {
		fmt.Fprintf(w, "%d %d\n", p.Row, p.Col)
	}
	_, err := fmt.Fprintf(w, "total = %v\n", total)

	return err
}
