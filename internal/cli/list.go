package cli

import (
	"fmt"
	"io"

	"github.com/ogurasousui/codex-employee-list/internal/core/view"
	"github.com/spf13/cobra"
)

type listOutput struct {
	Employees []*employeeOutput `json:"employees"`
	Total     int               `json:"total"`
}

// NewListCommand は ls コマンドを生成します。
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd)

			sess, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return out.Fail(err)
			}
			defer sess.Close()

			all := sess.store.ListEmployees()
			matched := view.Filter(all, search)

			data := listOutput{Employees: toEmployeeOutputs(matched), Total: len(all)}
			return out.Success(data, func(w io.Writer) error {
				if len(all) == 0 {
					_, err := fmt.Fprintln(w, "no employees")
					return err
				}
				return renderTable(w, matched)
			})
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name, income or employee id")

	return cmd
}

// NewStatsCommand は stats コマンドを生成します。
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show count, total, average and highest income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd)

			sess, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return out.Fail(err)
			}
			defer sess.Close()

			s := view.Summarize(view.Filter(sess.store.ListEmployees(), search))

			data := summaryOutput{Count: s.Count, Total: s.Total, Average: s.Average, Max: toEmployeeOutput(s.Max)}
			return out.Success(data, func(w io.Writer) error {
				fmt.Fprintf(w, "Employees: %d\n", s.Count)
				fmt.Fprintf(w, "Total income: %s\n", view.FormatIncome(s.Total))
				fmt.Fprintf(w, "Average income: %s\n", view.FormatIncome(s.Average))
				if s.Max == nil {
					_, err := fmt.Fprintln(w, "Highest income: -")
					return err
				}
				_, err := fmt.Fprintf(w, "Highest income: %s (%s)\n", s.Max.Name, view.FormatIncome(s.Max.Income))
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "only summarize matching employees")

	return cmd
}
