package cli

import (
	"fmt"
	"io"

	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
	"github.com/spf13/cobra"
)

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

// NewAddCommand は add コマンドを生成します。
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME INCOME EMPLOYEE_ID",
		Short: "Add an employee",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd)

			sess, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return out.Fail(err)
			}
			defer sess.Close()

			created, err := sess.store.AddEmployee(cmd.Context(), employee.AddEmployeeInput{
				Name:       args[0],
				Income:     args[1],
				BusinessID: args[2],
			})
			if err != nil {
				return out.Fail(err)
			}

			return out.Success(toEmployeeOutput(created), func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "added %s (%s)\n", created.Name, created.ID)
				return err
			})
		},
	}
}

// NewRemoveCommand は rm コマンドを生成します。存在しない ID でも成功します。
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm RECORD_ID",
		Short: "Remove an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd)

			sess, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return out.Fail(err)
			}
			defer sess.Close()

			removed, err := sess.store.RemoveEmployee(cmd.Context(), employee.RemoveEmployeeInput{ID: args[0]})
			if err != nil {
				return out.Fail(err)
			}

			return out.Success(toEmployeeOutput(removed), func(w io.Writer) error {
				if removed == nil {
					_, err := fmt.Fprintf(w, "no employee with record id %s\n", args[0])
					return err
				}
				_, err := fmt.Fprintf(w, "removed %s (%s)\n", removed.Name, removed.ID)
				return err
			})
		},
	}
}

type editOptions struct {
	name       string
	income     string
	employeeID string
}

// NewEditCommand は edit コマンドを生成します。指定したフラグのフィールドだけ更新します。
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit RECORD_ID",
		Short: "Edit fields of an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd)

			in := employee.UpdateEmployeeInput{ID: args[0]}
			if cmd.Flags().Changed("name") {
				in.Name = &opts.name
			}
			if cmd.Flags().Changed("income") {
				in.Income = &opts.income
			}
			if cmd.Flags().Changed("employee-id") {
				in.BusinessID = &opts.employeeID
			}
			if in.Name == nil && in.Income == nil && in.BusinessID == nil {
				return out.Fail(fmt.Errorf("nothing to update: pass --name, --income or --employee-id"))
			}

			sess, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return out.Fail(err)
			}
			defer sess.Close()

			updated, err := sess.store.UpdateEmployee(cmd.Context(), in)
			if err != nil {
				return out.Fail(err)
			}
			if updated == nil {
				return out.Fail(fmt.Errorf("employee %s not found", args[0]))
			}

			return out.Success(toEmployeeOutput(updated), func(w io.Writer) error {
				return renderTable(w, []*employee.Employee{updated})
			})
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "new name")
	cmd.Flags().StringVar(&opts.income, "income", "", "new income")
	cmd.Flags().StringVar(&opts.employeeID, "employee-id", "", "new employee id")

	return cmd
}
