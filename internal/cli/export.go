package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
	"github.com/ogurasousui/codex-employee-list/internal/core/export"
	"github.com/ogurasousui/codex-employee-list/internal/core/view"
	"github.com/spf13/cobra"
)

type exportOutput struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Count  int    `json:"count"`
}

// NewExportCommand は export コマンドを生成します。-o - なら標準出力へ書き出します。
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		fileType string
		output   string
		search   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export employees as CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd)

			format, err := export.ParseFormat(fileType)
			if err != nil {
				return out.Fail(err)
			}

			sess, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return out.Fail(err)
			}
			defer sess.Close()

			records := view.Filter(sess.store.ListEmployees(), search)

			if output == "-" {
				if err := export.Write(cmd.OutOrStdout(), format, records); err != nil {
					return out.Fail(err)
				}
				return nil
			}

			path := output
			if path == "" {
				path = format.FileName()
			}
			if err := writeExport(path, format, records); err != nil {
				return out.Fail(err)
			}

			data := exportOutput{Path: path, Format: string(format), Count: len(records)}
			return out.Success(data, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "exported %d employees to %s\n", len(records), path)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&fileType, "type", "t", "csv", "file type (csv|xlsx)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default employees.<type>, - for stdout)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "only export matching employees")

	return cmd
}

func writeExport(path string, format export.Format, records []*employee.Employee) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return export.Write(f, format, records)
}
