package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
	"github.com/ogurasousui/codex-employee-list/internal/core/view"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitValidation = 2
)

// ExitError は終了コード付きのエラーです。
type ExitError struct {
	Code    int
	Message string
	Err     error
	// Reported は出力済みであることを示し、main で二重に表示しないようにします。
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// GetExitCode は err から終了コードを取り出します。ExitError 以外は ExitFailure です。
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsReported は err が既にユーザーへ出力済みかを返します。
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// OutputFormatter は text と json の出力を切り替えます。
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse は json 出力の共通形式です。
type CLIResponse struct {
	Status string    `json:"status"`
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError は json 出力のエラー詳細です。
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (f *OutputFormatter) isJSON() bool {
	return f.Format == "json"
}

// Success は data を json で、text なら render で出力します。
func (f *OutputFormatter) Success(data any, render func(w io.Writer) error) error {
	if f.isJSON() {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
	}
	return render(f.Writer)
}

// Fail はエラーを出力し、終了コード付きのエラーを返します。
func (f *OutputFormatter) Fail(err error) error {
	code, exit := "E_FAILED", ExitFailure
	var details any

	var verr *employee.ValidationError
	if errors.As(err, &verr) {
		code, exit = "E_VALIDATION", ExitValidation
		violations := make([]violationOutput, 0, len(verr.Violations))
		for _, v := range verr.Violations {
			violations = append(violations, violationOutput{Field: string(v.Field), Reason: v.Reason})
		}
		details = violations
	} else if errors.Is(err, employee.ErrPersistence) {
		code = "E_PERSISTENCE"
	}

	if f.isJSON() {
		_ = json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: err.Error(), Details: details},
		})
	} else if verr != nil {
		for _, v := range verr.Violations {
			fmt.Fprintf(f.Writer, "Error: %s %s\n", v.Field, v.Reason)
		}
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, err.Error())
	}

	return &ExitError{Code: exit, Message: code, Err: err, Reported: true}
}

type employeeOutput struct {
	RecordID   string  `json:"record_id"`
	Name       string  `json:"name"`
	Income     float64 `json:"income"`
	EmployeeID string  `json:"employee_id"`
}

type violationOutput struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type summaryOutput struct {
	Count   int             `json:"count"`
	Total   float64         `json:"total"`
	Average float64         `json:"average"`
	Max     *employeeOutput `json:"max,omitempty"`
}

func toEmployeeOutput(emp *employee.Employee) *employeeOutput {
	if emp == nil {
		return nil
	}
	return &employeeOutput{RecordID: emp.ID, Name: emp.Name, Income: emp.Income, EmployeeID: emp.BusinessID}
}

func toEmployeeOutputs(records []*employee.Employee) []*employeeOutput {
	out := make([]*employeeOutput, 0, len(records))
	for _, emp := range records {
		out = append(out, toEmployeeOutput(emp))
	}
	return out
}

func renderTable(w io.Writer, records []*employee.Employee) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RECORD ID\tNAME\tINCOME\tEMPLOYEE ID")
	for _, emp := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", emp.ID, emp.Name, view.FormatIncome(emp.Income), emp.BusinessID)
	}
	return tw.Flush()
}
