// Package employeelistv1 は employeelist.v1.EmployeeListService のメッセージとサービス定義です。
// メッセージは JSON コーデック（content-subtype "employeelist-json"）で運ばれます。
package employeelistv1

// Employee は社員レコードです。
type Employee struct {
	RecordId   string  `json:"record_id"`
	Name       string  `json:"name"`
	Income     float64 `json:"income"`
	EmployeeId string  `json:"employee_id"`
}

func (e *Employee) GetRecordId() string {
	if e == nil {
		return ""
	}
	return e.RecordId
}

func (e *Employee) GetName() string {
	if e == nil {
		return ""
	}
	return e.Name
}

func (e *Employee) GetIncome() float64 {
	if e == nil {
		return 0
	}
	return e.Income
}

func (e *Employee) GetEmployeeId() string {
	if e == nil {
		return ""
	}
	return e.EmployeeId
}

// Summary は一覧の集計値です。
type Summary struct {
	Count           int32     `json:"count"`
	Total           float64   `json:"total"`
	Average         float64   `json:"average"`
	Max             *Employee `json:"max,omitempty"`
	FormattedTotal  string    `json:"formatted_total"`
	FormattedAverage string    `json:"formatted_average"`
}

type AddEmployeeRequest struct {
	Name       string `json:"name"`
	Income     string `json:"income"`
	EmployeeId string `json:"employee_id"`
}

func (r *AddEmployeeRequest) GetName() string {
	if r == nil {
		return ""
	}
	return r.Name
}

func (r *AddEmployeeRequest) GetIncome() string {
	if r == nil {
		return ""
	}
	return r.Income
}

func (r *AddEmployeeRequest) GetEmployeeId() string {
	if r == nil {
		return ""
	}
	return r.EmployeeId
}

type AddEmployeeResponse struct {
	Employee *Employee `json:"employee"`
}

type RemoveEmployeeRequest struct {
	RecordId string `json:"record_id"`
}

func (r *RemoveEmployeeRequest) GetRecordId() string {
	if r == nil {
		return ""
	}
	return r.RecordId
}

// RemoveEmployeeResponse の Employee は対象が存在しなかった場合 nil です。
type RemoveEmployeeResponse struct {
	Employee *Employee `json:"employee,omitempty"`
}

// UpdateEmployeeRequest の nil フィールドは変更しません。
type UpdateEmployeeRequest struct {
	RecordId   string  `json:"record_id"`
	Name       *string `json:"name,omitempty"`
	Income     *string `json:"income,omitempty"`
	EmployeeId *string `json:"employee_id,omitempty"`
}

func (r *UpdateEmployeeRequest) GetRecordId() string {
	if r == nil {
		return ""
	}
	return r.RecordId
}

type UpdateEmployeeResponse struct {
	Employee *Employee `json:"employee"`
}

type ListEmployeesRequest struct {
	Search string `json:"search,omitempty"`
}

func (r *ListEmployeesRequest) GetSearch() string {
	if r == nil {
		return ""
	}
	return r.Search
}

type ListEmployeesResponse struct {
	Employees  []*Employee `json:"employees"`
	Summary    *Summary    `json:"summary"`
	TotalCount int32       `json:"total_count"`
}

type ExportEmployeesRequest struct {
	Format string `json:"format,omitempty"`
	Search string `json:"search,omitempty"`
}

func (r *ExportEmployeesRequest) GetFormat() string {
	if r == nil {
		return ""
	}
	return r.Format
}

func (r *ExportEmployeesRequest) GetSearch() string {
	if r == nil {
		return ""
	}
	return r.Search
}

type ExportEmployeesResponse struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}
