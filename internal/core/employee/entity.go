package employee

// Employee は社員レコードです。
//
// JSON のキー name / income / id はブラウザ版が localStorage に書き出していた形式と同じです。
type Employee struct {
	ID         string  `json:"recordId"`
	Name       string  `json:"name"`
	Income     float64 `json:"income"`
	BusinessID string  `json:"id"`
}

func cloneEmployee(emp *Employee) *Employee {
	if emp == nil {
		return nil
	}
	clone := *emp
	return &clone
}

func cloneEmployees(src []*Employee) []*Employee {
	out := make([]*Employee, 0, len(src))
	for _, emp := range src {
		out = append(out, cloneEmployee(emp))
	}
	return out
}
