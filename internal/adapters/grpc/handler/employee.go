package handler

import (
	"bytes"
	"context"
	"strings"

	pb "github.com/ogurasousui/codex-employee-list/internal/adapters/grpc/gen/employeelist/v1"
	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
	"github.com/ogurasousui/codex-employee-list/internal/core/export"
	"github.com/ogurasousui/codex-employee-list/internal/core/view"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// EmployeeListHandler は EmployeeListService の gRPC 実装です。
type EmployeeListHandler struct {
	svc    employee.UseCase
	logger *zap.Logger
	pb.UnimplementedEmployeeListServiceServer
}

// NewEmployeeListHandler は EmployeeListHandler を生成します。
func NewEmployeeListHandler(svc employee.UseCase, logger *zap.Logger) *EmployeeListHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeListHandler{svc: svc, logger: logger}
}

// AddEmployee は社員を追加します。
func (h *EmployeeListHandler) AddEmployee(ctx context.Context, req *pb.AddEmployeeRequest) (*pb.AddEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.AddEmployee(ctx, employee.AddEmployeeInput{
		Name:       req.GetName(),
		Income:     req.GetIncome(),
		BusinessID: req.GetEmployeeId(),
	})
	if err != nil {
		return nil, h.toStatusError(err)
	}

	return &pb.AddEmployeeResponse{Employee: toProtoEmployee(created)}, nil
}

// RemoveEmployee は社員を削除します。存在しない ID でもエラーにはしません。
func (h *EmployeeListHandler) RemoveEmployee(ctx context.Context, req *pb.RemoveEmployeeRequest) (*pb.RemoveEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if strings.TrimSpace(req.GetRecordId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "record_id is required")
	}

	removed, err := h.svc.RemoveEmployee(ctx, employee.RemoveEmployeeInput{ID: req.GetRecordId()})
	if err != nil {
		return nil, h.toStatusError(err)
	}

	return &pb.RemoveEmployeeResponse{Employee: toProtoEmployee(removed)}, nil
}

// UpdateEmployee は指定されたフィールドだけを更新します。
func (h *EmployeeListHandler) UpdateEmployee(ctx context.Context, req *pb.UpdateEmployeeRequest) (*pb.UpdateEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if strings.TrimSpace(req.GetRecordId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "record_id is required")
	}

	updated, err := h.svc.UpdateEmployee(ctx, employee.UpdateEmployeeInput{
		ID:         req.GetRecordId(),
		Name:       req.Name,
		Income:     req.Income,
		BusinessID: req.EmployeeId,
	})
	if err != nil {
		return nil, h.toStatusError(err)
	}
	if updated == nil {
		return nil, status.Errorf(codes.NotFound, "employee %s not found", req.GetRecordId())
	}

	return &pb.UpdateEmployeeResponse{Employee: toProtoEmployee(updated)}, nil
}

// ListEmployees は検索語で絞り込んだ一覧と、その集計を返します。
func (h *EmployeeListHandler) ListEmployees(ctx context.Context, req *pb.ListEmployeesRequest) (*pb.ListEmployeesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	all := h.svc.ListEmployees()
	matched := view.Filter(all, req.GetSearch())
	summary := view.Summarize(matched)

	employees := make([]*pb.Employee, 0, len(matched))
	for _, emp := range matched {
		employees = append(employees, toProtoEmployee(emp))
	}

	return &pb.ListEmployeesResponse{
		Employees:  employees,
		Summary:    toProtoSummary(summary),
		TotalCount: int32(len(all)),
	}, nil
}

// ExportEmployees は一覧を CSV または XLSX にして返します。
func (h *EmployeeListHandler) ExportEmployees(ctx context.Context, req *pb.ExportEmployeesRequest) (*pb.ExportEmployeesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	format, err := export.ParseFormat(req.GetFormat())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	records := view.Filter(h.svc.ListEmployees(), req.GetSearch())

	var buf bytes.Buffer
	if err := export.Write(&buf, format, records); err != nil {
		return nil, h.toStatusError(err)
	}

	return &pb.ExportEmployeesResponse{
		FileName:    format.FileName(),
		ContentType: format.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}

func toProtoEmployee(emp *employee.Employee) *pb.Employee {
	if emp == nil {
		return nil
	}

	return &pb.Employee{
		RecordId:   emp.ID,
		Name:       emp.Name,
		Income:     emp.Income,
		EmployeeId: emp.BusinessID,
	}
}

func toProtoSummary(s view.Summary) *pb.Summary {
	return &pb.Summary{
		Count:            int32(s.Count),
		Total:            s.Total,
		Average:          s.Average,
		Max:              toProtoEmployee(s.Max),
		FormattedTotal:   view.FormatIncome(s.Total),
		FormattedAverage: view.FormatIncome(s.Average),
	}
}
