package handler

import (
	"errors"

	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (h *EmployeeListHandler) toStatusError(err error) error {
	var verr *employee.ValidationError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &verr):
		return validationStatus(verr)
	case errors.Is(err, employee.ErrPersistence):
		h.logger.Warn("persistence failure", zap.Error(err))
		return status.Error(codes.Unavailable, err.Error())
	default:
		h.logger.Error("unexpected error", zap.Error(err))
		return status.Error(codes.Internal, err.Error())
	}
}

func validationStatus(verr *employee.ValidationError) error {
	st := status.New(codes.InvalidArgument, verr.Error())

	br := &errdetails.BadRequest{}
	for _, v := range verr.Violations {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       string(v.Field),
			Description: v.Reason,
		})
	}

	detailed, err := st.WithDetails(br)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
