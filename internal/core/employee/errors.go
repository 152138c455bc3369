package employee

import (
	"errors"
	"strings"
)

var (
	ErrInvalidName       = errors.New("employee: invalid name")
	ErrInvalidIncome     = errors.New("employee: invalid income")
	ErrInvalidBusinessID = errors.New("employee: invalid employee id")
	ErrSlotEmpty         = errors.New("employee: persistence slot is empty")
	ErrPersistence       = errors.New("employee: persistence failed")
)

// Field は入力フィールド名です。
type Field string

const (
	FieldName       Field = "name"
	FieldIncome     Field = "income"
	FieldBusinessID Field = "employee_id"
)

// FieldViolation は 1 フィールド分の検証エラーです。
type FieldViolation struct {
	Field  Field
	Reason string
	Err    error
}

// ValidationError は入力検証に失敗したフィールドをまとめたエラーです。
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Violations) == 0 {
		return "employee: validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, string(v.Field)+": "+v.Reason)
	}
	return "employee: validation failed: " + strings.Join(parts, "; ")
}

// Unwrap は各フィールドの番兵エラーを返し、errors.Is で判定できるようにします。
func (e *ValidationError) Unwrap() []error {
	if e == nil {
		return nil
	}
	errs := make([]error, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Err != nil {
			errs = append(errs, v.Err)
		}
	}
	return errs
}

func (e *ValidationError) add(field Field, reason string, err error) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Reason: reason, Err: err})
}

func (e *ValidationError) orNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}
