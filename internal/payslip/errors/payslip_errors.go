package paysliperrors

import (
	"net/http"

	"go-paie/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidPayslipID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payslip id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period, month must be 0-11",
		http.StatusBadRequest,
	)
	ErrInvalidSimulation = apperror.New(
		apperror.CodeInvalidInput,
		"simulation needs an employee_id or a wage with both schemes",
		http.StatusBadRequest,
	)
	ErrAmbiguousTarget = apperror.New(
		apperror.CodeInvalidInput,
		"employee_id and email cannot both be set",
		http.StatusBadRequest,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)
	ErrEmployeeReference = apperror.New(
		apperror.CodeInvalidState,
		"payslip references an unknown employee",
		http.StatusUnprocessableEntity,
	)
	ErrAsyncUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"asynchronous generation is not configured",
		http.StatusServiceUnavailable,
	)
)
