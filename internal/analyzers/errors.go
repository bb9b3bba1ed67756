package analyzers

import (
	"fmt"

	"log-analyzer/internal/shared/svcerrors"
)

// AnalysisService errors. ANL_1001 (log source unavailable) is raised by the readers package.
const (
	codeValidationFailed      = "ANL_1000"
	codeReportAlreadyExists   = "ANL_1002"
	codeReportNotFound        = "ANL_1003"
	codeInternalStreamFailed  = "ANL_9000"
	codeInternalRenderFailed  = "ANL_9001"
	codeInternalStorageFailed = "ANL_9002"
)

// errValidationFailed returns an error for an invalid analysis request.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errReportAlreadyExists returns an error when the report of a run is already stored.
func errReportAlreadyExists(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeReportAlreadyExists, "report already exists", cause)
}

// errReportNotFound returns an error when a requested report does not exist.
func errReportNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, "report not found", cause)
}

// errInternalStreamFailed returns an error when reading the log stream fails mid-pass.
func errInternalStreamFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStreamFailed, fmt.Errorf("streamReadFailed: %w", cause))
}

// errInternalRenderFailed returns an error when a report cannot be rendered.
func errInternalRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("reportRenderFailed: %w", cause))
}

// errInternalStorageFailed returns an error when a report store operation fails.
func errInternalStorageFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStorageFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
