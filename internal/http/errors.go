package http

import (
	"net/http"

	"log-analyzer/internal/shared/svcerrors"
)

const (
	codeBodyTooLarge   = "HTTP_1000"
	codeReportNotFound = "HTTP_1001"
)

// errBodyTooLarge returns an error when the uploaded log body exceeds server.max_body_bytes.
func errBodyTooLarge(cause error) *svcerrors.ServiceError {
	svcErr := svcerrors.NewInvalidArgumentError(codeBodyTooLarge, "request body too large", cause)
	svcErr.HttpStatusCode = http.StatusRequestEntityTooLarge
	return svcErr
}

// errReportNotFound returns an error for report keys that cannot name a stored report.
func errReportNotFound(key string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, "report not found: "+key, nil)
}
