package readers

import (
	"log-analyzer/internal/shared/svcerrors"
)

const (
	codeSourceUnavailable = "ANL_1001"
)

// errSourceUnavailable returns an error when a log location cannot be opened or fetched.
func errSourceUnavailable(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeSourceUnavailable, msg, cause)
}
