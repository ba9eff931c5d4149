package network

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// IsNotFound reports whether err means the resource no longer exists.
// Treated as success during cleanup so teardown can be re-run safely.
func IsNotFound(err error) bool {
	code := apiErrorCode(err)
	if code == "" {
		return false
	}
	return strings.HasSuffix(code, ".NotFound") ||
		strings.HasSuffix(code, "NotFound") ||
		strings.HasSuffix(code, "NotFoundFault")
}

// IsAlreadyExists reports whether err means the resource (or rule) is
// already present. Treated as success during idempotent create flows.
func IsAlreadyExists(err error) bool {
	code := apiErrorCode(err)
	if code == "" {
		return false
	}
	return strings.HasSuffix(code, ".Duplicate") ||
		strings.HasSuffix(code, "AlreadyExists") ||
		strings.HasSuffix(code, "AlreadyExistsFault") ||
		code == "InvalidPermission.Duplicate"
}

// IsTransient reports whether err is worth retrying: throttling and
// provider-side hiccups, not malformed requests.
func IsTransient(err error) bool {
	switch apiErrorCode(err) {
	case "RequestLimitExceeded", "Throttling", "ThrottlingException",
		"RequestThrottled", "ServiceUnavailable", "InternalError",
		"InternalFailure":
		return true
	}
	return false
}

func apiErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
