package ai

import (
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrSchemaMismatch reports a model answer that does not satisfy the
// response schema.
var ErrSchemaMismatch = errors.New("response does not match schema")

// ErrorInfo is the structured part of an error returned by the service.
type ErrorInfo struct {
	Code    int
	Status  string
	Message string
	Reasons []string
}

// InspectError extracts the service's structured error, if err carries one.
func InspectError(err error) (ErrorInfo, bool) {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		var p *genai.APIError
		if !errors.As(err, &p) || p == nil {
			return ErrorInfo{}, false
		}
		apiErr = *p
	}

	info := ErrorInfo{Code: apiErr.Code, Status: apiErr.Status, Message: apiErr.Message}
	for _, d := range apiErr.Details {
		if r, ok := d["reason"]; ok {
			info.Reasons = append(info.Reasons, fmt.Sprint(r))
		}
	}
	return info, true
}
