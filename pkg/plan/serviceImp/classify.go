package serviceImp

import (
	"net/http"
	"strings"

	"github.com/hosammostafait/AICareerAdvisor/pkg/ai"
	"github.com/hosammostafait/AICareerAdvisor/pkg/plan/service"
)

const invalidKeyReason = "API_KEY_INVALID"

// classify maps a transport or service error to a failure kind. Service
// errors are judged by their status code and reasons. Errors without a
// structured payload fall back to matching the message text, which breaks
// silently if the wording upstream changes.
func classify(err error) error {
	if isInvalidCredential(err) {
		return service.NewError(service.KindInvalidCredential, err)
	}
	return service.NewError(service.KindUnclassified, err)
}

func isInvalidCredential(err error) bool {
	if info, ok := ai.InspectError(err); ok {
		if info.Code == http.StatusForbidden {
			return true
		}
		for _, r := range info.Reasons {
			if r == invalidKeyReason {
				return true
			}
		}
		return strings.Contains(info.Message, invalidKeyReason)
	}
	msg := err.Error()
	return strings.Contains(msg, "403") || strings.Contains(msg, invalidKeyReason)
}
