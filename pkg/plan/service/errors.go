package service

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindMissingCredential Kind = "missing_credential"
	KindInvalidCredential Kind = "invalid_credential"
	KindEmptyResponse     Kind = "empty_response"
	KindUnclassified      Kind = "unclassified"
)

var (
	ErrMissingCredential = errors.New("api credential is not configured")
	ErrInvalidCredential = errors.New("api credential was rejected")
	ErrEmptyResponse     = errors.New("model returned an empty response")
	ErrUnclassified      = errors.New("plan generation failed")
)

// GenerateError carries the kind of a failed generation and, when there is
// one, the underlying error.
type GenerateError struct {
	Kind Kind
	Err  error
}

func NewError(kind Kind, err error) *GenerateError {
	return &GenerateError{Kind: kind, Err: err}
}

func (e *GenerateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.sentinel(), e.Err)
	}
	return e.sentinel().Error()
}

// Unwrap exposes both the kind's sentinel and the cause, so errors.Is works
// for either.
func (e *GenerateError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.sentinel()}
	}
	return []error{e.sentinel(), e.Err}
}

func (e *GenerateError) sentinel() error {
	switch e.Kind {
	case KindMissingCredential:
		return ErrMissingCredential
	case KindInvalidCredential:
		return ErrInvalidCredential
	case KindEmptyResponse:
		return ErrEmptyResponse
	}
	return ErrUnclassified
}

// KindOf reports the kind of err. Errors that did not come from Generate
// are unclassified.
func KindOf(err error) Kind {
	var ge *GenerateError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnclassified
}

// UserMessage is the Arabic message shown to the user for a failure kind.
func UserMessage(kind Kind) string {
	switch kind {
	case KindMissingCredential:
		return "مفتاح الـ API غير مفعّل. إذا كنت صاحب الموقع، تأكد من إضافة API_KEY في إعدادات الخادم."
	case KindInvalidCredential:
		return "مفتاح الـ API غير صالح أو محظور. يرجى التأكد من صلاحية المفتاح في Google AI Studio."
	}
	return "حدث خطأ أثناء التواصل مع المساعد الذكي. يرجى المحاولة مرة أخرى لاحقاً."
}
