package httperr

import "errors"

// Kind classifica falhas de negócio para que as camadas de cima consigam
// distinguir "não existe" de "indisponível" sem inspecionar strings.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindConflict     Kind = "conflict"
	KindUnavailable  Kind = "unavailable"
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(kind Kind, code string) error {
	return BusinessError{Kind: kind, Code: code}
}

func NotFoundErr(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func UnauthorizedErr(code string) error {
	return BusinessError{Kind: KindUnauthorized, Code: code}
}

func ConflictErr(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func UnavailableErr(code string) error {
	return BusinessError{Kind: KindUnavailable, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return "", false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
