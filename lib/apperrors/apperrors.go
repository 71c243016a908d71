package apperrors

import (
	"github.com/pkg/errors"
)

// Kind - класс ошибки предметной области, по нему контроллер выбирает HTTP статус
type Kind string

const (
	KindValidation   Kind = "VALIDATION"    // некорректные данные запроса
	KindConflict     Kind = "CONFLICT"      // нарушение инварианта уникальности
	KindInvalidState Kind = "INVALID_STATE" // операция недопустима для текущего состояния
	KindPolicy       Kind = "POLICY"        // отказ по бизнес-правилу
	KindNotFound     Kind = "NOT_FOUND"     // запись не найдена
	KindForbidden    Kind = "FORBIDDEN"     // роль не даёт права на операцию
)

type Error struct {
	kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Kind() Kind {
	return e.kind
}

func New(kind Kind, msg string) error {
	return &Error{kind: kind, msg: msg}
}

func Wrap(err error, kind Kind, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, msg: msg, cause: err}
}

func NewValidation(msg string) error {
	return New(KindValidation, msg)
}

func NewConflict(msg string) error {
	return New(KindConflict, msg)
}

func NewInvalidState(msg string) error {
	return New(KindInvalidState, msg)
}

func NewPolicy(msg string) error {
	return New(KindPolicy, msg)
}

func NewNotFound(msg string) error {
	return New(KindNotFound, msg)
}

func NewForbidden(msg string) error {
	return New(KindForbidden, msg)
}

// KindOf - класс ошибки, пустая строка для неклассифицированных ошибок
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
