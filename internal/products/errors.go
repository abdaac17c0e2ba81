package products

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Kind — класс ошибки, видимый клиенту
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBadRequest
)

const internalMessage = "Unexpected error, check server logs"

// Error — ошибка сервиса каталога
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func notFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func badRequest(msg string) error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// KindOf возвращает KindInternal для любых чужих ошибок
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool   { return err != nil && KindOf(err) == KindNotFound }
func IsBadRequest(err error) bool { return err != nil && KindOf(err) == KindBadRequest }

// uniqueViolation распознаёт нарушение уникальности в postgres (23505) и sqlite
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.Detail, true
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return liteErr.Error(), true
	}
	return "", false
}

// handleDBError: unique -> BadRequest, остальное в лог и наружу как Internal
func (s *Service) handleDBError(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	if detail, ok := uniqueViolation(err); ok {
		return &Error{Kind: KindBadRequest, Message: detail, Err: err}
	}
	s.logger.Error("unexpected database error", zap.Error(err))
	return &Error{Kind: KindInternal, Message: internalMessage, Err: err}
}
