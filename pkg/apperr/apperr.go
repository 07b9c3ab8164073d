package apperr

import (
	"net/http"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// Failure kinds surfaced by handlers. Everything a route can fail with
// wraps exactly one of these sentinels so the response boundary can
// pick a status code without inspecting driver errors.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrStorage      = errors.New("storage operation failed")
	ErrUpstream     = errors.New("upstream unavailable")
)

func Validation(msg string) error {
	return errors.Wrap(ErrValidation, msg)
}

func NotFound(what string) error {
	return errors.Wrap(ErrNotFound, what)
}

// FromMongo classifies a mongo driver error into the taxonomy. Nil
// stays nil so call sites can wrap unconditionally.
func FromMongo(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return errors.Wrap(ErrNotFound, what)
	case mongo.IsDuplicateKeyError(err):
		return errors.Wrapf(ErrDuplicateKey, "%s: %v", what, err)
	default:
		return errors.Wrapf(ErrUpstream, "%s: %v", what, err)
	}
}

func Storage(err error, what string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(ErrStorage, "%s: %v", what, err)
}

// StatusCode maps a classified error to an HTTP status. The original
// service answered 400 for every failure; splitting client from server
// errors here is a deliberate deviation.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, ErrStorage), errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
