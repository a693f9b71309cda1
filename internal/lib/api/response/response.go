package response

import (
	"errors"
	"net/http"
	"strings"

	"CollegeAdmin/entity"
)

// Response is the error body returned by every endpoint.
type Response struct {
	Detail string `json:"detail"`
}

// Message is the body of simple acknowledgements.
type Message struct {
	Message string `json:"message"`
}

func Error(message string) Response {
	return Response{Detail: message}
}

func Ok(message string) Message {
	return Message{Message: message}
}

// StatusFor maps a core error onto the HTTP status reported to the caller.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidation), errors.Is(err, entity.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrAlreadyProcessed):
		return http.StatusConflict
	case errors.Is(err, entity.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Detail is the message shown to the caller for err. Unauthorized errors are
// never elaborated.
func Detail(err error) string {
	if errors.Is(err, entity.ErrUnauthorized) {
		return entity.ErrUnauthorized.Error()
	}
	if StatusFor(err) == http.StatusInternalServerError {
		return "internal error"
	}
	msg := err.Error()
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	return msg
}
