package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/go-chi/chi/v5"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ValidationResponse — 400-ответ с картой поле -> сообщение.
type ValidationResponse struct {
	Code   int               `json:"code"`
	Errors map[string]string `json:"errors"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, e.ErrNotFound.Error()
	case errors.Is(err, e.ErrAuthenticationFailed):
		return http.StatusUnauthorized, detailOf(err, e.ErrAuthenticationFailed)
	case errors.Is(err, e.ErrPermissionDenied):
		return http.StatusForbidden, e.ErrPermissionDenied.Error()
	case errors.Is(err, e.ErrEmailTaken):
		return http.StatusBadRequest, e.ErrEmailTaken.Error()
	case errors.Is(err, e.ErrUpstreamClient):
		return http.StatusBadRequest, "Invalid request: " + detailOf(err, e.ErrUpstreamClient)
	case errors.Is(err, e.ErrUpstreamServer):
		return http.StatusInternalServerError, "Error: " + detailOf(err, e.ErrUpstreamServer)
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrInvalidAmount):
		return http.StatusBadRequest, e.ErrInvalidAmount.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	var validation *e.ValidationError
	if errors.As(err, &validation) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(&ValidationResponse{
			Code:   http.StatusBadRequest,
			Errors: validation.Fields,
		})
		return
	}

	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// detailOf извлекает человекочитаемую часть обёрнутой ошибки: сообщение
// слоя, непосредственно оборачивающего sentinel. Служебные префиксы
// верхних обёрток в ответ клиенту не попадают.
func detailOf(err error, sentinel error) string {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return sentinel.Error()
		}
		if inner == sentinel {
			break
		}
		err = inner
	}

	msg := strings.TrimSuffix(err.Error(), ": "+sentinel.Error())
	if msg == "" || msg == err.Error() {
		return sentinel.Error()
	}
	return msg
}

// newFieldError собирает ValidationError из одного поля.
func newFieldError(field, format string, args ...any) error {
	validation := e.NewValidationError()
	validation.Addf(field, format, args...)
	return validation
}

// parseIDParam читает целочисленный path-параметр.
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, e.Wrap(name, e.ErrStatusBadRequest)
	}
	return id, nil
}

// decodeJSON разбирает тело запроса. Ошибка разбора — это 400, а не 500.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap("malformed request body", e.ErrStatusBadRequest)
	}
	return nil
}
