package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorKind — класс ошибки в ответе API.
type ErrorKind string

const (
	KindUnauthorized ErrorKind = "unauthorized"
	KindValidation   ErrorKind = "validation"
	KindNotFound     ErrorKind = "not_found"
	KindForbidden    ErrorKind = "forbidden"
	KindInternal     ErrorKind = "internal"
)

// Status — HTTP-статус для класса ошибки.
func (k ErrorKind) Status() int {
	switch k {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// ErrorBody — тело ответа с ошибкой: {"error":{"kind":..,"message":..}}.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// ResultBody — тело текстового подтверждения.
type ResultBody struct {
	Result string `json:"result"`
}

// apiError — ошибка, готовая к отправке клиенту.
// legacyStatus используется в legacy-режиме, если отличается от статуса класса.
type apiError struct {
	kind         ErrorKind
	message      string
	legacyStatus int
}

// responder пишет ответы в структурированном (JSON) или legacy (plain text) формате.
type responder struct {
	legacy bool
	logger *zap.SugaredLogger
}

func (rs responder) json(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		rs.logger.Errorw("failed to encode response", "error", err)
	}
}

func (rs responder) text(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

func (rs responder) fail(w http.ResponseWriter, e apiError) {
	if rs.legacy {
		status := e.kind.Status()
		if e.legacyStatus != 0 {
			status = e.legacyStatus
		}
		rs.text(w, status, e.message)
		return
	}
	rs.json(w, e.kind.Status(), ErrorBody{Error: ErrorDetail{Kind: e.kind, Message: e.message}})
}

// result пишет текстовое подтверждение: plain text в legacy-режиме, {"result":..} иначе.
func (rs responder) result(w http.ResponseWriter, status int, msg string) {
	if rs.legacy {
		rs.text(w, status, msg)
		return
	}
	rs.json(w, status, ResultBody{Result: msg})
}

// unauthorized — обработчик отказа для мидлвари аутентификации.
func (rs responder) unauthorized(w http.ResponseWriter, _ *http.Request) {
	rs.fail(w, apiError{kind: KindUnauthorized, message: "Unauthorized"})
}

// invalidGzipBody — обработчик битого gzip-тела для мидлвари сжатия.
func (rs responder) invalidGzipBody(w http.ResponseWriter, _ *http.Request) {
	rs.fail(w, apiError{kind: KindValidation, message: "invalid gzip body"})
}

func (rs responder) notFoundRoute(w http.ResponseWriter, r *http.Request) {
	rs.fail(w, apiError{kind: KindNotFound, message: "Route " + r.Method + " " + r.URL.Path + " not found"})
}

func (rs responder) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if rs.legacy {
		rs.text(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	rs.json(w, http.StatusMethodNotAllowed, ErrorBody{Error: ErrorDetail{Kind: KindValidation, Message: "Method " + r.Method + " not allowed"}})
}

func internalError() apiError {
	return apiError{kind: KindInternal, message: "Internal server error"}
}
