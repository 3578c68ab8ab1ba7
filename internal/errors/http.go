package errors

import (
	"encoding/json"
	"net/http"
)

// HTTPBody is the JSON error payload written to REST responses
type HTTPBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// WriteHTTP writes err as a JSON error response, mapping the error code
// to its HTTP status. Non-Error values are reported as internal errors
// without leaking their text to clients.
func WriteHTTP(w http.ResponseWriter, err error) {
	body := HTTPBody{
		Code:    string(CodeInternal),
		Message: "internal error",
	}

	var customErr *Error
	if As(err, &customErr) {
		body.Code = string(customErr.Code)
		body.Message = customErr.Message
		body.Meta = customErr.Meta
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Code(body.Code).HTTPStatus())

	// Encoding a map of JSON-safe values; an encode failure here would
	// mean the meta payload itself is unencodable, so fall back to a
	// bare status line.
	_ = json.NewEncoder(w).Encode(body)
}

// FromHTTPStatus maps an HTTP status code back to an error code,
// for clients of other services
func FromHTTPStatus(status int) Code {
	switch status {
	case http.StatusOK:
		return CodeOK
	case http.StatusBadRequest:
		return CodeInvalidArgument
	case http.StatusUnauthorized:
		return CodeUnauthenticated
	case http.StatusForbidden:
		return CodePermissionDenied
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeAlreadyExists
	case http.StatusPreconditionFailed:
		return CodeFailedPrecondition
	case http.StatusTooManyRequests:
		return CodeResourceExhausted
	case http.StatusNotImplemented:
		return CodeUnimplemented
	case http.StatusServiceUnavailable:
		return CodeUnavailable
	case http.StatusGatewayTimeout:
		return CodeDeadlineExceeded
	default:
		return CodeInternal
	}
}
