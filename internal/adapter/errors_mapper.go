package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// galaxyError is the body Galaxy sends with a failed API request.
type galaxyError struct {
	Message string `json:"err_msg"`
	Code    int    `json:"err_code"`
}

// statusErrors maps the status codes callers branch on to their sentinel.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for a 2xx response. Otherwise the error wraps the
// sentinel of the status code and carries the Galaxy error message, or the
// raw body when it is not a Galaxy error document.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())
	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, msg)
}

func errorMessage(body []byte) string {
	var ge galaxyError
	if err := json.Unmarshal(body, &ge); err != nil || ge.Message == "" {
		return strings.TrimSpace(string(body))
	}
	if ge.Code != 0 {
		return fmt.Sprintf("%s (code %d)", ge.Message, ge.Code)
	}
	return ge.Message
}
