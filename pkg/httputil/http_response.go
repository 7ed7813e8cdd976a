package httputil

import (
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// WriteErrorResponse writes message with the status code. A joined details
// error is reported one line per wrapped error, so validation failures list
// every offending field.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = detailLines(details)
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func detailLines(err error) []string {
	lines := make([]string, 0)
	for _, l := range strings.Split(err.Error(), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil && statusCode != http.StatusNoContent {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}
