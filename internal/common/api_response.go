package common

import (
	"encoding/json"
	"net/http"
	"time"

	"skylog/flightdeck/internal/constants"
	"skylog/flightdeck/internal/logging"
	"skylog/flightdeck/internal/models/dtos"
)

// RespondSuccess sends the standard JSON success envelope.
func RespondSuccess(w http.ResponseWriter, initTime time.Time, message string, data any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	writeJSON(w, code, dtos.APIResponse{
		Status:       string(constants.APIStatusOk),
		Message:      message,
		ResponseTime: GetResponseTime(initTime),
		Data:         data,
	})
}

// RespondError sends the standard JSON error envelope. The error's message
// wins over the fallback message when present.
func RespondError(w http.ResponseWriter, initTime time.Time, err error, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	msg := message
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}

	writeJSON(w, code, dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      msg,
		ResponseTime: GetResponseTime(initTime),
	})
}

// RespondErrorCode is RespondError with a machine-readable error code.
func RespondErrorCode(w http.ResponseWriter, initTime time.Time, errCode, message string, statusCode int) {
	writeJSON(w, statusCode, dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      message,
		ErrorCode:    errCode,
		ResponseTime: GetResponseTime(initTime),
	})
}

func writeJSON(w http.ResponseWriter, code int, body dtos.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}
