package http

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Total   *int        `json:"total,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

func JSONSuccess(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func JSONSuccessCreated(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// JSONList includes the sequence length as total alongside the data.
func JSONList(w http.ResponseWriter, data interface{}, total int) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
		Total:   &total,
	})
}

func JSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, Response{
		Success: false,
		Message: message,
	})
}

// JSONErrorDetail attaches the raw error text for diagnostics.
func JSONErrorDetail(w http.ResponseWriter, statusCode int, message string, err error) {
	writeJSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}
