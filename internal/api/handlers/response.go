package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse тело JSON ошибки
type ErrorResponse struct {
	Message string `json:"message"`
}

// RespondJSON пишет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет JSON ошибку
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondUpstreamError отвечает 502, когда REST API маркетплейса недоступен или вернул ошибку
func RespondUpstreamError(w http.ResponseWriter) {
	RespondError(w, http.StatusBadGateway, MsgGeneric)
}
