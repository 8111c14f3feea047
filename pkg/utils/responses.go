package utils

import (
	"encoding/json"
	"net/http"
)

// The store speaks the plain json-server dialect: bare arrays and
// objects on success, {"error": "..."} with a failure status otherwise.

type errorBody struct {
	Error string `json:"error"`
}

// ResponseJSON writes a JSON body with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusBadRequest, errorBody{Error: message})
}

// ResponseUnprocessable returns 422 with the field-error map, the shape
// form pages key their inline messages from.
func ResponseUnprocessable(w http.ResponseWriter, errors map[string]string) {
	ResponseJSON(w, http.StatusUnprocessableEntity, errors)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, errorBody{Error: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, errorBody{Error: message})
}
