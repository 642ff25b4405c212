package json_utilities

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

var errEncoding = errors.New("error while encoding response")

type httpError struct {
	Error     string      `json:"error"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func newHttpError(err error) *httpError {
	return newHttpMessage(err.Error())
}

func newHttpMessage(message string) *httpError {
	return &httpError{Error: message, Timestamp: time.Now().UTC()}
}

// Envelope wraps a payload under a single key, as in `{"statue": {...}}`.
type Envelope map[string]interface{}

func Created(writer http.ResponseWriter, payload interface{}) {
	encodeJSON(writer, http.StatusCreated, payload)
}

func Ok(writer http.ResponseWriter, payload interface{}) {
	encodeJSON(writer, http.StatusOK, payload)
}

func NoContent(writer http.ResponseWriter) {
	// no content type header needed
	writer.WriteHeader(http.StatusNoContent)
}

func NotFound(writer http.ResponseWriter, message string) {
	encodeJSON(writer, http.StatusNotFound, newHttpMessage(message))
}

func BadRequestWithMessage(writer http.ResponseWriter, message string) {
	encodeJSON(writer, http.StatusBadRequest, newHttpMessage(message))
}

func Conflict(writer http.ResponseWriter, message string) {
	encodeJSON(writer, http.StatusConflict, newHttpMessage(message))
}

func MethodNotAllowed(writer http.ResponseWriter) {
	encodeJSON(writer, http.StatusMethodNotAllowed, newHttpMessage("Method not allowed"))
}

func Unauthorised(writer http.ResponseWriter) {
	writer.Header().Set("WWW-Authenticate", "Bearer")
	encodeJSON(writer, http.StatusUnauthorized, newHttpMessage("Unauthorised"))
}

// InternalServerError hides the cause from clients; handlers are expected to log it.
func InternalServerError(writer http.ResponseWriter, _ error) {
	encodeJSON(writer, http.StatusInternalServerError, newHttpMessage("Internal server error"))
}

// ValidationError reports a 400, attaching structured details when the error knows how to marshal itself, as
// ozzo-validation's errors do.
func ValidationError(writer http.ResponseWriter, err error) {
	var body = newHttpError(err)
	if marshaler, ok := err.(json.Marshaler); ok {
		body.Details = marshaler
	}
	encodeJSON(writer, http.StatusBadRequest, body)
}

func encodeJSON(writer http.ResponseWriter, status int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json")

	// encode before writing the status, which can't be amended afterwards
	body, err := json.Marshal(payload)
	if err != nil {
		writer.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(writer).Encode(newHttpError(errEncoding))
		return
	}
	writer.WriteHeader(status)
	if payload == nil {
		return
	}
	_, _ = writer.Write(append(body, '\n'))
}

// DecodeValidate parses the request body into T and runs its validation rules.
func DecodeValidate[T Validator](request *http.Request) (data T, err error) {
	if err = json.NewDecoder(request.Body).Decode(&data); err != nil {
		return data, errors.New("malformed JSON body")
	}
	return data, data.Validate()
}

type Validator interface {
	Validate() error
}
