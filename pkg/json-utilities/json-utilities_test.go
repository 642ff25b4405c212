package json_utilities

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func (p payload) Validate() error {
	if p.Name == "" {
		return errors.New("name: cannot be blank.")
	}
	return nil
}

type detailedError map[string]string

func (d detailedError) Error() string { return "invalid" }

func (d detailedError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string(d))
}

func TestDecodeValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"name":"Rodin"}`, ""},
		{"failing rule", `{"name":""}`, "name: cannot be blank."},
		{"malformed", `{"name":`, "malformed JSON body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			data, err := DecodeValidate[payload](request)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "Rodin", data.Name)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestEnvelopes(t *testing.T) {
	recorder := httptest.NewRecorder()
	Created(recorder, Envelope{"statue": payload{Name: "Bull"}})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"statue":{"name":"Bull"}}`, recorder.Body.String())
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	recorder := httptest.NewRecorder()
	ValidationError(recorder, detailedError{"price": "must be no less than 0"})

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "invalid", body["error"])
	assert.Equal(t, map[string]interface{}{"price": "must be no less than 0"}, body["details"])
}

func TestEncodingFailuresReport500(t *testing.T) {
	recorder := httptest.NewRecorder()
	Ok(recorder, map[string]interface{}{"bad": make(chan int)})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
