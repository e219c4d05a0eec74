package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestOKEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, "done", gin.H{"id": 1})

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(200), body["statusCode"])
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "done", body["message"])
	assert.Equal(t, map[string]interface{}{"id": float64(1)}, body["data"])
}

func TestFailAlwaysHasErrorsArray(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Fail(c, http.StatusNotFound, "Video not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"statusCode":404,"message":"Video not found","errors":[],"success":false}`, w.Body.String())
}

type signup struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,min=3"`
}

func TestFromBindErrorCollectsFields(t *testing.T) {
	err := validator.New().Struct(signup{Email: "nope", Username: "ab"})
	require.Error(t, err)

	apiErr := FromBindError(err)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Len(t, apiErr.Errors, 2)
	assert.Equal(t, "email", apiErr.Errors[0].Field)
	assert.Equal(t, "email must be a valid email", apiErr.Errors[0].Message)
	assert.Equal(t, "username", apiErr.Errors[1].Field)
}

func TestFromBindErrorPlainError(t *testing.T) {
	apiErr := FromBindError(errors.New("unexpected EOF"))
	assert.Equal(t, "Invalid request body", apiErr.Message)
	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "unexpected EOF", apiErr.Errors[0].Message)
}
