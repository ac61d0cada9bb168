package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name    string `json:"name" binding:"required,notblank"`
	Message string `json:"message" binding:"required,notblank"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	Setup()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var p payload
	return Bind(c, &p)
}

func TestBind_Valid(t *testing.T) {
	assert.NoError(t, bind(t, `{"name":"Jane","message":"Hi"}`))
}

func TestBind_MissingFieldsUseJSONNames(t *testing.T) {
	err := bind(t, `{"name":"Jane"}`)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformed)

	fields := TranslateErrors(err)
	assert.Len(t, fields, 1)
	assert.Contains(t, fields, "message")
	assert.Equal(t, "message is a required field", fields["message"])
}

func TestBind_BlankRejected(t *testing.T) {
	fields := TranslateErrors(bind(t, `{"name":"   ","message":"Hi"}`))
	assert.Equal(t, "name must not be blank", fields["name"])
}

func TestBind_MalformedJSON(t *testing.T) {
	for _, body := range []string{`{"name":`, `[]`, `{"name":42,"message":"Hi"}`, ``} {
		err := bind(t, body)
		require.ErrorIs(t, err, ErrMalformed, body)
		assert.Equal(t, map[string]string{"detail": "request body must be a JSON object"}, TranslateErrors(err))
	}
}
