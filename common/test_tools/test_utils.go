package testtools

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// GenerateCtxWithJSONAndParams creates a gin test context with the given
// JSON body and route params, for exercising POST handlers directly.
func GenerateCtxWithJSONAndParams(t *testing.T, data map[string]interface{}, params []gin.Param) *gin.Context {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Params = params
	ctx.Request = httptest.NewRequest("POST", "http://localhost:8080", nil)

	jsonbytes, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	ctx.Request.Body = io.NopCloser(bytes.NewReader(jsonbytes))

	return ctx
}

// GenerateCtxWithQueryAndParams creates a gin test context for a GET request
// with the given raw query string and route params.
func GenerateCtxWithQueryAndParams(t *testing.T, rawQuery string, params []gin.Param) *gin.Context {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Params = params

	url := "http://localhost:8080/"
	if rawQuery != "" {
		url += "?" + rawQuery
	}

	ctx.Request = httptest.NewRequest("GET", url, nil)

	return ctx
}
