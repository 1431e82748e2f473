// Package test contains helpers shared by the test suites of all packages.
package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/allotment/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// DB connects to a fresh database that is closed when the test ends.
func DB(t *testing.T) *gorm.DB {
	db, err := models.Connect(TmpFile(t), zerolog.Nop())
	require.Nil(t, err, "Database connection failed")

	t.Cleanup(func() {
		CloseDB(t, db)
	})

	return db
}

// CloseDB closes the database connection. This enables testing the handling
// of database errors.
func CloseDB(t *testing.T, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		assert.FailNowf(t, "Failed to get database resource", "%v", err.Error())
	}
	sqlDB.Close()
}

// Request is a helper method to simplify making a HTTP request for tests.
func Request(t *testing.T, r *gin.Engine, method, url string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	switch b := body.(type) {
	case nil:
		byteBuffer = bytes.NewBuffer(nil)
	case string:
		byteBuffer = bytes.NewBufferString(b)
	default:
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.FailNow(t, "Request body could not be marshalled", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	}

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, byteBuffer)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

func AssertHTTPStatus(t *testing.T, expected int, r *httptest.ResponseRecorder) {
	assert.Equal(t, expected, r.Code, "HTTP status is wrong. Response body: %s", r.Body.String())
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target interface{}) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v'", r.Body, reflect.TypeOf(target), err)
	}
}
