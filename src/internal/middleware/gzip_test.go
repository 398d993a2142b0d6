package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
)

func newGzipRouter(t *testing.T, captured *string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		*captured = string(body)
		c.Status(http.StatusOK)
	})
	return router
}

func TestDecompressGzipBody(t *testing.T) {
	var captured string
	router := newGzipRouter(t, &captured)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(`{"session_id":"abc"}`)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/echo", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if captured != `{"session_id":"abc"}` {
		t.Errorf("handler saw %q", captured)
	}
	if req.Header.Get("Content-Encoding") != "" {
		t.Error("Content-Encoding header must be stripped after inflation")
	}
}

func TestPassThroughWithoutEncoding(t *testing.T) {
	var captured string
	router := newGzipRouter(t, &captured)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("plain"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if captured != "plain" {
		t.Errorf("handler saw %q", captured)
	}
}

func TestRejectCorruptGzip(t *testing.T) {
	var captured string
	router := newGzipRouter(t, &captured)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if captured != "" {
		t.Error("handler must not run on a corrupt body")
	}
}
