package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDEchoesCallerID(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if seen != "abc-123" {
		t.Errorf("handler saw id %q, want abc-123", seen)
	}
	if got := w.Header().Get(HeaderRequestID); got != "abc-123" {
		t.Errorf("response id = %q, want abc-123", got)
	}
}

func TestRequestIDMintsWhenMissing(t *testing.T) {
	h := RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Header().Get(HeaderRequestID) == "" {
		t.Error("no request id minted")
	}
}
