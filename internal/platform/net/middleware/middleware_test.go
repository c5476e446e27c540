package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	perr "titlesmith/internal/platform/errors"
	pnet "titlesmith/internal/platform/net"
	"titlesmith/internal/platform/testkit"
)

func chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestRecoverJSON(t *testing.T) {
	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("lexicon table missing") }),
		RequestID(), RecoverJSON)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "rid-7")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rec.Code)
	}
	var env pnet.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Code != perr.ErrorCodePanic || env.Error != "panic recovered" || env.RequestID != "rid-7" {
		t.Fatalf("unexpected envelope %+v", env)
	}
	if rec.Header().Get("X-Request-ID") != "rid-7" {
		t.Fatalf("request id header missing")
	}
}

func TestRecoverJSON_PassThrough(t *testing.T) {
	h := RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestAccessLevel(t *testing.T) {
	cases := []struct {
		status  int
		elapsed time.Duration
		slow    time.Duration
		want    zerolog.Level
	}{
		{http.StatusOK, time.Millisecond, 0, zerolog.InfoLevel},
		{http.StatusOK, time.Second, 500 * time.Millisecond, zerolog.WarnLevel},
		{http.StatusBadRequest, time.Millisecond, 500 * time.Millisecond, zerolog.InfoLevel},
		{http.StatusBadGateway, time.Millisecond, 0, zerolog.ErrorLevel},
		{http.StatusServiceUnavailable, time.Second, time.Millisecond, zerolog.ErrorLevel},
	}
	for _, tc := range cases {
		if got := accessLevel(tc.status, tc.elapsed, tc.slow); got != tc.want {
			t.Fatalf("accessLevel(%d, %v, %v) = %v want %v", tc.status, tc.elapsed, tc.slow, got, tc.want)
		}
	}
}

func TestAccessLogZerolog(t *testing.T) {
	for _, slow := range []time.Duration{0, time.Nanosecond} {
		h := chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(time.Millisecond)
			w.WriteHeader(http.StatusTeapot)
		}), RequestID(), AccessLogZerolog(AccessLogOptions{Slow: slow}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/listings/title", nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("slow=%v: status %d", slow, rec.Code)
		}
	}
}

func TestCORS(t *testing.T) {
	h := CORS(CORSOptions{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/listings/title", nil)
	req.Header.Set("Origin", "https://seller.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow origin %q", got)
	}
	testkit.MustContain(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)

	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Header().Get("Access-Control-Allow-Methods") != "" {
		t.Fatalf("DELETE should not be allowed")
	}
}

func TestWrappers(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(bytes.Repeat([]byte("a"), 2048))
	})
	h := chain(ok, StripSlashes(), Heartbeat("/ping"), NoCache(), Compress(5), Timeout(time.Second), RealIP())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "." {
		t.Fatalf("heartbeat got %d %q", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/x/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip, headers %v", rec.Header())
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("no-cache headers missing")
	}
}
