package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fakePNG = []byte("\x89PNG\r\n\x1a\nnot really")

func TestChartIsServed(t *testing.T) {
	s := New("Candidate de novo variants", fakePNG)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chart.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.Equal(fakePNG, rec.Body.Bytes()))
}

func TestIndexPage(t *testing.T) {
	s := New("Candidate de novo variants", fakePNG)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<img src="/chart.png"`)
	assert.Contains(t, body, `action="/close"`)
	assert.Contains(t, body, "<title>Candidate de novo variants</title>")
}

func TestCloseRequiresPost(t *testing.T) {
	s := New("chart", fakePNG)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/close", nil))
	assert.NotEqual(t, http.StatusOK, rec.Code)

	select {
	case <-s.Done():
		t.Fatal("GET /close ended the session")
	default:
	}
}

func TestCloseEndsServe(t *testing.T) {
	s := New("chart", fakePNG)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errs := make(chan error, 1)
	go func() { errs <- s.serve(context.Background(), ln) }()

	base := "http://" + ln.Addr().String()

	resp, err := http.Get(base + "/chart.png")
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, fakePNG, b)

	resp, err = http.Post(base+"/close", "application/x-www-form-urlencoded", strings.NewReader(""))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case err := <-errs:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after the viewer was closed")
	}
}

func TestCancelEndsServe(t *testing.T) {
	s := New("chart", fakePNG)

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() { errs <- s.Serve(ctx, "127.0.0.1:0") }()

	cancel()

	select {
	case err := <-errs:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestServeBadAddress(t *testing.T) {
	s := New("chart", fakePNG)
	err := s.Serve(context.Background(), "not an address")
	assert.Error(t, err)
}
