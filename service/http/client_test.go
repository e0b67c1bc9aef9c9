package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"responder/errs"
)

func TestClient_Probe(t *testing.T) {
	s := newTestServer(t, io.Discard, clockwork.NewRealClock())

	c := NewClient(s.Addr().String(), time.Second)
	for _, path := range []string{"/", "", "healthz", "/deep/path?x=1"} {
		msg, err := c.Probe(context.Background(), path)
		require.NoError(t, err, path)
		assert.Equal(t, Message, msg)
	}
}

func TestClient_ProbeRejects(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name: "status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "bad gateway", http.StatusBadGateway)
			},
			want: errs.ErrUnexpectedStatus,
		},
		{
			name: "content type",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				_, _ = w.Write([]byte("<h1>Welcome to nginx!</h1>"))
			},
			want: errs.ErrUnexpectedContentType,
		},
		{
			name: "payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				_, _ = w.Write([]byte(`{"status":"ok"}`))
			},
			want: errs.ErrNotResponder,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(tc.handler)
			defer ts.Close()

			c := NewClient(strings.TrimPrefix(ts.URL, "http://"), time.Second)
			_, err := c.Probe(context.Background(), "/")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), err.Error())
		})
	}
}

func TestClient_ProbeUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	addr := strings.TrimPrefix(ts.URL, "http://")
	ts.Close()

	_, err := NewClient(addr, time.Second).Probe(context.Background(), "/")
	assert.Error(t, err)
}

func TestClient_SendsAcceptJSON(t *testing.T) {
	accept := make(chan string, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept <- r.Header.Get("Accept")
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(Body())
	}))
	defer ts.Close()

	msg, err := NewClient(strings.TrimPrefix(ts.URL, "http://"), time.Second).Probe(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, Message, msg)
	assert.Equal(t, "application/json", <-accept)
}
