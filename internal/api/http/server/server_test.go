package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSecurityLayer struct {
	listener net.Listener
	err      error
}

func (s *stubSecurityLayer) Listen(protocol, addr string) (net.Listener, error) {
	return s.listener, s.err
}

func TestHTTPServer_Address(t *testing.T) {
	s := NewHTTPServer(http.NewServeMux(), ":8080", Options{})
	assert.Equal(t, ":8080", s.Address())
}

func TestHTTPServer_StartFailsWhenListenFails(t *testing.T) {
	s := NewHTTPServer(http.NewServeMux(), ":8080", Options{})

	err := s.Start(&stubSecurityLayer{err: errors.New("address in use")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestHTTPServer_ServesAndStops(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := NewHTTPServer(mux, ln.Addr().String(), Options{
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.Start(&stubSecurityLayer{listener: ln})
	}()

	resp, err := http.Get(fmt.Sprintf("http://%s/ping", ln.Addr().String()))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(stopCtx))

	assert.NoError(t, <-serveErr)
}
