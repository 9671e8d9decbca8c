package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer_ServeAndShutdown(t *testing.T) {
	env := newTestEnv(t)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- env.server.Serve(ctx, lis) }()

	resp, err := http.Get("http://" + lis.Addr().String() + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestHTTPServer_ShutdownWaitsForInFlightRequest(t *testing.T) {
	env := newTestEnv(t)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- env.server.Serve(ctx, lis) }()

	conn, err := net.Dial("tcp", lis.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	body := `{"texto":"late"}`
	_, err = fmt.Fprintf(conn, "POST /publicaciones HTTP/1.1\r\nHost: test\r\nContent-Type: application/json\r\nContent-Length: %d\r\n\r\n%s", len(body), body[:5])
	require.NoError(t, err)

	// let the server pick up the headers so the connection is active
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
		t.Fatal("Serve returned while a request was still in flight")
	case <-time.After(200 * time.Millisecond):
	}

	_, err = io.WriteString(conn, body[5:])
	require.NoError(t, err)

	resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
	require.NoError(t, err)
	got, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"id":1,"texto":"late","imagen":null,"comentarios":[]}`, string(got))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after the request drained")
	}
}

func TestHTTPServer_RunFailsOnBadAddress(t *testing.T) {
	env := newTestEnv(t)
	env.server.address = "bad-address"

	err := env.server.Run(context.Background())
	assert.Error(t, err)
}
