package server

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"httpmsg/internal/middleware"
)

// startUpstream runs a one-shot origin that captures the request it
// receives and answers with a small canned response.
func startUpstream(t *testing.T) (addr string, received <-chan string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	reqCh := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var sb strings.Builder
		buf := make([]byte, 4096)
		for !strings.Contains(sb.String(), "\r\n\r\n") {
			n, err := conn.Read(buf)
			if n > 0 {
				sb.Write(buf[:n])
			}
			if err != nil {
				break
			}
		}
		reqCh <- sb.String()

		_, _ = conn.Write([]byte("HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\nok"))
	}()

	return ln.Addr().String(), reqCh
}

func TestProxyRoundTrip(t *testing.T) {
	upstreamAddr, received := startUpstream(t)

	prx := NewProxy(testConfig{upstream: upstreamAddr})
	prx.UseResponseMiddleware(middleware.NewServerTag("proxy-test"))

	go func() {
		_ = prx.Start()
	}()
	t.Cleanup(func() { _ = prx.Close() })

	require.Eventually(t, func() bool {
		return prx.Addr() != nil
	}, 2*time.Second, 10*time.Millisecond)

	_, port, err := net.SplitHostPort(prx.Addr().String())
	require.NoError(t, err)

	conn, err := net.Dial("tcp", net.JoinHostPort("127.0.0.1", port))
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("GET /hello HTTP/1.1\r\nHost: test\r\n\r\n"))
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var sb strings.Builder
	buf := make([]byte, 4096)
	for !strings.HasSuffix(sb.String(), "ok") {
		n, err := conn.Read(buf)
		if n > 0 {
			sb.Write(buf[:n])
		}
		if err != nil {
			break
		}
	}

	resp := sb.String()
	assert.True(t, strings.HasPrefix(resp, "HTTP/1.1 200 OK\r\n"))
	assert.Contains(t, resp, "Server: proxy-test\r\n")
	assert.Contains(t, resp, "Content-Length: 2\r\n")
	assert.True(t, strings.HasSuffix(resp, "\r\n\r\nok"))

	select {
	case req := <-received:
		assert.Contains(t, req, "GET /hello HTTP/1.1\r\n")
		assert.Contains(t, req, "X-Forwarded-For: 127.0.0.1\r\n")
	case <-time.After(2 * time.Second):
		t.Fatal("upstream never saw the request")
	}
}

func TestProxyUpstreamUnreachable(t *testing.T) {
	prx := NewProxy(testConfig{upstream: "127.0.0.1:1"})

	go func() {
		_ = prx.Start()
	}()
	t.Cleanup(func() { _ = prx.Close() })

	require.Eventually(t, func() bool {
		return prx.Addr() != nil
	}, 2*time.Second, 10*time.Millisecond)

	_, port, err := net.SplitHostPort(prx.Addr().String())
	require.NoError(t, err)

	conn, err := net.Dial("tcp", net.JoinHostPort("127.0.0.1", port))
	require.NoError(t, err)
	defer conn.Close()

	// The proxy drops the client when it cannot reach the upstream.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, readErr := conn.Read(make([]byte, 1))
	assert.Equal(t, 0, n)
	assert.Error(t, readErr)
}
