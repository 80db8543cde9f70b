package statsd

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listenUDP binds an ephemeral UDP socket and returns its address plus a
// channel delivering received lines.
func listenUDP(t *testing.T) (string, <-chan string) {
	t.Helper()

	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	lines := make(chan string, 16)
	go func() {
		buf := make([]byte, 1024)
		for {
			n, _, readErr := conn.ReadFrom(buf)
			if readErr != nil {
				return
			}
			lines <- string(buf[:n])
		}
	}()
	return conn.LocalAddr().String(), lines
}

func receive(t *testing.T, lines <-chan string) string {
	t.Helper()
	select {
	case line := <-lines:
		return line
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for metric line")
		return ""
	}
}

func TestClient_Count(t *testing.T) {
	addr, lines := listenUDP(t)

	client, err := NewClient(Config{Enabled: true, Address: addr, Prefix: "webcore"})
	require.NoError(t, err)
	defer client.Close()

	client.Count("requests", 1, map[string]string{"method": "POST", "host": "api"})

	line := receive(t, lines)
	assert.Equal(t, "webcore.requests:1|c|#host:api,method:POST", line)
}

func TestClient_Timing(t *testing.T) {
	addr, lines := listenUDP(t)

	client, err := NewClient(Config{Enabled: true, Address: addr})
	require.NoError(t, err)
	defer client.Close()

	client.Timing("upload", 1500*time.Millisecond, nil)

	assert.Equal(t, "upload:1500|ms", receive(t, lines))
}

func TestClient_MetricNameSanitised(t *testing.T) {
	addr, lines := listenUDP(t)

	client, err := NewClient(Config{Enabled: true, Address: addr, Prefix: ".webcore."})
	require.NoError(t, err)
	defer client.Close()

	client.Count("api/v1 payments", 2, nil)

	assert.Equal(t, "webcore.api_v1_payments:2|c", receive(t, lines))
}

func TestClient_Disabled(t *testing.T) {
	client, err := NewClient(Config{Enabled: false})
	require.NoError(t, err)

	// Must not panic or block.
	client.Count("requests", 1, nil)
	client.Timing("requests", time.Second, nil)
	assert.NoError(t, client.Close())
}

func TestClient_NilSafe(t *testing.T) {
	var client *Client
	client.Count("requests", 1, nil)
	client.Timing("requests", time.Second, nil)
	assert.NoError(t, client.Close())
}

func TestClient_EmptyNameDropped(t *testing.T) {
	addr, lines := listenUDP(t)

	client, err := NewClient(Config{Enabled: true, Address: addr})
	require.NoError(t, err)
	defer client.Close()

	client.Count("", 1, nil)
	client.Count("after", 1, nil)

	// Only the second metric arrives.
	assert.Equal(t, "after:1|c", receive(t, lines))
}
