package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelation_TagsEveryRequest(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get(DefaultCorrelationHeader))
	}))
	defer server.Close()

	client := &http.Client{Transport: Chain(nil, Correlation(""))}

	for i := 0; i < 3; i++ {
		resp, err := client.Get(server.URL)
		require.NoError(t, err)
		resp.Body.Close()
	}

	require.Len(t, seen, 3)
	for _, id := range seen {
		_, err := uuid.Parse(id)
		assert.NoError(t, err, "correlation id %q is not a uuid", id)
	}
	assert.NotEqual(t, seen[0], seen[1])
	assert.NotEqual(t, seen[1], seen[2])
}

func TestCorrelation_ReplacesCallerSetID(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("x-correlation-id")
	}))
	defer server.Close()

	client := &http.Client{Transport: Chain(nil, Correlation("x-correlation-id"))}

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.Header.Set("x-correlation-id", "caller-supplied")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.NotEqual(t, "caller-supplied", got)
	_, err = uuid.Parse(got)
	assert.NoError(t, err, "correlation id %q is not a uuid", got)
}

func TestCorrelation_DoesNotMutateOriginalRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	client := &http.Client{Transport: Chain(nil, Correlation(""))}

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, req.Header.Get(DefaultCorrelationHeader))
}
