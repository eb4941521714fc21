package eventor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

// recorded is what the fake Eventor server saw.
type recorded struct {
	path   string
	query  url.Values
	raw    string
	apiKey string
}

func newTestClient(t *testing.T, body string) (*Client, *recorded) {
	t.Helper()

	rec := &recorded{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.raw = r.URL.RawQuery
		rec.apiKey = r.Header.Get("ApiKey")
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(testAPIKey, zerolog.Nop(), WithBaseURL(server.URL+"/api"))
	require.NoError(t, err)
	return client, rec
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		opts    []Option
		wantErr error
		baseURL string
	}{
		{
			name:    "defaults",
			apiKey:  testAPIKey,
			baseURL: DefaultBaseURL,
		},
		{
			name:    "custom base URL gets trailing slash",
			apiKey:  testAPIKey,
			opts:    []Option{WithBaseURL("http://localhost:8080/api")},
			baseURL: "http://localhost:8080/api/",
		},
		{
			name:    "missing API key",
			apiKey:  "",
			wantErr: ErrMissingAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.apiKey, zerolog.Nop(), tt.opts...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.baseURL, client.BaseURL())
			assert.Equal(t, tt.apiKey, client.apiKey)
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient(testAPIKey, logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("default timeout", func(t *testing.T) {
		client, err := NewClient(testAPIKey, logger)
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient(testAPIKey, logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Same(t, customClient, client.httpClient)
	})

	t.Run("with user agent", func(t *testing.T) {
		client, err := NewClient(testAPIKey, logger, WithUserAgent("club-site/1.0"))
		require.NoError(t, err)
		assert.Equal(t, "club-site/1.0", client.userAgent)
	})
}

func TestEvent_EndToEnd(t *testing.T) {
	client, rec := newTestClient(t, `<?xml version="1.0" encoding="utf-8"?><Event><EventId>12345</EventId></Event>`)

	resp, err := client.Event(context.Background(), 12345)
	require.NoError(t, err)

	assert.Equal(t, "/api/event/12345", rec.path)
	assert.Empty(t, rec.raw)
	assert.Equal(t, testAPIKey, rec.apiKey)

	id, err := resp.Text("Event.EventId")
	require.NoError(t, err)
	assert.Equal(t, "12345", id)
}

func TestExecute_SendsHeaders(t *testing.T) {
	var header http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		_, _ = w.Write([]byte(`<Organisation><OrganisationId>321</OrganisationId></Organisation>`))
	}))
	defer server.Close()

	client, err := NewClient(testAPIKey, zerolog.Nop(), WithBaseURL(server.URL), WithUserAgent("eventorkit-test"))
	require.NoError(t, err)

	_, err = client.OrganisationFromAPIKey(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testAPIKey, header.Get("ApiKey"))
	assert.Equal(t, "application/xml", header.Get("Accept"))
	assert.Equal(t, "eventorkit-test", header.Get("User-Agent"))
}

func TestExecute_ParsesNonOKBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`<ErrorMessage>Invalid API key</ErrorMessage>`))
	}))
	defer server.Close()

	client, err := NewClient(testAPIKey, zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)

	resp, err := client.Event(context.Background(), 1)
	require.NoError(t, err)

	msg, err := resp.Text("ErrorMessage")
	require.NoError(t, err)
	assert.Equal(t, "Invalid API key", msg)
}

func TestExecute_ParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<Event><EventId>1</Event>`))
	}))
	defer server.Close()

	client, err := NewClient(testAPIKey, zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Event(context.Background(), 1)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "event/1", parseErr.Path)
	assert.Equal(t, http.StatusBadGateway, parseErr.StatusCode)
}

func TestExecute_RequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client, err := NewClient(testAPIKey, zerolog.Nop(), WithBaseURL(baseURL))
	require.NoError(t, err)

	_, err = client.Event(context.Background(), 1)
	require.Error(t, err)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "event/1", reqErr.Path)
}

func TestExecute_ContextCancelled(t *testing.T) {
	client, _ := newTestClient(t, `<Event/>`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Event(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
