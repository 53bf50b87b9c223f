package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

type tokenFunc func(ctx context.Context) (string, error)

func (f tokenFunc) AccessToken(ctx context.Context) (string, error) { return f(ctx) }

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Tokens:     tokens,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestNewRequiresBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{}); err == nil {
		t.Fatal("New() with empty base url: want error, got nil")
	}
}

func TestErrorContract(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "server message on non-2xx",
			status:  http.StatusBadRequest,
			body:    `{"success":false,"msg":"agent name is required"}`,
			wantMsg: "agent name is required",
		},
		{
			name:    "status fallback on empty message",
			status:  http.StatusInternalServerError,
			body:    `{"success":false,"msg":""}`,
			wantMsg: "http status 500",
		},
		{
			name:    "status fallback on malformed body",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			wantMsg: "http status 502",
		},
		{
			name:    "success flag false on 2xx",
			status:  http.StatusOK,
			body:    `{"success":false,"msg":"duplicate agent"}`,
			wantMsg: "duplicate agent",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			}), nil)

			_, err := client.Agents.Get(context.Background(), nil)
			if err == nil {
				t.Fatal("Get: want error, got nil")
			}
			if err.Error() != tc.wantMsg {
				t.Fatalf("Get error = %q, want %q", err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestMalformedSuccessBodyFails(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"data":`)
	}), nil)

	if _, err := client.Agents.Get(context.Background(), nil); err == nil {
		t.Fatal("Get with truncated body: want error, got nil")
	}
}

func TestTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := client.Agents.Get(context.Background(), nil); err == nil {
		t.Fatal("Get against closed server: want error, got nil")
	}
}

func TestBearerCredentialSourcedPerCall(t *testing.T) {
	t.Parallel()

	var seen []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"success":true,"data":[]}`)
	})

	token := "tok-1"
	client := newTestClient(t, handler, tokenFunc(func(ctx context.Context) (string, error) {
		return token, nil
	}))

	if _, err := client.Guardrails.Create(context.Background(), Guardrail{GuardrailName: "a"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	token = "tok-2" // rotated by a parallel login
	if _, err := client.Guardrails.Update(context.Background(), Guardrail{GuardrailID: 1}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	want := []string{"Bearer tok-1", "Bearer tok-2"}
	if len(seen) != len(want) {
		t.Fatalf("got %d requests, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("request %d Authorization = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()

	var requestID string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-ID")
		fmt.Fprint(w, `{"success":true,"data":[]}`)
	}), nil)

	if _, err := client.Agents.Get(context.Background(), nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if requestID == "" {
		t.Fatal("X-Request-ID header not set")
	}
}
