package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestGuardRedirectsUnauthenticated(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, signinOK)
	})
	ctx := context.Background()
	if err := env.manager.Rehydrate(ctx); err != nil {
		t.Fatalf("Rehydrate: %v", err)
	}

	guard := &Guard{Manager: env.manager}
	decision, err := guard.Check(ctx, "/agents")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if decision.Action != GuardRedirect || decision.Location != "/login" {
		t.Fatalf("decision = %+v, want redirect to /login", decision)
	}
	if decision.From != "/agents" {
		t.Fatalf("From = %q, want the requested location preserved", decision.From)
	}
}

func TestGuardAllowsAuthenticated(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, signinOK)
	})
	ctx := context.Background()
	if err := env.manager.Login(ctx, "anmol@gmail.com", "123456"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	guard := &Guard{Manager: env.manager, LoginPath: "/signin"}
	decision, err := guard.Check(ctx, "/agents")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if decision.Action != GuardAllow || decision.From != "/agents" {
		t.Fatalf("decision = %+v, want allow", decision)
	}
}

func TestGuardBlocksWhileLoading(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, signinOK)
	})
	ctx := context.Background()

	guard := &Guard{Manager: env.manager}
	decisions := make(chan Decision, 1)
	go func() {
		decision, err := guard.Check(ctx, "/agents")
		if err != nil {
			t.Errorf("Check: %v", err)
		}
		decisions <- decision
	}()

	// The verdict must not arrive while the session is still loading.
	select {
	case d := <-decisions:
		t.Fatalf("Check returned %+v before rehydration finished", d)
	case <-time.After(50 * time.Millisecond):
	}

	if err := env.manager.Rehydrate(ctx); err != nil {
		t.Fatalf("Rehydrate: %v", err)
	}
	select {
	case d := <-decisions:
		if d.Action != GuardRedirect {
			t.Fatalf("decision = %+v, want redirect (nothing persisted)", d)
		}
	case <-time.After(time.Second):
		t.Fatal("Check still blocked after rehydration cleared loading")
	}
}

func TestGuardCheckHonorsContext(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, signinOK)
	})

	// Never rehydrated, so the session stays in the loading state.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	guard := &Guard{Manager: env.manager}
	if _, err := guard.Check(ctx, "/agents"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Check error = %v, want context.DeadlineExceeded", err)
	}
}
