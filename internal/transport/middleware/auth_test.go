package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/plantwater-backend/pkg/ctxutil"
)

//go:generate moq -out credentials_verifier_mock_test.go -pkg middleware . credentialsVerifier

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func gardenerOnly() *credentialsVerifierMock {
	return &credentialsVerifierMock{
		VerifyFunc: func(user, password string) bool {
			return user == "gardener" && password == "pw"
		},
	}
}

func TestBasicAuth_ValidCredentials(t *testing.T) {
	t.Parallel()

	verifier := gardenerOnly()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		editor, ok := ctxutil.EditorFromCtx(r.Context())
		if !ok || editor != "gardener" {
			t.Errorf("expected editor gardener in context, got %q (ok=%v)", editor, ok)
		}
		w.WriteHeader(http.StatusOK)
	})

	wrapped := BasicAuth(verifier, "plants", discardLogger())(handler)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.SetBasicAuth("gardener", "pw")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if len(verifier.VerifyCalls()) != 1 {
		t.Errorf("expected 1 Verify call, got %d", len(verifier.VerifyCalls()))
	}
}

func TestBasicAuth_WrongPassword(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for bad credentials")
	})

	wrapped := BasicAuth(gardenerOnly(), "plants", discardLogger())(handler)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.SetBasicAuth("gardener", "wrong")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if got := rec.Header().Get("WWW-Authenticate"); got != `Basic realm="plants", charset="UTF-8"` {
		t.Errorf("unexpected WWW-Authenticate header: %q", got)
	}
}

func TestBasicAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	verifier := gardenerOnly()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called without credentials")
	})

	wrapped := BasicAuth(verifier, "plants", discardLogger())(handler)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if len(verifier.VerifyCalls()) != 0 {
		t.Error("verifier should not be consulted without credentials")
	}
}

func TestBasicAuth_BearerIsNotBasic(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})

	wrapped := BasicAuth(gardenerOnly(), "plants", discardLogger())(handler)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer something")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestBasicAuth_NilVerifierIsOpen(t *testing.T) {
	t.Parallel()

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := ctxutil.EditorFromCtx(r.Context()); ok {
			t.Error("no editor expected when auth is disabled")
		}
		w.WriteHeader(http.StatusNoContent)
	})

	wrapped := BasicAuth(nil, "plants", discardLogger())(handler)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if !called {
		t.Error("handler should be called when auth is disabled")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
}
