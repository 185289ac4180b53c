package auth

import (
	"errors"
	"strings"
	"testing"
)

// cheap parameters keep the tests fast.
var testParams = Params{Memory: 1024, Time: 1, Threads: 1, KeyLen: 16, SaltLen: 8}

func TestHashPassword_Format(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("MySecurePassword123", DefaultParams)
	if err != nil {
		t.Fatalf("HashPassword() failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$") {
		t.Errorf("unexpected prefix: %s", hash)
	}

	hash2, err := HashPassword("MySecurePassword123", DefaultParams)
	if err != nil {
		t.Fatalf("HashPassword() second call failed: %v", err)
	}
	if hash == hash2 {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret", testParams)
	if err != nil {
		t.Fatalf("HashPassword() failed: %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
		wantErr  bool
	}{
		{name: "correct password", password: "secret", hash: hash, want: true},
		{name: "wrong password", password: "Secret", hash: hash, want: false},
		{name: "garbage", password: "secret", hash: "invalid", wantErr: true},
		{name: "wrong algorithm", password: "secret", hash: "$bcrypt$v=19$m=1024,t=1,p=1$c2FsdA$a2V5", wantErr: true},
		{name: "wrong version", password: "secret", hash: "$argon2id$v=16$m=1024,t=1,p=1$c2FsdA$a2V5", wantErr: true},
		{name: "bad params", password: "secret", hash: "$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5", wantErr: true},
		{name: "zero threads", password: "secret", hash: "$argon2id$v=19$m=1024,t=1,p=0$c2FsdA$a2V5", wantErr: true},
		{name: "bad salt", password: "secret", hash: "$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := VerifyPassword(tt.password, tt.hash)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHash) {
					t.Fatalf("expected ErrInvalidHash, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("VerifyPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseHash_RecoversParams(t *testing.T) {
	t.Parallel()

	encoded, err := HashPassword("pw", testParams)
	if err != nil {
		t.Fatalf("HashPassword() failed: %v", err)
	}
	h, err := ParseHash(encoded)
	if err != nil {
		t.Fatalf("ParseHash() failed: %v", err)
	}
	if h.Params != testParams {
		t.Errorf("params = %+v, want %+v", h.Params, testParams)
	}
}

func TestCredentials_Verify(t *testing.T) {
	t.Parallel()

	encoded, err := HashPassword("pw", testParams)
	if err != nil {
		t.Fatalf("HashPassword() failed: %v", err)
	}
	creds, err := NewCredentials("gardener", encoded)
	if err != nil {
		t.Fatalf("NewCredentials() failed: %v", err)
	}

	if !creds.Verify("gardener", "pw") {
		t.Error("expected valid credentials to verify")
	}
	if creds.Verify("someone", "pw") {
		t.Error("wrong user must not verify")
	}
	if creds.Verify("gardener", "nope") {
		t.Error("wrong password must not verify")
	}
}

func TestNewCredentials_RejectsInvalidHash(t *testing.T) {
	t.Parallel()

	if _, err := NewCredentials("gardener", "plain-text"); !errors.Is(err, ErrInvalidHash) {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}
}
