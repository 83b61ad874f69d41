package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueValidateRoundtrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	cases := []struct{ sub, role string }{
		{"alice", "ADMIN"},
		{"bob", "MANAGER"},
		{"EMP001", "EMPLOYEE"},
	}
	for _, tc := range cases {
		token, err := tm.Issue(tc.sub, tc.role)
		if err != nil {
			t.Fatalf("issue(%s, %s): %v", tc.sub, tc.role, err)
		}
		claims, err := tm.Validate(token)
		if err != nil {
			t.Fatalf("validate(%s, %s): %v", tc.sub, tc.role, err)
		}
		if claims.Sub != tc.sub || claims.Role != tc.role {
			t.Errorf("got (%s, %s), want (%s, %s)", claims.Sub, claims.Role, tc.sub, tc.role)
		}
	}
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue("alice", "ADMIN")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.Validate(token); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("got %v, want ErrInvalidSignature", err)
	}
}

func TestValidateExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Millisecond)

	token, err := tm.Issue("alice", "ADMIN")
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := tm.Validate(token); !errors.Is(err, ErrExpired) {
		t.Errorf("got %v, want ErrExpired", err)
	}
}

func TestValidateBearer(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	token, err := tm.Issue("alice", "ADMIN")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		header string
		want   error
	}{
		{"missing", "", ErrMissingToken},
		{"no bearer prefix", token, ErrMalformedToken},
		{"garbage token", "Bearer not.a.jwt", ErrMalformedToken},
		{"valid", "Bearer " + token, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tm.ValidateBearer(tc.header)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}
