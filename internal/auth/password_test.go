package auth

import (
	"errors"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword returned empty hash")
	}
}

func TestCheckPassword_Correct(t *testing.T) {
	hash, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	valid, err := CheckPassword("changeme", hash)
	if err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	if !valid {
		t.Fatal("Correct password was rejected")
	}
}

func TestCheckPassword_Wrong(t *testing.T) {
	hash, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	valid, err := CheckPassword("wrongpassword", hash)
	if err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	if valid {
		t.Fatal("Wrong password was accepted")
	}
}

func TestCheckPassword_InvalidFormat(t *testing.T) {
	if _, err := CheckPassword("changeme", "not-a-hash"); err == nil {
		t.Fatal("expected error for malformed hash")
	}
}

func TestNeedsRehash(t *testing.T) {
	hash, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if NeedsRehash(hash) {
		t.Error("fresh hash flagged for rehash")
	}

	// Legacy parameters and broken encodings both trigger a rehash
	legacy := "$argon2id$v=19$m=65536,t=1,p=4$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g"
	if !NeedsRehash(legacy) {
		t.Error("legacy parameters not flagged for rehash")
	}
	if !NeedsRehash("not-a-hash") {
		t.Error("malformed hash not flagged for rehash")
	}
}

func TestValidateNewPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		wantErr  error
	}{
		{"valid", "secret1", "secret1", nil},
		{"exactly minimum length", "abcdef", "abcdef", nil},
		{"too short", "abc", "abc", ErrPasswordTooShort},
		{"empty", "", "", ErrPasswordTooShort},
		{"mismatch", "secret1", "secret2", ErrPasswordMismatch},
		{"short wins over mismatch", "abc", "xyz", ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNewPassword(tt.password, tt.confirm)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateNewPassword(%q, %q) = %v, want %v",
					tt.password, tt.confirm, err, tt.wantErr)
			}
		})
	}
}
