package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// MinCost keeps the tests fast; production uses DefaultCost.
func testHasher() *BcryptHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

func TestHash_ProducesBcryptHash(t *testing.T) {
	hash, err := testHasher().Hash("pw123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash = %q, want bcrypt format", hash)
	}
}

func TestHash_UniquePerCall(t *testing.T) {
	h := testHasher()
	hash1, _ := h.Hash("pw123")
	hash2, _ := h.Hash("pw123")

	if hash1 == hash2 {
		t.Error("hashes should differ due to random salt")
	}
}

func TestVerify(t *testing.T) {
	h := testHasher()
	hash, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"correct password", "pw123", true},
		{"wrong password", "pw124", false},
		{"empty password", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Verify(tt.password, hash)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Verify(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestVerify_MalformedHash_ReturnsError(t *testing.T) {
	if _, err := testHasher().Verify("pw123", "not-a-bcrypt-hash"); err == nil {
		t.Error("expected error for malformed hash")
	}
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"zero selects default", 0, DefaultCost},
		{"below minimum", 1, bcrypt.MinCost},
		{"above maximum", 99, bcrypt.MaxCost},
		{"in range", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBcryptHasher(tt.cost)
			if h.cost != tt.want {
				t.Errorf("cost = %d, want %d", h.cost, tt.want)
			}
		})
	}
}
