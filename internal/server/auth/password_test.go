package auth

import "testing"

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("senha123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !CheckPassword("senha123", h) {
		t.Fatalf("expected hash to verify against original password")
	}
	if CheckPassword("senha124", h) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ")
	}
	if !CheckPassword("same", h1) || !CheckPassword("same", h2) {
		t.Fatalf("both hashes must verify")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("x", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
	if CheckPassword("x", "") {
		t.Fatalf("empty hash must not verify")
	}
}
