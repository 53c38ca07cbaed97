package hash

import "testing"

func TestBcrypt(t *testing.T) {
	h := NewBcrypt(4, "")

	hashed, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(hashed) == "secret123" {
		t.Fatal("hash must differ from plaintext")
	}

	if !h.Verify(string(hashed), "secret123") {
		t.Fatal("correct password should verify")
	}
	if h.Verify(string(hashed), "wrong-pass") {
		t.Fatal("wrong password should not verify")
	}
	if h.Verify("", "secret123") {
		t.Fatal("empty hash should not verify")
	}
}

func TestBcryptPepper(t *testing.T) {
	peppered := NewBcrypt(4, "pepper")

	hashed, err := peppered.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !peppered.Verify(string(hashed), "secret123") {
		t.Fatal("peppered hash should verify with the same pepper")
	}
	if NewBcrypt(4, "other").Verify(string(hashed), "secret123") {
		t.Fatal("hash must not verify under a different pepper")
	}
}
