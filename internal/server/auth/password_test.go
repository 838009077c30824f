package auth

import "testing"

func TestHashSecret_RoundTrip(t *testing.T) {
	t.Parallel()

	digest, err := HashSecret("hunter2")
	if err != nil {
		t.Fatalf("HashSecret error: %v", err)
	}
	if digest == "hunter2" {
		t.Fatalf("digest must not equal plaintext")
	}
	if !CheckSecret("hunter2", digest) {
		t.Fatalf("CheckSecret must accept the original secret")
	}
	if CheckSecret("hunter3", digest) {
		t.Fatalf("CheckSecret must reject a different secret")
	}
}

func TestHashSecret_SaltedPerCall(t *testing.T) {
	t.Parallel()

	d1, err := HashSecret("same-input")
	if err != nil {
		t.Fatalf("HashSecret error: %v", err)
	}
	d2, err := HashSecret("same-input")
	if err != nil {
		t.Fatalf("HashSecret error: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("two digests of the same input must differ")
	}
}

func TestCheckSecret_MalformedDigest(t *testing.T) {
	t.Parallel()

	if CheckSecret("anything", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest must not verify")
	}
}
