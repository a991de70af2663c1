package id

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	if id1.String() == id2.String() {
		t.Error("Generated IDs should be unique")
	}
}

func TestGenerateWithEntropy(t *testing.T) {
	// All-zero entropy yields an all-zero random component
	gen := NewGeneratorWithEntropy(bytes.NewReader(make([]byte, 10)))

	id := gen.Generate()

	if got := id.Entropy(); !bytes.Equal(got, make([]byte, 10)) {
		t.Errorf("Entropy should come from the supplied reader, got: %x", got)
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	gen := NewGenerator()

	id := gen.GenerateWithPrefix(SessionPrefix)

	if !strings.HasPrefix(id, "sess_") {
		t.Errorf("ID should start with 'sess_', got: %s", id)
	}

	parts := strings.Split(id, "_")
	if len(parts) != 2 {
		t.Fatalf("Prefixed ID should have format 'prefix_ulid', got: %s", id)
	}
	if !IsValid(parts[1]) {
		t.Errorf("ULID part should be valid: %s", parts[1])
	}
}

func TestIsValid(t *testing.T) {
	invalidIDs := []string{
		"",
		"invalid",
		"1234567890",
		"zzzzzzzzzzzzzzzzzzzzzzzzzzz", // Invalid characters
	}

	for _, id := range invalidIDs {
		if IsValid(id) {
			t.Errorf("ID should be invalid: %s", id)
		}
	}
}

func TestSessionIDStarted(t *testing.T) {
	before := time.Now()
	id := NewSessionID()
	after := time.Now()

	ts, err := id.Started()
	if err != nil {
		t.Fatalf("Failed to extract timestamp: %v", err)
	}

	// ULID timestamps have millisecond precision
	if ts.UnixMilli() < before.UnixMilli() || ts.UnixMilli() > after.UnixMilli() {
		t.Errorf("Timestamp should be between %d and %d ms, got %d ms",
			before.UnixMilli(), after.UnixMilli(), ts.UnixMilli())
	}
}

func TestSessionIDStartedRejectsMalformed(t *testing.T) {
	for _, id := range []SessionID{"", "run_01HZX", "sess_notaulid"} {
		if _, err := id.Started(); err == nil {
			t.Errorf("expected error for %q", id)
		}
	}
}
