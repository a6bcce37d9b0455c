package id

import (
	"strings"
	"testing"
	"time"
)

func TestTypedIDsCarryPrefixes(t *testing.T) {
	rem := NewReminderID()
	if !strings.HasPrefix(rem.String(), ReminderPrefix+"_") {
		t.Errorf("reminder ID %q missing prefix", rem)
	}
	req := NewRequestID()
	if !strings.HasPrefix(req.String(), RequestPrefix+"_") {
		t.Errorf("request ID %q missing prefix", req)
	}
}

func TestGenerateUnique(t *testing.T) {
	gen := NewGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.GenerateString()
		if seen[id] {
			t.Fatalf("duplicate ULID %q", id)
		}
		seen[id] = true
	}
}

func TestStrip(t *testing.T) {
	bare := Default().GenerateString()
	if got := Strip("rem_" + bare); got != bare {
		t.Errorf("Strip = %q, want %q", got, bare)
	}
	if got := Strip(bare); got != bare {
		t.Errorf("Strip without prefix = %q, want %q", got, bare)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(NewReminderID().String()) {
		t.Error("generated reminder ID reported invalid")
	}
	if IsValid("rem_not-a-ulid") {
		t.Error("garbage reported valid")
	}
}

func TestTimestampRecent(t *testing.T) {
	before := time.Now().Add(-time.Second)
	ts, err := Timestamp(NewReminderID().String())
	if err != nil {
		t.Fatalf("Timestamp: %v", err)
	}
	if ts.Before(before) || ts.After(time.Now().Add(time.Second)) {
		t.Errorf("timestamp %v not near now", ts)
	}
}
