package utils

import (
	"strings"
	"testing"
)

func TestValidateIdentity(t *testing.T) {
	valid := []string{"com.whatsapp", "com.a.chat", "firefox", "org.gnome.Calculator", "app_2-beta"}
	for _, id := range valid {
		if err := ValidateIdentity(id); err != nil {
			t.Errorf("ValidateIdentity(%q) = %v, want nil", id, err)
		}
	}

	invalid := []string{"", "com..double", ".leading", "trailing.", "has space", "path/slash", strings.Repeat("a", MaxIdentityLength+1)}
	for _, id := range invalid {
		if err := ValidateIdentity(id); err == nil {
			t.Errorf("ValidateIdentity(%q) = nil, want error", id)
		}
	}
}

func TestValidateQuery(t *testing.T) {
	if err := ValidateQuery(""); err != nil {
		t.Errorf("empty query should be valid: %v", err)
	}
	if err := ValidateQuery("chat"); err != nil {
		t.Errorf("ValidateQuery(chat) = %v, want nil", err)
	}
	if err := ValidateQuery(strings.Repeat("q", MaxQueryLength+1)); err == nil {
		t.Error("expected error for oversized query")
	}
}

func TestValidateLabel(t *testing.T) {
	if err := ValidateLabel("Stand up"); err != nil {
		t.Errorf("ValidateLabel = %v, want nil", err)
	}
	if err := ValidateLabel(""); err == nil {
		t.Error("expected error for empty label")
	}
	if err := ValidateLabel("bad\x00label"); err == nil {
		t.Error("expected error for null byte")
	}
}
