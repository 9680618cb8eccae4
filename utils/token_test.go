package utils

import (
	"strings"
	"testing"
)

func TestGenerateInviteCodeFormat(t *testing.T) {
	code := GenerateInviteCode(6)
	if len(code) != 6 {
		t.Fatalf("expected 6 characters got %d (%q)", len(code), code)
	}
	for _, r := range code {
		if !strings.ContainsRune(inviteCharset, r) {
			t.Errorf("character %q not in invite charset", r)
		}
	}
}

func TestGenerateInviteCodeVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[GenerateInviteCode(6)] = true
	}
	if len(seen) < 2 {
		t.Error("expected at least some variation across generated codes")
	}
}
