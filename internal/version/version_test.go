package version

import (
	"strings"
	"testing"
)

func TestStringContainsAppAndVersion(t *testing.T) {
	s := String()
	if !strings.Contains(s, "sitebuilder") {
		t.Fatalf("version string missing app name: %q", s)
	}
	if !strings.Contains(s, Version) {
		t.Fatalf("version string missing version: %q", s)
	}
}
