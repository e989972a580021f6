package version

import (
	"strings"
	"testing"
)

func TestBanner(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})

	tests := []struct {
		name                  string
		version, commit, date string
		want                  string
	}{
		{"plain", "1.2.3", "", "", "zinc 1.2.3"},
		{"suffix", "0.1.0-dev", "", "", "zinc 0.1.0-dev"},
		{"commit", "1.2.3", "abc123", "", "zinc 1.2.3 (abc123)"},
		{"commit and date", "1.2.3", "abc123", "2026-01-15", "zinc 1.2.3 (abc123, 2026-01-15)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, GitCommit, BuildDate = tt.version, tt.commit, tt.date
			if got := Banner(false); got != tt.want {
				t.Fatalf("Banner(false) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBannerColored(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "1.2.3"

	got := Banner(true)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected escape codes, got %q", got)
	}
	if strings.Count(got, "\x1b[0m") != 3 {
		t.Fatalf("expected three coloured parts, got %q", got)
	}
}
