package version_test

import (
	"testing"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/version"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		latest   string
		expected version.Ordering
	}{
		{"Equal versions", "2.0.0", "2.0.0", version.UpToDate},
		{"Numeric not lexical", "1.9", "1.10", version.Outdated},
		{"Current newer", "1.10", "1.9", version.Newer},
		{"Trailing zero padding", "3.1", "3.1.0.0", version.UpToDate},
		{"Padding the other way", "3.1.0.0", "3.1", version.UpToDate},
		{"Padded component decides", "3.1", "3.1.0.1", version.Outdated},
		{"Missing current", "", "1.0", version.Unknown},
		{"Missing latest", "1.0", "", version.Unknown},
		{"Whitespace only is missing", "  ", "1.0", version.Unknown},
		{"Leading v and suffix text", "v1.2.3", "1.2.3 (stable)", version.UpToDate},
		{"Build number", "120.0.6099.109", "120.0.6099.130", version.Outdated},
		{"Empty segment counts as zero", "1..2", "1.0.2", version.UpToDate},
		{"Pre-release label is ignored", "1.0.0-beta", "1.0.0", version.UpToDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := version.Compare(tt.current, tt.latest); got != tt.expected {
				t.Errorf("Compare(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	got := version.Parse("v24.08 build 7")
	want := []int{24, 87}
	if len(got) != len(want) {
		t.Fatalf("Parse() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Parse()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestHighest(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
		expected string
	}{
		{"Empty list", nil, ""},
		{"Single", []string{"1.0"}, "1.0"},
		{"Numeric ordering", []string{"1.9.0", "1.10.0", "1.2.0"}, "1.10.0"},
		{"First of equals wins", []string{"2.0", "2.0.0", "1.0"}, "2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := version.Highest(tt.versions); got != tt.expected {
				t.Errorf("Highest(%v) = %q, want %q", tt.versions, got, tt.expected)
			}
		})
	}
}

func TestUpdateKind(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		latest   string
		expected string
	}{
		{"Major", "1.4.2", "2.0.0", "major"},
		{"Minor", "1.4.2", "1.5.0", "minor"},
		{"Patch", "1.4.2", "1.4.3", "patch"},
		{"Short versions coerce", "1.4", "1.5", "minor"},
		{"Leading v", "v1.0.0", "v1.0.1", "patch"},
		{"Not newer", "2.0.0", "1.0.0", ""},
		{"Same", "1.0.0", "1.0.0", ""},
		{"Four components are not semver", "1.0.0.1", "1.0.0.2", ""},
		{"Garbage", "latest", "1.0.0", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := version.UpdateKind(tt.current, tt.latest); got != tt.expected {
				t.Errorf("UpdateKind(%q, %q) = %q, want %q", tt.current, tt.latest, got, tt.expected)
			}
		})
	}
}
