package cmd

import "testing"

func TestResolveCategory(t *testing.T) {
	taxonomy := []string{"formatting", "reasoning", "safety"}

	tests := []struct {
		input string
		want  string
	}{
		{"", "all"},
		{"all", "all"},
		{"All", "all"},
		{"  ALL  ", "all"},
		{"reasoning", "reasoning"},
		{"Reasoning", "reasoning"},
		{"SAFETY", "safety"},
		{"nonexistent", "nonexistent"}, // passed through; engine yields no matches
	}

	for _, tt := range tests {
		got := resolveCategory(taxonomy, tt.input)
		if got != tt.want {
			t.Errorf("resolveCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolveCategoryExactMatchWins(t *testing.T) {
	// Both keys exist; exact match must win over case-insensitive match.
	taxonomy := []string{"API", "api"}
	if got := resolveCategory(taxonomy, "api"); got != "api" {
		t.Errorf("resolveCategory(api) = %q, want exact key api", got)
	}
	if got := resolveCategory(taxonomy, "API"); got != "API" {
		t.Errorf("resolveCategory(API) = %q, want exact key API", got)
	}
}
