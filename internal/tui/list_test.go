package tui

import "testing"

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrUTF8(t *testing.T) {
	got := truncateStr("日本語テスト", 5)
	want := "日本..."
	if got != want {
		t.Errorf("truncateStr(Japanese, 5) = %q, want %q", got, want)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"one two three", 7, "one two\nthree"},
		{"short", 20, "short"},
		{"", 10, ""},
		{"nowrap", 0, "nowrap"},
	}
	for _, tt := range tests {
		got := wrapText(tt.input, tt.width)
		if got != tt.want {
			t.Errorf("wrapText(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}
