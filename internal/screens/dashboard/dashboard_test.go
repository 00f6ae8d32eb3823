package dashboard

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 32, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a rather long quiz topic", 10, "a rather …"},
		{"光合成と呼吸の仕組みについて", 8, "光合成と呼吸の…"},
		{"", 4, ""},
	}

	for _, tt := range tests {
		got := truncate(tt.in, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.in, tt.n)
		}
	}
}
