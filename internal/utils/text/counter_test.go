package text

import "testing"

func TestCountRunes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"desa", 4},
		{"café", 4},
		{"halo👋", 5},
	}
	for _, tt := range tests {
		if got := CountRunes(tt.in); got != tt.want {
			t.Errorf("CountRunes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Butuh Kidul", 5, "Butuh"},
		{"Butuh", 5, "Butuh"},
		{"Butuh", 10, "Butuh"},
		{"café au lait", 4, "café"},
		{"halo👋dunia", 5, "halo👋"},
		{"anything", 0, ""},
		{"", 3, ""},
	}
	for _, tt := range tests {
		if got := TruncateRunes(tt.in, tt.n); got != tt.want {
			t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
