package storage

import "testing"

func TestLikePattern(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"CLSD", "%CLSD%"},
		{"RWY_01", `%RWY\_01%`},
		{"50%", `%50\%%`},
		{`A\B`, `%A\\B%`},
	}
	for _, tt := range tests {
		if got := likePattern(tt.term); got != tt.want {
			t.Errorf("likePattern(%q) = %q, want %q", tt.term, got, tt.want)
		}
	}
}

func TestClampLimit(t *testing.T) {
	tests := map[int]int{0: defaultLimit, -5: defaultLimit, 10: 10, 5000: maxLimit}
	for in, want := range tests {
		if got := clampLimit(in); got != want {
			t.Errorf("clampLimit(%d) = %d, want %d", in, got, want)
		}
	}
}
