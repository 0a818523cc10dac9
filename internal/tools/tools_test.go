package tools

import "testing"

func TestFormatLargeNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{950, "950"},
		{1_000, "1.0K"},
		{15_500, "15.5K"},
		{2_400_000, "2.4M"},
		{3_100_000_000, "3.1B"},
		{0, "0"},
	}
	for _, tc := range cases {
		if got := FormatLargeNumber(tc.in); got != tc.want {
			t.Errorf("FormatLargeNumber(%f) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(10.005); got != 10.01 {
		t.Errorf("expected 10.01, got %f", got)
	}
	if got := Round2(1155.0000001); got != 1155 {
		t.Errorf("expected 1155, got %f", got)
	}
}
