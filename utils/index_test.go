package utils

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, 5, 2},
		{11, 5, 3},
		{7, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.pageSize); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.pageSize, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{7.166666, 7.17},
		{7.164, 7.16},
		{8.0, 8.0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStringPtr(t *testing.T) {
	if got := StringPtr(""); got != nil {
		t.Errorf("StringPtr(\"\") = %v, want nil", got)
	}
	if got := StringPtr("desc"); got == nil || *got != "desc" {
		t.Errorf("StringPtr(\"desc\") = %v, want pointer to \"desc\"", got)
	}
}
