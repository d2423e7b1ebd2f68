package booking

import "testing"

func TestFormatBookingNumber(t *testing.T) {
	tests := []struct {
		day  string
		seq  int64
		want string
	}{
		{"20260115", 1, "HR-20260115-0001"},
		{"20260115", 42, "HR-20260115-0042"},
		{"20261231", 9999, "HR-20261231-9999"},
		{"20261231", 10000, "HR-20261231-10000"}, // width grows past four digits
	}
	for _, tt := range tests {
		if got := FormatBookingNumber(tt.day, tt.seq); got != tt.want {
			t.Errorf("FormatBookingNumber(%s, %d) = %s, want %s", tt.day, tt.seq, got, tt.want)
		}
	}
}
