package model

import (
	"testing"
	"time"
)

func TestTimeToDate(t *testing.T) {
	got := TimeToDate(time.Date(2020, 1, 7, 15, 30, 0, 0, time.UTC))
	if got != 20200107 {
		t.Errorf("TimeToDate = %d, want 20200107", got)
	}
}

func TestDateToTimeRoundTrip(t *testing.T) {
	for _, d := range []uint64{19901219, 20200107, 20231231} {
		if got := TimeToDate(DateToTime(d)); got != d {
			t.Errorf("round trip of %d = %d", d, got)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"2020-01-07", 20200107, false},
		{"20200107", 20200107, false},
		{"2020/01/07", 0, true},
		{"notadate", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(20200107); got != "2020-01-07" {
		t.Errorf("FormatDate = %s, want 2020-01-07", got)
	}
}
