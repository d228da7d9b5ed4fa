package model

import "testing"

func TestTenorForSpan(t *testing.T) {
	tests := []struct {
		start, end uint64
		want       string
	}{
		{20200101, 20200110, "0S"},
		{20200101, 20200301, "1M"},
		{20200101, 20200701, "3M"},
		{20200101, 20201101, "6M"},
		{20200101, 20210601, "1Y"},
		{20200101, 20220601, "2Y"},
		{20200101, 20250101, "3Y"},
	}
	for _, tt := range tests {
		if got := TenorForSpan(tt.start, tt.end); got != tt.want {
			t.Errorf("TenorForSpan(%d, %d) = %s, want %s", tt.start, tt.end, got, tt.want)
		}
	}
}
