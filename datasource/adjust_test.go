package datasource

import (
	"math"
	"testing"

	"github.com/jing2uo/daybar/model"
)

func TestFactorFor(t *testing.T) {
	dates := []uint64{20200105, 20200110}
	factors := []float64{1.0, 2.0}

	tests := []struct {
		date uint64
		want float64
	}{
		{20200101, 1.0}, // 早于首个断点，取首个因子
		{20200105, 1.0}, // 断点当日即生效
		{20200107, 1.0},
		{20200110, 2.0},
		{20200115, 2.0}, // 晚于末个断点，沿用末个因子
	}
	for _, tt := range tests {
		if got := factorFor(dates, factors, tt.date); got != tt.want {
			t.Errorf("factorFor(%d) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestFactorForSingleBreakpoint(t *testing.T) {
	dates := []uint64{20200105}
	factors := []float64{1.5}

	for _, d := range []uint64{20200101, 20200105, 20200201} {
		if got := factorFor(dates, factors, d); got != 1.5 {
			t.Errorf("factorFor(%d) = %v, want 1.5", d, got)
		}
	}
}

// 拆股场景：20200105 除权，累计因子 1.0 -> 2.0，
// 拆股前 close 为 10，拆股后为 5，前复权后全序列应当都是 5
func splitSource() (*DataSource, *fakeRepo) {
	repo := newFakeRepo()
	dates := []uint64{
		20200102, 20200103, 20200104, 20200105, 20200106,
		20200107, 20200108, 20200109, 20200110,
	}
	closes := []float64{10, 10, 10, 5, 5, 5, 5, 5, 5}
	volumes := []float64{100, 100, 100, 200, 200, 200, 200, 200, 200}
	repo.setBars(model.PartitionStock, "000001.XSHE", stockSeries(dates, closes, volumes))
	repo.factors["000001.XSHE"] = &model.FactorSeries{
		StartDates: []uint64{20200102, 20200105},
		Factors:    []float64{1.0, 2.0},
	}
	return New(repo), repo
}

func TestHistoryBarsSplitAdjustment(t *testing.T) {
	ds, _ := splitSource()
	ins := csInstrument("000001.XSHE")

	bars, err := ds.HistoryBars(ins, 9, FrequencyDaily, nil, 20200110, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bars.Len() != 9 {
		t.Fatalf("len = %d, want 9", bars.Len())
	}
	for i, got := range bars.Cols["close"] {
		if math.Abs(got-5) > 1e-9 {
			t.Errorf("close[%d] = %v, want 5", i, got)
		}
	}
	// 拆股前的成交量按拆股后口径放大一倍
	for i := 0; i < 3; i++ {
		if got := bars.Cols["volume"][i]; math.Abs(got-200) > 1e-9 {
			t.Errorf("volume[%d] = %v, want 200", i, got)
		}
	}
}

func TestHistoryBarsConstantFactorFastPath(t *testing.T) {
	ds, _ := splitSource()
	ins := csInstrument("000001.XSHE")

	// 窗口完全落在除权之后，因子恒定，输出等于原始切片
	bars, err := ds.HistoryBars(ins, 4, FrequencyDaily, nil, 20200110, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, got := range bars.Cols["close"] {
		if got != 5 {
			t.Errorf("close[%d] = %v, want raw 5", i, got)
		}
	}
	for i, got := range bars.Cols["volume"] {
		if got != 200 {
			t.Errorf("volume[%d] = %v, want raw 200", i, got)
		}
	}
}

func TestHistoryBarsNoFactorSeries(t *testing.T) {
	ds, _ := newTestSource() // 无因子记录
	ins := csInstrument("000001.XSHE")

	bars, err := ds.HistoryBars(ins, 9, FrequencyDaily, nil, 20200114, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := bars.Cols["close"][0]; got != 10 {
		t.Errorf("close[0] = %v, want raw 10", got)
	}
}

func TestHistoryBarsIndexNeverAdjusted(t *testing.T) {
	repo := newFakeRepo()
	dates := []uint64{20200102, 20200103, 20200106}
	repo.setBars(model.PartitionIndex, "000300.XSHG", stockSeries(dates, []float64{4000, 4100, 4200}, []float64{1, 1, 1}))
	repo.factors["000300.XSHG"] = &model.FactorSeries{
		StartDates: []uint64{20200102, 20200103},
		Factors:    []float64{1.0, 2.0},
	}
	ds := New(repo)
	ins := &model.Instrument{OrderBookID: "000300.XSHG", Type: model.TypeINDX}

	bars, err := ds.HistoryBars(ins, 3, FrequencyDaily, nil, 20200106, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{4000, 4100, 4200}
	for i, w := range want {
		if bars.Cols["close"][i] != w {
			t.Errorf("close[%d] = %v, want %v", i, bars.Cols["close"][i], w)
		}
	}
}

func TestHistoryBarsSingleFieldPassThrough(t *testing.T) {
	ds, _ := splitSource()
	ins := csInstrument("000001.XSHE")

	// total_turnover 不属于复权字段，单字段请求时绕过复权引擎
	bars, err := ds.HistoryBars(ins, 9, FrequencyDaily, []string{"total_turnover"}, 20200110, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bars.Len() != 9 {
		t.Fatalf("len = %d, want 9", bars.Len())
	}
	if len(bars.Fields) != 1 || bars.Fields[0] != "total_turnover" {
		t.Fatalf("fields = %v, want [total_turnover]", bars.Fields)
	}
	if got := bars.Cols["total_turnover"][0]; got != 10*100 {
		t.Errorf("total_turnover[0] = %v, want 1000 (unadjusted)", got)
	}
}

func TestHistoryBarsSingleAdjustableField(t *testing.T) {
	ds, _ := splitSource()
	ins := csInstrument("000001.XSHE")

	bars, err := ds.HistoryBars(ins, 9, FrequencyDaily, []string{"close"}, 20200110, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars.Fields) != 1 || bars.Fields[0] != "close" {
		t.Fatalf("fields = %v, want [close]", bars.Fields)
	}
	for i, got := range bars.Cols["close"] {
		if math.Abs(got-5) > 1e-9 {
			t.Errorf("close[%d] = %v, want 5", i, got)
		}
	}
}

func TestAdjustRoundTrip(t *testing.T) {
	ds, repo := splitSource()
	ins := csInstrument("000001.XSHE")

	raw := repo.bars[model.PartitionStock]["000001.XSHE"]
	bars, err := ds.HistoryBars(ins, 9, FrequencyDaily, nil, 20200110, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fs := repo.factors["000001.XSHE"]
	base := factorFor(fs.StartDates, fs.Factors, bars.Dates[bars.Len()-1])
	for i := 0; i < bars.Len(); i++ {
		f := factorFor(fs.StartDates, fs.Factors, bars.Dates[i]) / base
		price := bars.Cols["close"][i] / f
		volume := bars.Cols["volume"][i] * f
		if math.Abs(price-raw.Cols["close"][i]) > 1e-9 {
			t.Errorf("close[%d]: inverse %v, want raw %v", i, price, raw.Cols["close"][i])
		}
		if math.Abs(volume-raw.Cols["volume"][i]) > 1e-9 {
			t.Errorf("volume[%d]: inverse %v, want raw %v", i, volume, raw.Cols["volume"][i])
		}
	}
}

func TestAdjustDoesNotMutateCachedSeries(t *testing.T) {
	ds, repo := splitSource()
	ins := csInstrument("000001.XSHE")

	raw := repo.bars[model.PartitionStock]["000001.XSHE"]
	before := make([]float64, len(raw.Cols["close"]))
	copy(before, raw.Cols["close"])

	if _, err := ds.HistoryBars(ins, 9, FrequencyDaily, nil, 20200110, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range raw.Cols["close"] {
		if v != before[i] {
			t.Fatalf("cached close[%d] mutated: %v -> %v", i, before[i], v)
		}
	}
}

func TestHistoryBarsSingleRowWindowUnadjusted(t *testing.T) {
	ds, _ := splitSource()
	ins := csInstrument("000001.XSHE")

	// 单行窗口不经过复权引擎，返回原始值
	bars, err := ds.HistoryBars(ins, 1, FrequencyDaily, nil, 20200104, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bars.Len() != 1 {
		t.Fatalf("len = %d, want 1", bars.Len())
	}
	if got := bars.Cols["close"][0]; got != 10 {
		t.Errorf("close = %v, want raw 10", got)
	}
}
