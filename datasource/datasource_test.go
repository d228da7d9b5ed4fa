package datasource

import (
	"sync/atomic"

	"github.com/jing2uo/daybar/model"
)

// fakeRepo 测试用的内存仓储
type fakeRepo struct {
	bars        map[model.Partition]map[string]*model.BarSeries
	factors     map[string]*model.FactorSeries
	splits      map[string]*model.FactorSeries
	suspended   map[string]map[uint64]bool
	st          map[string]map[uint64]bool
	instruments []model.Instrument
	calendar    []uint64

	dayBarCalls atomic.Int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bars:      make(map[model.Partition]map[string]*model.BarSeries),
		factors:   make(map[string]*model.FactorSeries),
		splits:    make(map[string]*model.FactorSeries),
		suspended: make(map[string]map[uint64]bool),
		st:        make(map[string]map[uint64]bool),
	}
}

func (r *fakeRepo) setBars(p model.Partition, id string, s *model.BarSeries) {
	if r.bars[p] == nil {
		r.bars[p] = make(map[string]*model.BarSeries)
	}
	r.bars[p][id] = s
}

func (r *fakeRepo) Connect() error { return nil }
func (r *fakeRepo) Close() error   { return nil }

func (r *fakeRepo) DayBars(p model.Partition, orderBookID string) (*model.BarSeries, error) {
	r.dayBarCalls.Add(1)
	return r.bars[p][orderBookID], nil
}

func (r *fakeRepo) DateRange(p model.Partition, orderBookID string) (uint64, uint64, error) {
	s := r.bars[p][orderBookID]
	if s.Len() == 0 {
		return 0, 0, nil
	}
	return s.Dates[0], s.Dates[s.Len()-1], nil
}

func (r *fakeRepo) ExCumFactors(orderBookID string) (*model.FactorSeries, error) {
	return r.factors[orderBookID], nil
}

func (r *fakeRepo) SplitFactors(orderBookID string) (*model.FactorSeries, error) {
	return r.splits[orderBookID], nil
}

func (r *fakeRepo) SuspendedContains(orderBookID string, date uint64) (bool, error) {
	return r.suspended[orderBookID][date], nil
}

func (r *fakeRepo) StStockContains(orderBookID string, date uint64) (bool, error) {
	return r.st[orderBookID][date], nil
}

func (r *fakeRepo) AllInstruments() ([]model.Instrument, error) {
	return r.instruments, nil
}

func (r *fakeRepo) Dividends(orderBookID string) ([]model.Dividend, error) {
	return nil, nil
}

func (r *fakeRepo) TradingCalendar() ([]uint64, error) {
	return r.calendar, nil
}

func (r *fakeRepo) YieldCurve(start, end uint64, tenor string) ([]model.YieldCurvePoint, error) {
	return nil, nil
}

func (r *fakeRepo) RiskFreeRate(start, end uint64) (float64, error) {
	return 0.03, nil
}

// stockSeries 构造测试股票日线，volume 为 0 表示停牌日
func stockSeries(dates []uint64, closes, volumes []float64) *model.BarSeries {
	n := len(dates)
	cols := map[string][]float64{
		"open":           make([]float64, n),
		"high":           make([]float64, n),
		"low":            make([]float64, n),
		"close":          make([]float64, n),
		"volume":         make([]float64, n),
		"total_turnover": make([]float64, n),
	}
	for i := 0; i < n; i++ {
		cols["open"][i] = closes[i]
		cols["high"][i] = closes[i] * 1.01
		cols["low"][i] = closes[i] * 0.99
		cols["close"][i] = closes[i]
		cols["volume"][i] = volumes[i]
		cols["total_turnover"][i] = closes[i] * volumes[i]
	}
	return &model.BarSeries{
		Dates:  dates,
		Fields: []string{"open", "high", "low", "close", "volume", "total_turnover"},
		Cols:   cols,
	}
}

func csInstrument(id string) *model.Instrument {
	return &model.Instrument{OrderBookID: id, Type: model.TypeCS}
}
