// Package datasource 提供回测用的日线行情读取层：
// 按合约缓存原始日线，二分定位日期，并对窗口查询做前复权处理。
package datasource

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jing2uo/daybar/model"
	"github.com/jing2uo/daybar/store"
)

const (
	// FrequencyDaily 目前唯一支持的频率
	FrequencyDaily = "1d"

	// ReferenceIndex 用于确定数据可用区间的基准指数
	ReferenceIndex = "000001.XSHG"
)

var (
	// ErrNotImplemented 能力边界：分钟线、实时快照等路径明确未实现
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnknownType 合约类别不在封闭集合内，属于配置错误
	ErrUnknownType = errors.New("unknown instrument type")

	// ErrUnknownUnderlying 期货标的不在品种表内，属于配置错误
	ErrUnknownUnderlying = errors.New("unknown future underlying")
)

// DataSource 只读行情数据源。
// 所有方法可被并发调用；返回的数组在返回后不会再被修改。
type DataSource struct {
	repo store.DataRepository

	// 按 order_book_id 缓存的全量日线与剔除停牌的日线，
	// 快照数据静态不变，条目只增不删，进程存续期内有效
	allBars      sync.Map // order_book_id -> *model.BarSeries
	filteredBars sync.Map // order_book_id -> *model.BarSeries
}

func New(repo store.DataRepository) *DataSource {
	return &DataSource{repo: repo}
}

// IsSuspended 判断合约在指定日期是否停牌
func (d *DataSource) IsSuspended(orderBookID string, date uint64) (bool, error) {
	return d.repo.SuspendedContains(orderBookID, date)
}

// IsStStock 判断合约在指定日期是否属于 ST 股
func (d *DataSource) IsStStock(orderBookID string, date uint64) (bool, error) {
	return d.repo.StStockContains(orderBookID, date)
}

func (d *DataSource) GetTradingCalendar() ([]uint64, error) {
	return d.repo.TradingCalendar()
}

func (d *DataSource) GetAllInstruments() ([]model.Instrument, error) {
	return d.repo.AllInstruments()
}

func (d *DataSource) GetDividend(orderBookID string) ([]model.Dividend, error) {
	return d.repo.Dividends(orderBookID)
}

// GetSplit 返回拆分因子断点序列，无记录时为 nil
func (d *DataSource) GetSplit(orderBookID string) (*model.FactorSeries, error) {
	return d.repo.SplitFactors(orderBookID)
}

func (d *DataSource) GetYieldCurve(start, end uint64, tenor string) ([]model.YieldCurvePoint, error) {
	return d.repo.YieldCurve(start, end, tenor)
}

func (d *DataSource) GetRiskFreeRate(start, end uint64) (float64, error) {
	return d.repo.RiskFreeRate(start, end)
}

// CurrentSnapshot 实时行情挂钩点，由实时数据源实现
func (d *DataSource) CurrentSnapshot(ins *model.Instrument, frequency string, date uint64) (*model.Bar, error) {
	return nil, fmt.Errorf("current_snapshot: %w", ErrNotImplemented)
}

// GetTradingMinutesFor 分钟级交易时段挂钩点，日线数据源不提供
func (d *DataSource) GetTradingMinutesFor(ins *model.Instrument, date uint64) ([]uint64, error) {
	return nil, fmt.Errorf("get_trading_minutes_for: %w", ErrNotImplemented)
}
