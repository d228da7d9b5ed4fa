package store

import (
	"github.com/jing2uo/daybar/model"
)

// DataRepository 快照库的只读访问契约。
// 所有方法都是对静态数据的纯读取，必须可以被多 goroutine 并发调用；
// 查无数据时返回 nil（或空切片）而不是错误。
type DataRepository interface {
	Connect() error
	Close() error

	// 日线分区
	DayBars(p model.Partition, orderBookID string) (*model.BarSeries, error)
	DateRange(p model.Partition, orderBookID string) (first, last uint64, err error)

	// 复权因子
	ExCumFactors(orderBookID string) (*model.FactorSeries, error)
	SplitFactors(orderBookID string) (*model.FactorSeries, error)

	// 日期集合成员判断
	SuspendedContains(orderBookID string, date uint64) (bool, error)
	StStockContains(orderBookID string, date uint64) (bool, error)

	// 元数据
	AllInstruments() ([]model.Instrument, error)
	Dividends(orderBookID string) ([]model.Dividend, error)
	TradingCalendar() ([]uint64, error)

	// 收益率曲线
	YieldCurve(start, end uint64, tenor string) ([]model.YieldCurvePoint, error)
	RiskFreeRate(start, end uint64) (float64, error)
}
