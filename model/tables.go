package model

import "fmt"

// Partition 日线数据分区，与快照库里的四张日线表一一对应
type Partition int

const (
	PartitionStock Partition = iota
	PartitionIndex
	PartitionFuture
	PartitionFund

	NumPartitions
)

// BarTable 分区表结构：表名 + 数值列（不含 order_book_id 和 date）
type BarTable struct {
	Name    string
	Columns []string
}

var barTables = [NumPartitions]BarTable{
	PartitionStock: {
		Name: "stocks_daily",
		Columns: []string{
			"open", "high", "low", "close",
			"volume", "total_turnover", "limit_up", "limit_down",
		},
	},
	PartitionIndex: {
		Name: "indexes_daily",
		Columns: []string{
			"open", "high", "low", "close",
			"volume", "total_turnover",
		},
	},
	PartitionFuture: {
		Name: "futures_daily",
		Columns: []string{
			"open", "high", "low", "close",
			"volume", "total_turnover", "settlement", "prev_settlement",
			"open_interest", "limit_up", "limit_down",
		},
	},
	PartitionFund: {
		Name: "funds_daily",
		Columns: []string{
			"open", "high", "low", "close",
			"volume", "total_turnover", "acc_net_value", "unit_net_value",
		},
	},
}

// Table 返回分区对应的表结构
func (p Partition) Table() BarTable {
	return barTables[p]
}

func (p Partition) String() string {
	switch p {
	case PartitionStock:
		return "stock"
	case PartitionIndex:
		return "index"
	case PartitionFuture:
		return "future"
	case PartitionFund:
		return "fund"
	default:
		return fmt.Sprintf("partition(%d)", int(p))
	}
}

// 其余固定表名
const (
	TableExCumFactor   = "ex_cum_factor"
	TableSplitFactor   = "split_factor"
	TableSuspendedDays = "suspended_days"
	TableStStockDays   = "st_stock_days"
	TableInstruments   = "instruments"
	TableDividends     = "dividends"
	TableTradingDates  = "trading_dates"
	TableYieldCurve    = "yield_curve"
)
