package datasource

import (
	"fmt"
	"math"
	"sort"

	"github.com/jing2uo/daybar/model"
)

// searchLeft 第一个 >= d 的下标
func searchLeft(dates []uint64, d uint64) int {
	return sort.Search(len(dates), func(i int) bool { return dates[i] >= d })
}

// searchRight 第一个 > d 的下标，即右侧插入点
func searchRight(dates []uint64, d uint64) int {
	return sort.Search(len(dates), func(i int) bool { return dates[i] > d })
}

// GetBar 返回合约在指定日期的原始日线。
// 该日无数据（周末、节假日、停牌、超出区间）时返回 nil, nil。
// 点查不做复权，结算价等按原始值消费。
func (d *DataSource) GetBar(ins *model.Instrument, date uint64, frequency string) (*model.Bar, error) {
	if frequency != FrequencyDaily {
		return nil, fmt.Errorf("get_bar: frequency %s: %w", frequency, ErrNotImplemented)
	}
	queriesTotal.WithLabelValues("get_bar").Inc()

	bars, err := d.allDayBarsOf(ins)
	if err != nil {
		return nil, err
	}
	if bars.Len() == 0 {
		return nil, nil
	}

	pos := searchLeft(bars.Dates, date)
	if pos >= bars.Len() || bars.Dates[pos] != date {
		return nil, nil
	}
	return bars.Row(pos), nil
}

// GetSettlePrice 返回期货结算价，查不到时返回 NaN 而不是错误，
// 调用方把缺失结算价当作数值空洞处理
func (d *DataSource) GetSettlePrice(ins *model.Instrument, date uint64) (float64, error) {
	bar, err := d.GetBar(ins, date, FrequencyDaily)
	if err != nil {
		return 0, err
	}
	if bar == nil {
		return math.NaN(), nil
	}
	settle, ok := bar.Values["settlement"]
	if !ok {
		return math.NaN(), nil
	}
	return settle, nil
}

// areFieldsValid 字段选择器校验：nil 合法，否则每个名字都必须在序列里
func areFieldsValid(fields []string, bars *model.BarSeries) bool {
	if fields == nil {
		return true
	}
	for _, f := range fields {
		if !bars.HasField(f) {
			return false
		}
	}
	return true
}

// HistoryBars 返回截止 date（含）的最多 barCount 根日线，前复权。
// fields 为 nil 时返回全部字段；含非法字段名时整个调用返回 nil。
// 历史不足 barCount 根时返回全部可用数据，不算错误。
func (d *DataSource) HistoryBars(ins *model.Instrument, barCount int, frequency string, fields []string, date uint64, skipSuspended bool) (*model.BarSeries, error) {
	if frequency != FrequencyDaily {
		return nil, fmt.Errorf("history_bars: frequency %s: %w", frequency, ErrNotImplemented)
	}
	queriesTotal.WithLabelValues("history_bars").Inc()

	// 只有 CS 类合约存在成交量意义上的停牌
	var bars *model.BarSeries
	var err error
	if skipSuspended && ins.Type == model.TypeCS {
		bars, err = d.filteredDayBarsOf(ins)
	} else {
		bars, err = d.allDayBarsOf(ins)
	}
	if err != nil {
		return nil, err
	}

	if bars == nil || !areFieldsValid(fields, bars) {
		return nil, nil
	}

	// barCount 非正时窗口为空，与历史不足时一样不算错误
	i := searchRight(bars.Dates, date)
	left := 0
	if barCount <= 0 {
		left = i
	} else if i > barCount {
		left = i - barCount
	}
	window := bars.Slice(left, i)

	// 期货及指数无需复权；单行窗口前后因子必然相同
	if adjustmentExempt(ins.Type) || window.Len() == 1 {
		return window.Project(fields), nil
	}

	// 单字段且不属于复权字段时直接透传
	if len(fields) == 1 && !fieldRequiresAdjustment(fields[0]) {
		return window.Project(fields), nil
	}

	return d.adjustBars(ins.OrderBookID, window, fields)
}

// AvailableDataRange 返回日线数据的可用首末日期，以基准指数为准
func (d *DataSource) AvailableDataRange(frequency string) (uint64, uint64, error) {
	if frequency != FrequencyDaily {
		return 0, 0, fmt.Errorf("available_data_range: frequency %s: %w", frequency, ErrNotImplemented)
	}
	return d.repo.DateRange(model.PartitionIndex, ReferenceIndex)
}
