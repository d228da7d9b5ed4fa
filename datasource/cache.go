package datasource

import (
	"github.com/jing2uo/daybar/model"
)

// allDayBarsOf 返回合约的全量日线，首次访问时从仓储加载。
// 并发首次访问允许重复读取，LoadOrStore 保证发布且只发布一份结果；
// 读取失败不缓存，下次调用重试。
func (d *DataSource) allDayBarsOf(ins *model.Instrument) (*model.BarSeries, error) {
	if v, ok := d.allBars.Load(ins.OrderBookID); ok {
		cacheHits.WithLabelValues("raw").Inc()
		return v.(*model.BarSeries), nil
	}
	cacheMisses.WithLabelValues("raw").Inc()

	p, err := partitionOf(ins.Type)
	if err != nil {
		return nil, err
	}

	bars, err := d.repo.DayBars(p, ins.OrderBookID)
	if err != nil {
		return nil, err
	}

	v, _ := d.allBars.LoadOrStore(ins.OrderBookID, bars)
	return v.(*model.BarSeries), nil
}

// filteredDayBarsOf 返回剔除零成交量（停牌日）后的日线，
// 仅 CS 类合约的窗口查询在 skipSuspended 时使用
func (d *DataSource) filteredDayBarsOf(ins *model.Instrument) (*model.BarSeries, error) {
	if v, ok := d.filteredBars.Load(ins.OrderBookID); ok {
		cacheHits.WithLabelValues("filtered").Inc()
		return v.(*model.BarSeries), nil
	}
	cacheMisses.WithLabelValues("filtered").Inc()

	bars, err := d.allDayBarsOf(ins)
	if err != nil {
		return nil, err
	}

	filtered := filterZeroVolume(bars)
	v, _ := d.filteredBars.LoadOrStore(ins.OrderBookID, filtered)
	return v.(*model.BarSeries), nil
}

// filterZeroVolume 生成剔除 volume == 0 行的新序列，原序列不动
func filterZeroVolume(bars *model.BarSeries) *model.BarSeries {
	if bars == nil {
		return nil
	}
	volume, ok := bars.Cols["volume"]
	if !ok {
		return bars
	}

	keep := make([]int, 0, bars.Len())
	for i, v := range volume {
		if v > 0 {
			keep = append(keep, i)
		}
	}
	if len(keep) == bars.Len() {
		return bars
	}

	out := &model.BarSeries{
		Dates:  make([]uint64, len(keep)),
		Fields: bars.Fields,
		Cols:   make(map[string][]float64, len(bars.Fields)),
	}
	for i, idx := range keep {
		out.Dates[i] = bars.Dates[idx]
	}
	for name, col := range bars.Cols {
		dst := make([]float64, len(keep))
		for i, idx := range keep {
			dst[i] = col[idx]
		}
		out.Cols[name] = dst
	}
	return out
}
