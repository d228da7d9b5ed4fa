package datasource

import (
	"github.com/jing2uo/daybar/model"
)

// priceFields 随因子同向缩放的价格类字段
var priceFields = map[string]struct{}{
	"open":           {},
	"close":          {},
	"high":           {},
	"low":            {},
	"limit_up":       {},
	"limit_down":     {},
	"acc_net_value":  {},
	"unit_net_value": {},
}

// fieldRequiresAdjustment 价格类字段和成交量需要复权，其余字段透传
func fieldRequiresAdjustment(name string) bool {
	if name == "volume" {
		return true
	}
	_, ok := priceFields[name]
	return ok
}

// factorFor 阶跃函数取值：日期 d 生效的因子是最后一个 <= d 的断点值。
// d 早于首个断点时取首个因子，晚于末个断点时取末个因子（右连续、外推）。
func factorFor(dates []uint64, factors []float64, d uint64) float64 {
	if d >= dates[len(dates)-1] {
		return factors[len(factors)-1]
	}
	pos := searchRight(dates, d)
	if pos == 0 {
		return factors[0]
	}
	return factors[pos-1]
}

// adjustBars 对窗口做前复权：以窗口最后一根的因子为 1 归一化，
// 价格类字段乘因子、成交量除因子。始终生成新数组，缓存的原序列不动。
func (d *DataSource) adjustBars(orderBookID string, bars *model.BarSeries, fields []string) (*model.BarSeries, error) {
	series, err := d.repo.ExCumFactors(orderBookID)
	if err != nil {
		return nil, err
	}
	if series == nil || len(series.StartDates) == 0 {
		return bars.Project(fields), nil
	}

	n := bars.Len()
	if n == 0 {
		return bars.Project(fields), nil
	}

	// 首尾因子相同说明整个窗口落在同一因子区间，数值无需改动
	first := factorFor(series.StartDates, series.Factors, bars.Dates[0])
	last := factorFor(series.StartDates, series.Factors, bars.Dates[n-1])
	if first == last {
		return bars.Project(fields), nil
	}

	factors := make([]float64, n)
	for i, dt := range bars.Dates {
		factors[i] = factorFor(series.StartDates, series.Factors, dt)
	}

	// 前复权：最后一根因子归一为 1，之前各根按比例缩放
	base := factors[n-1]
	for i := range factors {
		factors[i] /= base
	}

	src := bars.Project(fields)
	out := &model.BarSeries{
		Dates:  src.Dates,
		Fields: src.Fields,
		Cols:   make(map[string][]float64, len(src.Fields)),
	}
	for _, name := range src.Fields {
		col := src.Cols[name]
		switch {
		case isPriceField(name):
			adjusted := make([]float64, n)
			for i, v := range col {
				adjusted[i] = v * factors[i]
			}
			out.Cols[name] = adjusted
		case name == "volume":
			adjusted := make([]float64, n)
			for i, v := range col {
				adjusted[i] = v / factors[i]
			}
			out.Cols[name] = adjusted
		default:
			out.Cols[name] = col
		}
	}
	return out, nil
}

func isPriceField(name string) bool {
	_, ok := priceFields[name]
	return ok
}
