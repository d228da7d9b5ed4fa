package duckdb

import (
	"fmt"
	"time"

	"github.com/jing2uo/daybar/model"
)

func (d *Driver) ExCumFactors(orderBookID string) (*model.FactorSeries, error) {
	return d.queryFactors(model.TableExCumFactor, orderBookID)
}

func (d *Driver) SplitFactors(orderBookID string) (*model.FactorSeries, error) {
	return d.queryFactors(model.TableSplitFactor, orderBookID)
}

// queryFactors 读取复权因子断点序列，无记录时返回 nil, nil
func (d *Driver) queryFactors(table, orderBookID string) (*model.FactorSeries, error) {
	query := fmt.Sprintf(
		"SELECT start_date, factor FROM %s WHERE order_book_id = ? ORDER BY start_date",
		table,
	)

	rows, err := d.db.Query(query, orderBookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s for %s: %w", table, orderBookID, err)
	}
	defer rows.Close()

	series := &model.FactorSeries{}
	for rows.Next() {
		var date time.Time
		var factor float64
		if err := rows.Scan(&date, &factor); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		series.StartDates = append(series.StartDates, model.TimeToDate(date))
		series.Factors = append(series.Factors, factor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", table, err)
	}

	if len(series.StartDates) == 0 {
		return nil, nil
	}
	return series, nil
}
