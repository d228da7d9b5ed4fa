package duckdb

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jing2uo/daybar/model"
)

// DayBars 读取单只合约的全量日线，按日期升序。
// 库中无该合约时返回 nil, nil。
func (d *Driver) DayBars(p model.Partition, orderBookID string) (*model.BarSeries, error) {
	t := p.Table()

	query := fmt.Sprintf(
		"SELECT date, %s FROM %s WHERE order_book_id = ? ORDER BY date",
		strings.Join(t.Columns, ", "), t.Name,
	)

	rows, err := d.db.Query(query, orderBookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s bars for %s: %w", t.Name, orderBookID, err)
	}
	defer rows.Close()

	series := &model.BarSeries{
		Fields: t.Columns,
		Cols:   make(map[string][]float64, len(t.Columns)),
	}

	var date time.Time
	vals := make([]float64, len(t.Columns))
	dest := make([]interface{}, 0, len(t.Columns)+1)
	dest = append(dest, &date)
	for i := range vals {
		dest = append(dest, &vals[i])
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", t.Name, err)
		}
		series.Dates = append(series.Dates, model.TimeToDate(date))
		for i, col := range t.Columns {
			series.Cols[col] = append(series.Cols[col], vals[i])
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", t.Name, err)
	}

	if len(series.Dates) == 0 {
		return nil, nil
	}
	return series, nil
}

// DateRange 返回合约日线的首末日期，无数据时返回 (0, 0)
func (d *Driver) DateRange(p model.Partition, orderBookID string) (uint64, uint64, error) {
	t := p.Table()

	query := fmt.Sprintf("SELECT min(date), max(date) FROM %s WHERE order_book_id = ?", t.Name)

	var first, last sql.NullTime
	if err := d.db.QueryRow(query, orderBookID).Scan(&first, &last); err != nil {
		return 0, 0, fmt.Errorf("failed to query date range of %s: %w", orderBookID, err)
	}
	if !first.Valid || !last.Valid {
		return 0, 0, nil
	}
	return model.TimeToDate(first.Time), model.TimeToDate(last.Time), nil
}
