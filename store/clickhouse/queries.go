package clickhouse

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jing2uo/daybar/model"
)

// ClickHouse 侧的查询与 DuckDB 驱动保持同一套表结构，
// 仅连接与占位符处理不同。

func (d *Driver) DayBars(p model.Partition, orderBookID string) (*model.BarSeries, error) {
	t := p.Table()

	cols := strings.Join(t.Columns, ", ")
	query := fmt.Sprintf(
		"SELECT date, %s FROM %s WHERE order_book_id = ? ORDER BY date",
		cols, t.Name,
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

func (d *Driver) DateRange(p model.Partition, orderBookID string) (uint64, uint64, error) {
	t := p.Table()

	var first, last sql.NullTime
	query := fmt.Sprintf("SELECT min(date), max(date) FROM %s WHERE order_book_id = ?", t.Name)
	if err := d.db.QueryRow(query, orderBookID).Scan(&first, &last); err != nil {
		return 0, 0, fmt.Errorf("failed to query date range of %s: %w", orderBookID, err)
	}
	if !first.Valid || !last.Valid {
		return 0, 0, nil
	}
	return model.TimeToDate(first.Time), model.TimeToDate(last.Time), nil
}

func (d *Driver) ExCumFactors(orderBookID string) (*model.FactorSeries, error) {
	return d.queryFactors(model.TableExCumFactor, orderBookID)
}

func (d *Driver) SplitFactors(orderBookID string) (*model.FactorSeries, error) {
	return d.queryFactors(model.TableSplitFactor, orderBookID)
}

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

func (d *Driver) SuspendedContains(orderBookID string, date uint64) (bool, error) {
	return d.dateSetContains(model.TableSuspendedDays, orderBookID, date)
}

func (d *Driver) StStockContains(orderBookID string, date uint64) (bool, error) {
	return d.dateSetContains(model.TableStStockDays, orderBookID, date)
}

func (d *Driver) dateSetContains(table, orderBookID string, date uint64) (bool, error) {
	query := fmt.Sprintf(
		"SELECT count(*) FROM %s WHERE order_book_id = ? AND date = ?",
		table,
	)

	var count uint64
	if err := d.db.Get(&count, query, orderBookID, model.DateToTime(date)); err != nil {
		return false, fmt.Errorf("failed to query %s for %s: %w", table, orderBookID, err)
	}
	return count > 0, nil
}

func (d *Driver) AllInstruments() ([]model.Instrument, error) {
	query := fmt.Sprintf(`
		SELECT order_book_id, symbol, type, listed_date, de_listed_date,
		       round_lot, underlying_symbol
		FROM %s`, model.TableInstruments)

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query instruments: %w", err)
	}
	defer rows.Close()

	var instruments []model.Instrument
	for rows.Next() {
		var ins model.Instrument
		var listed, deListed sql.NullTime
		if err := rows.Scan(&ins.OrderBookID, &ins.Symbol, &ins.Type,
			&listed, &deListed, &ins.RoundLot, &ins.UnderlyingSymbol); err != nil {
			return nil, fmt.Errorf("failed to scan instrument row: %w", err)
		}
		// 未退市的合约 de_listed_date 为 NULL，记作 0
		if listed.Valid {
			ins.ListedDate = model.TimeToDate(listed.Time)
		}
		if deListed.Valid {
			ins.DeListedDate = model.TimeToDate(deListed.Time)
		}
		instruments = append(instruments, ins)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instrument rows: %w", err)
	}
	return instruments, nil
}

func (d *Driver) Dividends(orderBookID string) ([]model.Dividend, error) {
	query := fmt.Sprintf(`
		SELECT order_book_id, announcement_date, book_closure_date, ex_dividend_date,
		       payable_date, dividend_cash_before_tax, round_lot
		FROM %s WHERE order_book_id = ? ORDER BY ex_dividend_date`, model.TableDividends)

	rows, err := d.db.Query(query, orderBookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query dividends for %s: %w", orderBookID, err)
	}
	defer rows.Close()

	var dividends []model.Dividend
	for rows.Next() {
		var div model.Dividend
		var announced, closure, exDividend, payable time.Time
		if err := rows.Scan(&div.OrderBookID, &announced, &closure, &exDividend,
			&payable, &div.CashBeforeTax, &div.RoundLot); err != nil {
			return nil, fmt.Errorf("failed to scan dividend row: %w", err)
		}
		div.AnnouncementDate = model.TimeToDate(announced)
		div.BookClosureDate = model.TimeToDate(closure)
		div.ExDividendDate = model.TimeToDate(exDividend)
		div.PayableDate = model.TimeToDate(payable)
		dividends = append(dividends, div)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dividend rows: %w", err)
	}
	return dividends, nil
}

func (d *Driver) TradingCalendar() ([]uint64, error) {
	query := fmt.Sprintf("SELECT date FROM %s ORDER BY date", model.TableTradingDates)

	var raw []time.Time
	if err := d.db.Select(&raw, query); err != nil {
		return nil, fmt.Errorf("failed to query trading calendar: %w", err)
	}

	dates := make([]uint64, 0, len(raw))
	for _, t := range raw {
		dates = append(dates, model.TimeToDate(t))
	}
	return dates, nil
}

func (d *Driver) YieldCurve(start, end uint64, tenor string) ([]model.YieldCurvePoint, error) {
	query := fmt.Sprintf(
		"SELECT date, tenor, rate FROM %s WHERE date >= ? AND date <= ?",
		model.TableYieldCurve,
	)
	args := []interface{}{model.DateToTime(start), model.DateToTime(end)}

	if tenor != "" {
		query += " AND tenor = ?"
		args = append(args, tenor)
	}
	query += " ORDER BY date, tenor"

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query yield curve: %w", err)
	}
	defer rows.Close()

	var points []model.YieldCurvePoint
	for rows.Next() {
		var date time.Time
		var p model.YieldCurvePoint
		if err := rows.Scan(&date, &p.Tenor, &p.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan yield curve row: %w", err)
		}
		p.Date = model.TimeToDate(date)
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating yield curve rows: %w", err)
	}
	return points, nil
}

func (d *Driver) RiskFreeRate(start, end uint64) (float64, error) {
	tenor := model.TenorForSpan(start, end)

	query := fmt.Sprintf(
		"SELECT avg(rate) FROM %s WHERE tenor = ? AND date >= ? AND date <= ?",
		model.TableYieldCurve,
	)

	var rate sql.NullFloat64
	err := d.db.Get(&rate, query, tenor, model.DateToTime(start), model.DateToTime(end))
	if err != nil {
		return 0, fmt.Errorf("failed to query risk free rate: %w", err)
	}
	if !rate.Valid {
		return 0, nil
	}
	return rate.Float64, nil
}
