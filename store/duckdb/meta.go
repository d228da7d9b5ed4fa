package duckdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jing2uo/daybar/model"
)

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

	var count int
	err := d.db.Get(&count, query, orderBookID, model.DateToTime(date))
	if err != nil {
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

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trading calendar: %w", err)
	}
	defer rows.Close()

	var dates []uint64
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan trading date: %w", err)
		}
		dates = append(dates, model.TimeToDate(date))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trading dates: %w", err)
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
