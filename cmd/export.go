package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/jing2uo/daybar/datasource"
	"github.com/jing2uo/daybar/model"
	"github.com/jing2uo/daybar/utils"
)

type ExportOptions struct {
	ConfigPath string
	DBType     string
	DSN        string
	Symbols    []string
	All        bool
	Date       string
	Count      int
	Output     string
	Format     string // csv 或 parquet
}

// barRow 导出行，四个分区共有的列
type barRow struct {
	OrderBookID string  `parquet:"order_book_id,dict"`
	Date        string  `parquet:"date"`
	Open        float64 `parquet:"open"`
	High        float64 `parquet:"high"`
	Low         float64 `parquet:"low"`
	Close       float64 `parquet:"close"`
	Volume      float64 `parquet:"volume"`
}

var exportColumns = []string{"open", "high", "low", "close", "volume"}

// Export 并发导出多只合约的前复权日线
func Export(opts ExportOptions) error {
	start := time.Now()

	if opts.Format != "csv" && opts.Format != "parquet" {
		return fmt.Errorf("unsupported format %q, expected csv or parquet", opts.Format)
	}

	date, err := model.ParseDate(opts.Date)
	if err != nil {
		return err
	}

	repo, err := OpenRepository(opts.ConfigPath, opts.DBType, opts.DSN)
	if err != nil {
		return err
	}
	defer repo.Close()

	ds := datasource.New(repo)

	instruments, err := ds.GetAllInstruments()
	if err != nil {
		return err
	}

	var targets []model.Instrument
	if opts.All {
		targets = instruments
	} else {
		wanted := make(map[string]bool, len(opts.Symbols))
		for _, s := range opts.Symbols {
			wanted[s] = true
		}
		for _, ins := range instruments {
			if wanted[ins.OrderBookID] {
				targets = append(targets, ins)
			}
		}
		if len(targets) != len(opts.Symbols) {
			return fmt.Errorf("some symbols not found: wanted %d, matched %d", len(opts.Symbols), len(targets))
		}
	}

	fmt.Printf("📦 开始导出 %d 只合约到 %s\n", len(targets), opts.Output)

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())
	errChan := make(chan error, len(targets))

	for i := range targets {
		ins := targets[i]
		wg.Add(1)
		sem <- struct{}{}

		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			if err := exportOne(ds, &ins, date, opts.Count, opts.Output, opts.Format); err != nil {
				errChan <- fmt.Errorf("export %s failed: %w", ins.OrderBookID, err)
			}
		}()
	}

	wg.Wait()
	close(errChan)

	var failed int
	for err := range errChan {
		failed++
		slog.Warn("导出失败", "error", err)
	}
	if failed > 0 {
		return fmt.Errorf("export completed with %d failures", failed)
	}

	fmt.Printf("🚀 导出完成，耗时 %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func exportOne(ds *datasource.DataSource, ins *model.Instrument, date uint64, count int, outputDir, format string) error {
	bars, err := ds.HistoryBars(ins, count, datasource.FrequencyDaily, exportColumns, date, false)
	if err != nil {
		return err
	}
	if bars.Len() == 0 {
		// 没有历史数据不算失败，跳过即可
		return nil
	}

	rows := make([]barRow, bars.Len())
	for i := 0; i < bars.Len(); i++ {
		rows[i] = barRow{
			OrderBookID: ins.OrderBookID,
			Date:        model.FormatDate(bars.Dates[i]),
			Open:        bars.Cols["open"][i],
			High:        bars.Cols["high"][i],
			Low:         bars.Cols["low"][i],
			Close:       bars.Cols["close"][i],
			Volume:      bars.Cols["volume"][i],
		}
	}

	path := filepath.Join(outputDir, fmt.Sprintf("%s.%s", ins.OrderBookID, format))

	if format == "parquet" {
		pw, err := utils.NewParquetWriter[barRow](path)
		if err != nil {
			return err
		}
		if err := pw.Write(rows); err != nil {
			pw.Close()
			return err
		}
		return pw.Close()
	}

	cw, err := utils.NewCSVWriter(path, append([]string{"order_book_id", "date"}, exportColumns...))
	if err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.OrderBookID, r.Date,
			strconv.FormatFloat(r.Open, 'f', -1, 64),
			strconv.FormatFloat(r.High, 'f', -1, 64),
			strconv.FormatFloat(r.Low, 'f', -1, 64),
			strconv.FormatFloat(r.Close, 'f', -1, 64),
			strconv.FormatFloat(r.Volume, 'f', -1, 64),
		}
		if err := cw.WriteRow(record); err != nil {
			cw.Close()
			return err
		}
	}
	return cw.Close()
}
