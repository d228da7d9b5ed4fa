package cmd

import (
	"fmt"

	"github.com/jing2uo/daybar/datasource"
	"github.com/jing2uo/daybar/model"
	"github.com/jing2uo/daybar/store"
)

// OpenRepository 合并命令行参数与配置文件，建立仓储连接。
// 命令行参数优先于配置文件。
func OpenRepository(cfgPath, dbType, dsn string) (store.DataRepository, error) {
	cfg := model.DBConfig{Type: model.DBType(dbType), DSN: dsn}

	if cfgPath != "" {
		fileCfg, err := model.LoadConfig(cfgPath)
		if err != nil {
			return nil, err
		}
		if cfg.Type == "" {
			cfg.Type = fileCfg.DB.Type
		}
		if cfg.DSN == "" {
			cfg.DSN = fileCfg.DB.DSN
		}
	}

	if cfg.Type == "" {
		cfg.Type = model.DBTypeDuckDB
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database dsn is required (--dsn or config file)")
	}

	repo, err := store.NewRepository(cfg)
	if err != nil {
		return nil, err
	}
	if err := repo.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Type, err)
	}
	return repo, nil
}

// FindInstrument 按 order_book_id 在合约表里查找
func FindInstrument(ds *datasource.DataSource, orderBookID string) (*model.Instrument, error) {
	instruments, err := ds.GetAllInstruments()
	if err != nil {
		return nil, err
	}
	for i := range instruments {
		if instruments[i].OrderBookID == orderBookID {
			return &instruments[i], nil
		}
	}
	return nil, fmt.Errorf("instrument %s not found", orderBookID)
}
