package store

import (
	"fmt"

	"github.com/jing2uo/daybar/model"
	"github.com/jing2uo/daybar/store/clickhouse"
	"github.com/jing2uo/daybar/store/duckdb"
)

func NewRepository(cfg model.DBConfig) (DataRepository, error) {
	switch cfg.Type {
	case model.DBTypeDuckDB:
		return duckdb.NewDriver(cfg), nil
	case model.DBTypeClickHouse:
		return clickhouse.NewDriver(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported db type: %s", cfg.Type)
	}
}
