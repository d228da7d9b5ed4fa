package clickhouse

import (
	"fmt"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jing2uo/daybar/model"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	dsn string
	db  *sqlx.DB
}

func NewDriver(cfg model.DBConfig) *Driver {
	return &Driver{dsn: cfg.DSN}
}

func (d *Driver) Connect() error {
	db, err := sqlx.Open("clickhouse", d.dsn)
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("clickhouse ping failed: %w", err)
	}

	d.db = db
	return nil
}

func (d *Driver) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
