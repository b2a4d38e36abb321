package data

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/iWorld-y/fin_radar/app/classifier/internal/conf"
)

const (
	defaultDriver = "sqlite"
	defaultSource = "file:records.db"
)

type Data struct {
	db     *sql.DB
	driver string
}

// bind 返回第 i 个（从 1 开始）参数占位符，postgres 为 $i，sqlite 为 ?
func (d *Data) bind(i int) string {
	if d.driver == "postgres" {
		return fmt.Sprintf("$%d", i)
	}
	return "?"
}

// binds 返回 n 个以逗号分隔的占位符
func (d *Data) binds(n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = d.bind(i + 1)
	}
	return strings.Join(ph, ", ")
}

func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	driver, source := defaultDriver, defaultSource
	if c != nil && c.Database != nil && c.Database.Driver != "" {
		driver, source = c.Database.Driver, c.Database.Source
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, nil, err
	}
	if driver == "sqlite" {
		// sqlite 单连接，内存库在连接之间不共享
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, err
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS classification_records (
			id TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			label TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			created_at BIGINT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to init classification_records table: %w", err)
	}

	cleanup := func() {
		log.NewHelper(logger).Info("closing the data resources")
		db.Close()
	}
	return &Data{db: db, driver: driver}, cleanup, nil
}
