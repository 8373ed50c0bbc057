package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/finxpert/advisor-api/internal/config"
)

// Connection is the process-lifetime database handle. It is constructed once
// in main and injected into every repository.
type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
