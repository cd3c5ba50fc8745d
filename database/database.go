package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"

	"songbook/migrations"
)

// Database, handler ve middleware paketlerinin veritabanından beklediği işlemler.
// *pgx.Conn bu arabirimi sağlar.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Connect, veritabanına bağlanır ve ping atar. Konteyner ortamında veritabanı
// uygulamadan geç ayağa kalkabildiği için bağlantı sabit aralıkla yeniden denenir.
func Connect(ctx context.Context, connStr string) (*pgx.Conn, error) {
	var conn *pgx.Conn

	backoff := retry.WithMaxRetries(5, retry.NewConstant(2*time.Second))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		c, err := pgx.Connect(ctx, connStr)
		if err != nil {
			return retry.RetryableError(err)
		}
		if err := c.Ping(ctx); err != nil {
			_ = c.Close(ctx)
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}

	return conn, nil
}

// Migrate, gömülü goose migration'larını çalıştırır.
func Migrate(connStr string) error {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("migration bağlantısı açılamadı: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.Up(db, ".")
}
