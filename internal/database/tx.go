package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// FakeTx 實作 pgx.Tx 供交易相關測試使用
// 未設定的方法一律 panic，Rollback 除外（defer 安全網會重複呼叫）
type FakeTx struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	CommitFn   func(ctx context.Context) error
	RollbackFn func(ctx context.Context) error
}

func (f *FakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn != nil {
		return f.ExecFn(ctx, sql, args...)
	}
	panic("unexpected Exec")
}

func (f *FakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, sql, args...)
	}
	panic("unexpected Query")
}

func (f *FakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn != nil {
		return f.QueryRowFn(ctx, sql, args...)
	}
	panic("unexpected QueryRow")
}

func (f *FakeTx) Commit(ctx context.Context) error {
	if f.CommitFn != nil {
		return f.CommitFn(ctx)
	}
	panic("unexpected Commit")
}

func (f *FakeTx) Rollback(ctx context.Context) error {
	if f.RollbackFn != nil {
		return f.RollbackFn(ctx)
	}
	return nil
}

func (f *FakeTx) Begin(ctx context.Context) (pgx.Tx, error) { panic("unexpected Begin") }

func (f *FakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	panic("unexpected CopyFrom")
}

func (f *FakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("unexpected SendBatch")
}

func (f *FakeTx) LargeObjects() pgx.LargeObjects { panic("unexpected LargeObjects") }

func (f *FakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	panic("unexpected Prepare")
}

func (f *FakeTx) Conn() *pgx.Conn { return nil }
