package products

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordingDB is a database/sql driver that records every statement and
// answers Exec calls from a queue of results. Queries return no rows.
type recordingDB struct {
	mu        sync.Mutex
	stmts     []string
	args      [][]driver.NamedValue
	results   []driver.Result
	errs      map[string]error
	commits   int
	rollbacks int
}

func (d *recordingDB) Connect(context.Context) (driver.Conn, error) {
	return &recordingConn{db: d}, nil
}
func (d *recordingDB) Driver() driver.Driver            { return d }
func (d *recordingDB) Open(string) (driver.Conn, error) { return &recordingConn{db: d}, nil }

func (d *recordingDB) exec(query string, args []driver.NamedValue) (driver.Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stmts = append(d.stmts, query)
	d.args = append(d.args, args)
	for prefix, err := range d.errs {
		if strings.HasPrefix(query, prefix) {
			return nil, err
		}
	}
	if len(d.results) == 0 {
		return driver.RowsAffected(1), nil
	}
	r := d.results[0]
	d.results = d.results[1:]
	return r, nil
}

type recordingConn struct{ db *recordingDB }

func (c *recordingConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}
func (c *recordingConn) Close() error              { return nil }
func (c *recordingConn) Begin() (driver.Tx, error) { return recordingTx{db: c.db}, nil }

func (c *recordingConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	return c.db.exec(query, args)
}

func (c *recordingConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.db.mu.Lock()
	c.db.stmts = append(c.db.stmts, query)
	c.db.args = append(c.db.args, args)
	c.db.mu.Unlock()
	return emptyRows{}, nil
}

type recordingTx struct{ db *recordingDB }

func (t recordingTx) Commit() error {
	t.db.mu.Lock()
	t.db.commits++
	t.db.mu.Unlock()
	return nil
}

func (t recordingTx) Rollback() error {
	t.db.mu.Lock()
	t.db.rollbacks++
	t.db.mu.Unlock()
	return nil
}

type emptyRows struct{}

func (emptyRows) Columns() []string         { return []string{"id"} }
func (emptyRows) Close() error              { return nil }
func (emptyRows) Next([]driver.Value) error { return io.EOF }

func newRecordingRepo(t *testing.T, rec *recordingDB) *Repo {
	t.Helper()
	sqlDB := sql.OpenDB(rec)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger:               logger.Discard,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	return NewRepo(db)
}

// writes drops the transaction bookkeeping and keeps the DML in order.
func (d *recordingDB) writes() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []string
	for _, s := range d.stmts {
		if strings.HasPrefix(s, "UPDATE") || strings.HasPrefix(s, "DELETE") {
			out = append(out, s)
		}
	}
	return out
}

func TestRepoSetInStock_NoRowsIsNotFound(t *testing.T) {
	rec := &recordingDB{results: []driver.Result{driver.RowsAffected(0)}}
	repo := newRecordingRepo(t, rec)

	err := repo.SetInStock(context.Background(), "missing", true)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	w := rec.writes()
	if len(w) != 1 || !strings.Contains(w[0], "UPDATE `products`") || !strings.Contains(w[0], "`in_stock`") {
		t.Fatalf("unexpected statements: %v", w)
	}
}

func TestRepoSetInStock_WritesFlag(t *testing.T) {
	rec := &recordingDB{results: []driver.Result{driver.RowsAffected(1)}}
	repo := newRecordingRepo(t, rec)

	if err := repo.SetInStock(context.Background(), "p1", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sawFlag, sawID bool
	for _, a := range rec.args[len(rec.args)-1] {
		switch v := a.Value.(type) {
		case bool:
			sawFlag = !v
		case string:
			sawID = sawID || v == "p1"
		}
	}
	if !sawFlag || !sawID {
		t.Fatalf("expected in_stock=false for p1, got args %+v", rec.args[len(rec.args)-1])
	}
}

func TestRepoSetInStock_DriverError(t *testing.T) {
	boom := errors.New("connection reset")
	rec := &recordingDB{errs: map[string]error{"UPDATE": boom}}
	repo := newRecordingRepo(t, rec)

	if err := repo.SetInStock(context.Background(), "p1", true); !errors.Is(err, boom) {
		t.Fatalf("expected driver error, got %v", err)
	}
}

func TestRepoDelete_ImagesThenProductInOneTransaction(t *testing.T) {
	rec := &recordingDB{results: []driver.Result{driver.RowsAffected(2), driver.RowsAffected(1)}}
	repo := newRecordingRepo(t, rec)

	if err := repo.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := rec.writes()
	if len(w) != 2 {
		t.Fatalf("expected 2 deletes, got %v", w)
	}
	if !strings.HasPrefix(w[0], "DELETE FROM `product_images`") || !strings.HasPrefix(w[1], "DELETE FROM `products`") {
		t.Fatalf("expected image rows deleted before the product, got %v", w)
	}
	if rec.commits != 1 || rec.rollbacks != 0 {
		t.Fatalf("expected a single commit, got commits=%d rollbacks=%d", rec.commits, rec.rollbacks)
	}
}

func TestRepoDelete_MissingProductRollsBack(t *testing.T) {
	rec := &recordingDB{results: []driver.Result{driver.RowsAffected(0), driver.RowsAffected(0)}}
	repo := newRecordingRepo(t, rec)

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if rec.commits != 0 || rec.rollbacks != 1 {
		t.Fatalf("expected rollback, got commits=%d rollbacks=%d", rec.commits, rec.rollbacks)
	}
}

func TestRepoDelete_ImageErrorStopsBeforeProduct(t *testing.T) {
	boom := errors.New("lock wait timeout")
	rec := &recordingDB{errs: map[string]error{"DELETE FROM `product_images`": boom}}
	repo := newRecordingRepo(t, rec)

	if err := repo.Delete(context.Background(), "p1"); !errors.Is(err, boom) {
		t.Fatalf("expected image delete error, got %v", err)
	}
	for _, s := range rec.writes() {
		if strings.HasPrefix(s, "DELETE FROM `products`") {
			t.Fatalf("product row must not be deleted after image failure: %v", rec.writes())
		}
	}
	if rec.rollbacks != 1 {
		t.Fatalf("expected rollback, got %d", rec.rollbacks)
	}
}
