package relational

import (
	"context"
	"database/sql"
	"database/sql/driver"
	stderrors "errors"
	"io"
	"sync"
)

// fakeDB is an in-memory database/sql driver. Tests script the responses
// through the query and exec hooks and inspect the recorded calls.
type fakeDB struct {
	mu    sync.Mutex
	calls []fakeCall

	query func(q string, args []driver.NamedValue) (driver.Rows, error)
	exec  func(q string, args []driver.NamedValue) (driver.Result, error)
}

type fakeCall struct {
	query string
	args  []driver.NamedValue
}

func newFakeDB() *fakeDB { return &fakeDB{} }

func (f *fakeDB) open() *sql.DB { return sql.OpenDB(f) }

func (f *fakeDB) record(q string, args []driver.NamedValue) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fakeCall{query: q, args: args})
}

func (f *fakeDB) queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.query
	}
	return out
}

func (f *fakeDB) lastArgs() []driver.NamedValue {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1].args
}

// driver.Connector
func (f *fakeDB) Connect(context.Context) (driver.Conn, error) { return &fakeConn{db: f}, nil }
func (f *fakeDB) Driver() driver.Driver                        { return fakeDriver{db: f} }

type fakeDriver struct{ db *fakeDB }

func (d fakeDriver) Open(string) (driver.Conn, error) { return &fakeConn{db: d.db}, nil }

type fakeConn struct{ db *fakeDB }

func (c *fakeConn) Prepare(string) (driver.Stmt, error) {
	return nil, stderrors.New("fake: prepare not supported")
}
func (c *fakeConn) Close() error              { return nil }
func (c *fakeConn) Begin() (driver.Tx, error) { return nil, stderrors.New("fake: no transactions") }

// CheckNamedValue lets sql.Out through untouched and converts the rest the
// default way.
func (c *fakeConn) CheckNamedValue(nv *driver.NamedValue) error {
	if _, ok := nv.Value.(sql.Out); ok {
		return nil
	}
	return driver.ErrSkip
}

func (c *fakeConn) QueryContext(_ context.Context, q string, args []driver.NamedValue) (driver.Rows, error) {
	c.db.record(q, args)
	if c.db.query == nil {
		return &fakeRows{}, nil
	}
	return c.db.query(q, args)
}

func (c *fakeConn) ExecContext(_ context.Context, q string, args []driver.NamedValue) (driver.Result, error) {
	c.db.record(q, args)
	if c.db.exec == nil {
		return fakeResult{affected: 1}, nil
	}
	return c.db.exec(q, args)
}

type fakeResult struct {
	lastID   int64
	affected int64
}

func (r fakeResult) LastInsertId() (int64, error) { return r.lastID, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, nil }

type fakeRows struct {
	cols    []string
	lengths []int64
	data    [][]driver.Value
	pos     int
}

func (r *fakeRows) Columns() []string { return r.cols }
func (r *fakeRows) Close() error      { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.data) {
		return io.EOF
	}
	copy(dest, r.data[r.pos])
	r.pos++
	return nil
}

// ColumnTypeLength implements driver.RowsColumnTypeLength
func (r *fakeRows) ColumnTypeLength(i int) (int64, bool) {
	if i >= len(r.lengths) || r.lengths[i] == 0 {
		return 0, false
	}
	return r.lengths[i], true
}
