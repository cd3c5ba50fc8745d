package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgproto3/v2"
	"github.com/jackc/pgx/v4"
)

// fakeDB, database.Database arabirimini testlerde sorgu bazında programlanabilir kılar.
// Atanmayan fonksiyonlar makul varsayılanlara düşer.
type fakeDB struct {
	execFn     func(sql string, args []interface{}) (pgconn.CommandTag, error)
	queryFn    func(sql string, args []interface{}) (pgx.Rows, error)
	queryRowFn func(sql string, args []interface{}) pgx.Row
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	if f.execFn == nil {
		return pgconn.CommandTag("INSERT 0 1"), nil
	}
	return f.execFn(sql, args)
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	if f.queryFn == nil {
		return &fakeRows{}, nil
	}
	return f.queryFn(sql, args)
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	if f.queryRowFn == nil {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return f.queryRowFn(sql, args)
}

type fakeRow struct {
	vals []interface{}
	err  error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		if i >= len(r.vals) {
			break
		}
		assign(d, r.vals[i])
	}
	return nil
}

type fakeRows struct {
	rows [][]interface{}
	idx  int
}

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...interface{}) error {
	row := r.rows[r.idx-1]
	for i, d := range dest {
		if i >= len(row) {
			break
		}
		assign(d, row[i])
	}
	return nil
}

func (r *fakeRows) Close()                                         {}
func (r *fakeRows) Err() error                                     { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                  { return nil }
func (r *fakeRows) FieldDescriptions() []pgproto3.FieldDescription { return nil }
func (r *fakeRows) Values() ([]interface{}, error)                 { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                            { return nil }

func assign(dest, val interface{}) {
	switch d := dest.(type) {
	case *string:
		*d = val.(string)
	case *uuid.UUID:
		*d = val.(uuid.UUID)
	}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type errorBody struct {
	Errors map[string]struct {
		Message string `json:"message"`
	} `json:"errors"`
}
