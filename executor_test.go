package sqlstage_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/querystage/sqlstage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Every connection to :memory: gets its own database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	for _, stmt := range []string{
		`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL, age INTEGER NOT NULL)`,
		`INSERT INTO users (id, name, age) VALUES (1, 'Ann', 34), (2, 'Bob', 17), (3, 'Cid', 19)`,
	} {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}
	return db
}

func TestQuery(t *testing.T) {
	db := openDB(t)

	var names []string
	err := sqlstage.Select("id", "name").
		From("users").
		Where("age > ?", 18).
		Query(context.Background(), db, func(rows *sql.Rows) error {
			var (
				id   int
				name string
			)
			if err := rows.Scan(&id, &name); err != nil {
				return err
			}
			names = append(names, name)
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Cid"}, names)
}

func TestQueryNoContext(t *testing.T) {
	db := openDB(t)

	cnt := 0
	err := sqlstage.Select("id").From("users").Where("age > 18").
		Query(nil, db, func(rows *sql.Rows) error {
			cnt++
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, 2, cnt)
}

func TestQueryHandlerError(t *testing.T) {
	db := openDB(t)

	err := sqlstage.Select("id").From("users").Where("1 = 1").
		Query(context.Background(), db, func(rows *sql.Rows) error {
			return sql.ErrNoRows
		})
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestQueryRow(t *testing.T) {
	db := openDB(t)

	var name string
	err := sqlstage.Select("name").From("users").Where("id = ?", 2).
		QueryRow(context.Background(), db, &name)
	require.NoError(t, err)
	assert.Equal(t, "Bob", name)

	err = sqlstage.Select("name").From("users").Where("id = ?", 42).
		QueryRow(context.Background(), db, &name)
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestExec(t *testing.T) {
	db := openDB(t)

	_, err := sqlstage.Select("COUNT(*)").From("users").Where("age > 18").
		Exec(context.Background(), db)
	require.NoError(t, err)
}

func TestExecutorStateError(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	q := sqlstage.New().From("users")
	err := q.Query(ctx, db, func(*sql.Rows) error {
		t.Fatal("handler must not be called")
		return nil
	})
	assert.Same(t, sqlstage.ErrSelectRequired, err)

	var id int
	assert.Same(t, sqlstage.ErrSelectRequired, q.QueryRow(ctx, db, &id))

	_, err = q.Exec(ctx, db)
	assert.Same(t, sqlstage.ErrSelectRequired, err)
}

func TestIncompleteQueryFails(t *testing.T) {
	db := openDB(t)

	// Rendering is permissive, the database is not.
	err := sqlstage.Select("id").From("users").
		Query(context.Background(), db, func(*sql.Rows) error { return nil })
	assert.Error(t, err)
}
