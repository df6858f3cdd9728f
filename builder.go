package sqlstage

import (
	"go.uber.org/zap"
)

var nopLogger = zap.NewNop()

// New starts an empty statement rendered with the default dialect.
func New() *Builder {
	return DefaultDialect().New()
}

/*
Select starts a statement rendered with the default dialect
and sets its columns.

	q := sqlstage.Select("id", "name").From("users").Where("age > 18")
	fmt.Printf("%q\n", q)
	// "SELECT id, name FROM users WHERE age > 18 "
*/
func Select(columns ...string) *Builder {
	return DefaultDialect().Select(columns...)
}

/*
Builder assembles a SELECT statement clause by clause.

Clauses must be assigned in order, each exactly once:
SELECT first, then FROM, then WHERE. A call made out of order
fails with a *StateError and leaves the builder untouched.

Every clause can be set two ways. Set* methods return the error right away:

	b := sqlstage.New()
	if err := b.SetColumns("id", "name"); err != nil {
		return err
	}

Select, From and Where return the builder to allow chaining and keep the
first error to be checked later with Err or Build:

	sql, args, err := sqlstage.Select("id").From("users").Where("id = ?", 42).Build()

A failed chained call does not stop later calls from being applied.

Builder is not safe for concurrent use. Use Query to share a statement.
*/
type Builder struct {
	dialect *Dialect
	logger  *zap.Logger
	query   Query
	err     error
	sql     string
}

// WithLogger sets a logger to report rendered statements and rejected clauses to.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = nopLogger
	}
	b.logger = logger
	return b
}

// SetColumns sets the list of columns to be selected.
func (b *Builder) SetColumns(columns ...string) error {
	q, err := b.query.Select(columns...)
	return b.apply(clauseSelect, q, err)
}

// SetTable sets the table to select from.
func (b *Builder) SetTable(table string) error {
	q, err := b.query.From(table)
	return b.apply(clauseFrom, q, err)
}

// SetCondition sets the filter condition and its arguments.
func (b *Builder) SetCondition(condition string, args ...interface{}) error {
	q, err := b.query.Where(condition, args...)
	return b.apply(clauseWhere, q, err)
}

// Select is a chainable form of SetColumns.
func (b *Builder) Select(columns ...string) *Builder {
	b.keep(b.SetColumns(columns...))
	return b
}

// From is a chainable form of SetTable.
func (b *Builder) From(table string) *Builder {
	b.keep(b.SetTable(table))
	return b
}

/*
Where is a chainable form of SetCondition.

	sqlstage.Select("id", "name").
		From("users").
		Where("email = ? AND is_active = 1", email)
*/
func (b *Builder) Where(condition string, args ...interface{}) *Builder {
	b.keep(b.SetCondition(condition, args...))
	return b
}

// Err returns the first error returned by a chained call.
func (b *Builder) Err() error {
	return b.err
}

/*
Render returns the SQL statement.

Render never fails. Unassigned clauses are rendered with empty content,
use Validate to refuse incomplete statements.
*/
func (b *Builder) Render() string {
	if b.sql == "" {
		b.sql = b.query.Render(b.dialect)
	}
	b.log().Debug("query rendered",
		zap.String("sql", b.sql),
		zap.Stringer("stage", b.query.stage),
		zap.Int("args", len(b.query.args)))
	return b.sql
}

// String is an alias for Render.
func (b *Builder) String() string {
	return b.Render()
}

/*
Build returns the SQL statement and the list of arguments to be passed
to a database driver.

The first error of a chained call is returned, if any.
*/
func (b *Builder) Build() (string, []interface{}, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	return b.Render(), b.query.Args(), nil
}

// Validate reports the first clause missing from the statement.
func (b *Builder) Validate() error {
	return b.query.Validate()
}

// Snapshot returns an immutable copy of the statement.
func (b *Builder) Snapshot() Query {
	return b.query
}

// Stage returns the most recently assigned clause position.
func (b *Builder) Stage() Stage {
	return b.query.stage
}

// Columns returns a copy of the selected columns.
func (b *Builder) Columns() []string {
	return b.query.Columns()
}

// Table returns the table name.
func (b *Builder) Table() string {
	return b.query.table
}

// Condition returns the filter condition.
func (b *Builder) Condition() string {
	return b.query.condition
}

// Args returns a copy of the arguments bound to the condition.
func (b *Builder) Args() []interface{} {
	return b.query.Args()
}

// Dialect returns the dialect the statement is rendered with.
func (b *Builder) Dialect() *Dialect {
	if b.dialect == nil {
		return NoDialect
	}
	return b.dialect
}

/*
Invalidate forces the statement to be rendered again on the next Render call.

Most likely you don't need to call this method directly.
*/
func (b *Builder) Invalidate() {
	b.sql = ""
}

func (b *Builder) apply(c clause, q Query, err error) error {
	if err != nil {
		b.log().Debug("clause rejected",
			zap.String("clause", c.keyword),
			zap.Stringer("stage", b.query.stage),
			zap.Error(err))
		return err
	}
	b.query = q
	b.Invalidate()
	return nil
}

func (b *Builder) keep(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

func (b *Builder) log() *zap.Logger {
	if b.logger == nil {
		return nopLogger
	}
	return b.logger
}
