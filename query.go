package sqlstage

/*
Query is an immutable SELECT statement.

The zero value is an empty statement. Select, From and Where return an
updated copy and never modify the receiver, so a Query can be shared
between goroutines:

	base, _ := sqlstage.Query{}.Select("id", "name")
	users, _ := base.From("users")
	adults, err := users.Where("age > ?", 18)
	if err != nil {
		// ...
	}

On failure the receiver is returned unchanged along with a *StateError.
*/
type Query struct {
	stage     Stage
	columns   []string
	table     string
	condition string
	args      []interface{}
}

/*
Select sets the list of columns to be selected.

Columns may only be set once. Calling Select with no columns leaves the
statement empty.
*/
func (q Query) Select(columns ...string) (Query, error) {
	if err := clauseSelect.check(q.stage); err != nil {
		return q, err
	}
	if len(columns) == 0 {
		return q, nil
	}
	q.columns = append([]string(nil), columns...)
	q.stage = StageColumns
	return q, nil
}

// From sets the table to select from. Columns must already be set.
// An empty table name leaves the statement as it is.
func (q Query) From(table string) (Query, error) {
	if err := clauseFrom.check(q.stage); err != nil {
		return q, err
	}
	if table == "" {
		return q, nil
	}
	q.table = table
	q.stage = StageTable
	return q, nil
}

/*
Where sets the filter condition. Both columns and table must already be set.

args are bound to ? placeholders found in condition:

	q, err = q.Where("age > ? AND name <> ?", 18, "root")

An empty condition leaves the statement as it is, args included.
*/
func (q Query) Where(condition string, args ...interface{}) (Query, error) {
	if err := clauseWhere.check(q.stage); err != nil {
		return q, err
	}
	if condition == "" {
		return q, nil
	}
	q.condition = condition
	if len(args) > 0 {
		q.args = append([]interface{}(nil), args...)
	}
	q.stage = StageCondition
	return q, nil
}

// Stage returns the most recently assigned clause position.
func (q Query) Stage() Stage {
	return q.stage
}

// Columns returns a copy of the selected columns.
func (q Query) Columns() []string {
	if len(q.columns) == 0 {
		return nil
	}
	return append([]string(nil), q.columns...)
}

// Table returns the table name, or an empty string if not set.
func (q Query) Table() string {
	return q.table
}

// Condition returns the filter condition, or an empty string if not set.
func (q Query) Condition() string {
	return q.condition
}

// Args returns a copy of the arguments bound to the condition.
func (q Query) Args() []interface{} {
	if len(q.args) == 0 {
		return nil
	}
	return append([]interface{}(nil), q.args...)
}

/*
Validate reports the first clause missing from the statement.

Rendering never requires a complete statement, Validate is there for
callers that want to refuse partial ones.
*/
func (q Query) Validate() error {
	switch q.stage {
	case StageEmpty:
		return ErrSelectRequired
	case StageColumns:
		return ErrFromRequired
	case StageTable:
		return ErrWhereRequired
	}
	return nil
}

// String renders the statement without any dialect-specific rewriting.
func (q Query) String() string {
	return q.Render(NoDialect)
}
