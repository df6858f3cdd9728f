// Package sqlstage is a staged SELECT statement builder.
/*

Staged Statement Builder

A statement is made of exactly three clauses assigned in a fixed order:
SELECT, then FROM, then WHERE. Each clause can only be assigned once.
Out of order or repeated assignments fail with a *StateError and
leave the statement as it was.

	q := sqlstage.Select("id", "name").From("users").Where("age > 18")
	if err := q.Err(); err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", q)
	// "SELECT id, name FROM users WHERE age > 18 "

Rendering is permissive: a statement can be rendered at any stage,
missing clauses are left empty.

sqlstage also provides:
- An immutable Query value for statements shared between goroutines,
- Conversion of ? placeholders into numbered ones for PostgreSQL ($1, $2, etc),
- Helpers to pass a rendered statement to database/sql.
*/
package sqlstage
