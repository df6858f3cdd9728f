package sqlstage

/*
Render builds an SQL statement using the given dialect.

Every clause keyword is written whether or not the clause was assigned,
and every clause is followed by a space:

	"SELECT id, name FROM users WHERE age > 18 "

An empty statement renders as "SELECT  FROM  WHERE  ".

A nil dialect is treated as NoDialect.
*/
func (q Query) Render(d *Dialect) string {
	if d == nil {
		d = NoDialect
	}
	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(clauseSelect.keyword)
	buf.Write(space)
	for n, col := range q.columns {
		if n > 0 {
			buf.Write(comma)
		}
		buf.WriteString(col)
	}
	buf.Write(space)

	buf.WriteString(clauseFrom.keyword)
	buf.Write(space)
	buf.WriteString(q.table)
	buf.Write(space)

	buf.WriteString(clauseWhere.keyword)
	buf.Write(space)
	if len(q.args) > 0 && d == PostgreSQL {
		writePg(1, q.condition, buf)
	} else {
		buf.WriteString(q.condition)
	}
	buf.Write(space)

	return buf.String()
}

var (
	space = []byte{' '}
	comma = []byte{',', ' '}
)
