package sqlstage

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/valyala/bytebufferpool"
)

// Dialect defines the way a statement is rendered.
//
// NoDialect is the default mode. The condition is written as is.
//
// When PostgreSQL mode is used, ? placeholders of a condition that has
// arguments are replaced with numbered positional arguments like $1, $2...
// Use \? to write a literal question mark:
//
//	q := sqlstage.PostgreSQL.New().
//		Select("id").
//		From("series").
//		Where("tags \\? 'hot' AND time > ?", since)
//	// "SELECT id FROM series WHERE tags ? 'hot' AND time > $1 "
type Dialect struct {
	name string
}

var (
	// NoDialect renders statements verbatim.
	NoDialect = &Dialect{name: "none"}
	// PostgreSQL replaces ? placeholders with $1, $2...
	PostgreSQL = &Dialect{name: "postgres"}
)

var defaultDialect atomic.Pointer[Dialect]

func init() {
	defaultDialect.Store(NoDialect)
}

/*
SetDialect selects a Dialect to be used by New and Select.

	sqlstage.SetDialect(sqlstage.PostgreSQL)
*/
func SetDialect(d *Dialect) {
	if d == nil {
		d = NoDialect
	}
	defaultDialect.Store(d)
}

// DefaultDialect returns the dialect selected with SetDialect.
func DefaultDialect() *Dialect {
	return defaultDialect.Load()
}

// DialectByName looks a dialect up by a name used in configuration files.
func DialectByName(name string) (*Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "sqlite", "sqlite3", "mysql":
		return NoDialect, nil
	case "postgres", "postgresql", "pg":
		return PostgreSQL, nil
	}
	return nil, fmt.Errorf("unknown dialect %q", name)
}

func (d *Dialect) String() string {
	return d.name
}

// New starts an empty statement rendered with the dialect.
func (d *Dialect) New() *Builder {
	return &Builder{dialect: d, logger: nopLogger}
}

// Select starts a statement rendered with the dialect and sets its columns.
func (d *Dialect) Select(columns ...string) *Builder {
	return d.New().Select(columns...)
}

// writePg copies s into buf and replaces ? placeholders with $1, $2...
func writePg(argNo int, s string, buf *bytebufferpool.ByteBuffer) int {
	start := 0
	for pos, r := range s {
		if start > pos {
			continue
		}
		switch r {
		case '\\':
			if pos < len(s)-1 && s[pos+1] == '?' {
				buf.WriteString(s[start:pos])
				buf.WriteByte('?')
				start = pos + 2
			}
		case '?':
			buf.WriteString(s[start:pos])
			start = pos + 1
			buf.WriteByte('$')
			buf.B = strconv.AppendInt(buf.B, int64(argNo), 10)
			argNo++
		}
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
	return argNo
}
