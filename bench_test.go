package sqlstage_test

import (
	"fmt"
	"testing"

	"github.com/querystage/sqlstage"
)

var s string

func BenchmarkSelect(b *testing.B) {
	for i := 0; i < b.N; i++ {
		q := sqlstage.Select("id").From("table").Where("id > ? AND id < ?", 42, 1000)
		s = q.Render()
	}
}

func BenchmarkSelectPg(b *testing.B) {
	for i := 0; i < b.N; i++ {
		q := sqlstage.PostgreSQL.Select("id").From("table").Where("id > ? AND id < ?", 42, 1000)
		s = q.Render()
	}
}

func BenchmarkManyFields(b *testing.B) {
	fields := make([]string, 0, 100)
	for n := 1; n <= cap(fields); n++ {
		fields = append(fields, fmt.Sprintf("field_%d", n))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		q := sqlstage.Select(fields...).From("table").Where("id > ?", 42)
		s = q.Render()
	}
}

func BenchmarkRenderCached(b *testing.B) {
	q := sqlstage.Select("id", "name").From("table").Where("id > ?", 42)
	for i := 0; i < b.N; i++ {
		s = q.Render()
	}
}

func BenchmarkQueryValue(b *testing.B) {
	base, _ := sqlstage.Query{}.Select("id", "name")
	base, _ = base.From("table")
	for i := 0; i < b.N; i++ {
		q, _ := base.Where("id > ?", i)
		s = q.String()
	}
}
