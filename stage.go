package sqlstage

// Stage is the position of a statement in the SELECT, FROM, WHERE sequence.
type Stage int

// Stages in the order clauses must be assigned.
const (
	StageEmpty Stage = iota
	StageColumns
	StageTable
	StageCondition
)

func (s Stage) String() string {
	switch s {
	case StageEmpty:
		return "empty"
	case StageColumns:
		return "columns set"
	case StageTable:
		return "table set"
	case StageCondition:
		return "condition set"
	}
	return "unknown"
}

// clause describes a single assignable clause of a statement.
//
// A clause may only be assigned when the statement is exactly one stage
// before target. missing is reported when an earlier clause is unset,
// duplicate when the clause itself has already been assigned.
type clause struct {
	keyword   string
	target    Stage
	missing   error
	duplicate error
}

var (
	clauseSelect = clause{
		keyword:   "SELECT",
		target:    StageColumns,
		duplicate: ErrSelectAlreadySet,
	}
	clauseFrom = clause{
		keyword:   "FROM",
		target:    StageTable,
		missing:   ErrSelectRequired,
		duplicate: ErrFromAlreadySet,
	}
	// Columns need no separate check: StageTable can only follow StageColumns.
	clauseWhere = clause{
		keyword:   "WHERE",
		target:    StageCondition,
		missing:   ErrFromRequired,
		duplicate: ErrWhereAlreadySet,
	}
)

// check reports whether a statement at stage s may assign c.
func (c clause) check(s Stage) error {
	switch {
	case s >= c.target:
		return c.duplicate
	case s < c.target-1:
		return c.missing
	}
	return nil
}
