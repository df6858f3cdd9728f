package sqlstage

// StateError is returned when a clause is assigned out of order
// or assigned twice.
//
// The statement is left untouched by the failing call.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string {
	return e.Reason
}

// Errors reported by statement setters and Validate.
var (
	ErrSelectAlreadySet = &StateError{Reason: "select already set"}
	ErrSelectRequired   = &StateError{Reason: "select required"}
	ErrFromRequired     = &StateError{Reason: "from required"}
	ErrFromAlreadySet   = &StateError{Reason: "from already set"}
	ErrWhereRequired    = &StateError{Reason: "where required"}
	ErrWhereAlreadySet  = &StateError{Reason: "where already set"}
)
