package storage

import "fmt"

// PersistenceError wraps a failed write. The calculation that was being
// saved stays intact in memory and is never marked saved.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: persistence failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
