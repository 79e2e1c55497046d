package onerel

import "errors"

// Errors
var (
	ErrBadLetter            = errors.New("bad generator letter")
	ErrBadWordExpr          = errors.New("bad word expression")
	ErrNotCyclicallyReduced = errors.New("relator is not cyclically reduced")
	ErrEmptyRelator         = errors.New("empty relator")
	ErrCommutatorRelator    = errors.New("relator exponent sums all vanish")
	ErrBadCatalogParam      = errors.New("bad catalog param")
	ErrCatalogClosed        = errors.New("catalog is closed")
	ErrCatalogReadOnly      = errors.New("catalog is read-only")
	ErrUnmarshal            = errors.New("unmarshal failed")
	ErrToolOutput           = errors.New("unrecognized external tool output")
	ErrSessionClosed        = errors.New("session is closed")
)
