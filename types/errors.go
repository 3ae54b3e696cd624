package types

import "errors"

// Reader failures.
var (
	ErrOutOfRange       = errors.New("position out of range")
	ErrNoForm           = errors.New("no form produced")
	ErrUnbalancedParens = errors.New("unbalanced parenthesis")
	ErrUnbalancedQuotes = errors.New("unbalanced quotes")
	ErrUnknownEscape    = errors.New("unknown escape sequence")
	ErrIncompleteEscape = errors.New("incomplete escape")
	ErrBadNumber        = errors.New("integer out of range")
	ErrUnexpected       = errors.New("unexpected token")
)

// Evaluation failures.
var (
	ErrSymbolNotFound = errors.New("symbol not found")
	ErrBindLength     = errors.New("invalid length of exprs")
	ErrNotCallable    = errors.New("not callable")
	ErrArity          = errors.New("wrong number of arguments")
	ErrType           = errors.New("wrong argument type")
	ErrMalformed      = errors.New("malformed special form")
	ErrFileRead       = errors.New("error reading file")
	ErrDivideByZero   = errors.New("division by zero")
	ErrIndex          = errors.New("index out of range")
)
