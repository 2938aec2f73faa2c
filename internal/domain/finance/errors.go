package finance

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrUnbalancedSplit     = errors.New("split entries do not sum to the stated total")
	ErrInvalidType         = errors.New("transaction type must be 'in' or 'out'")
)
