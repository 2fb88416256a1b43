package advance

import "errors"

var (
	// ErrOverTransactionCeiling rejects a single advance above the
	// configured per-transaction limit.
	ErrOverTransactionCeiling = errors.New("advance amount exceeds the per-transaction limit")

	// ErrOverMonthlyCeiling rejects an advance that would push the
	// worker's monthly total over the configured ceiling.
	ErrOverMonthlyCeiling = errors.New("total advances for the month would exceed the monthly limit")
)
