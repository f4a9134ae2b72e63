/*
Package commission prices cash-in and cash-out transactions.

A Processor takes the fee policies of one run and a batch of transactions
and returns one fee per transaction, in input order:

	p := commission.NewProcessor(*policies)
	results, err := p.Process(ctx, txs)

Natural-person withdrawals are free up to the weekly limit. The running
total per user and week lives in a WeeklyLedger that is created for each
call to Process and dropped when it returns. Weeks are numbered by
WeekNumber, which is not ISO 8601.

Errors:
- ErrUnsupportedCurrency: a transaction is not in the supported currency
- ErrUnsupportedCombination: the operation type and user type match no fee rule
- ErrInvalidInput: the input could not be read or decoded

A failed batch produces no output.
*/
package commission
