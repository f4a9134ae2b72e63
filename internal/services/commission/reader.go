package commission

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"commission/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ReadTransactions decodes a JSON array of transactions and checks the
// required fields of each record.
func ReadTransactions(r io.Reader) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := json.NewDecoder(r).Decode(&txs); err != nil {
		return nil, fmt.Errorf("%w: decode transactions: %v", ErrInvalidInput, err)
	}

	for i := range txs {
		if err := validate.Struct(txs[i]); err != nil {
			return nil, fmt.Errorf("%w: transaction %d: %v", ErrInvalidInput, i, err)
		}
		if txs[i].Date.IsZero() {
			return nil, fmt.Errorf("%w: transaction %d: date is required", ErrInvalidInput, i)
		}
	}
	return txs, nil
}

// ReadTransactionsFile reads transactions from a JSON file.
func ReadTransactionsFile(path string) ([]models.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrInvalidInput, path, err)
	}
	defer file.Close()

	return ReadTransactions(file)
}
