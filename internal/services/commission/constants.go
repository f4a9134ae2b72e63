package commission

// Default configuration values
const (
	DefaultCurrency = "EUR"
)

// Fee categories, used as metric labels
const (
	CategoryCashIn           = "cash_in"
	CategoryCashOutNatural   = "cash_out_natural"
	CategoryCashOutJuridical = "cash_out_juridical"
)
