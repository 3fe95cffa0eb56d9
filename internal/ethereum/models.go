package ethereum

import "github.com/shopspring/decimal"

const (
	TokenSymbol    = "USDC"
	TokenDecimals  = 6
	NativeSymbol   = "ETH"
	NativeDecimals = 18
)

// Transfer is the value moved by a transaction, already scaled to whole units.
type Transfer struct {
	TransactionHash string
	Amount          decimal.Decimal
	Currency        string
	TokenTransfer   bool
}

// FormatAmount renders the transfer the way receipts store it: "<number> <symbol>".
func (t Transfer) FormatAmount() string {
	return t.Amount.String() + " " + t.Currency
}
