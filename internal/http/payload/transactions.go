package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var txHashRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)

// TransactionRequest carries the hash taken from the lookup path.
type TransactionRequest struct {
	TxHash string
}

func (t TransactionRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.TxHash, validation.Required, validation.Match(txHashRegex)),
	)
}
