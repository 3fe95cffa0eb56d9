package payload

import (
	"receiptchain/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// ReceiptRequest is the receipt form: the looked-up transfer plus customer metadata.
type ReceiptRequest struct {
	TxHash        string `json:"txHash"`
	Amount        string `json:"amount"`
	Date          string `json:"date"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Purpose       string `json:"purpose"`
}

func (r ReceiptRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TxHash, validation.Required, validation.Match(txHashRegex)),
		validation.Field(&r.Amount, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Date, validation.Required, validation.Length(1, 32)),
		validation.Field(&r.CustomerName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.CustomerEmail, validation.Required, is.EmailFormat),
		validation.Field(&r.Purpose, validation.Required, validation.Length(1, 1000)),
	)
}

func (r ReceiptRequest) ToForm() core.ReceiptForm {
	return core.ReceiptForm{
		TxHash:        r.TxHash,
		Amount:        r.Amount,
		Date:          r.Date,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Purpose:       r.Purpose,
	}
}

type ProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (p ProfileRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Length(0, 200)),
		validation.Field(&p.Email, is.EmailFormat),
	)
}

func (p ProfileRequest) ToProfile() core.Profile {
	return core.Profile{
		Name:  p.Name,
		Email: p.Email,
	}
}
