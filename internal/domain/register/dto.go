package register

import (
	"github.com/paylite/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEntryRequest struct {
	Date        string `json:"date"` // "YYYY-MM-DD"
	Description string `json:"description"`
	Debit       string `json:"debit,omitempty"`
	Credit      string `json:"credit,omitempty"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetReconciledRequest struct {
	Reconciled bool `json:"reconciled"`
}

type EntryResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Reconciled  bool            `json:"reconciled"`
	Source      string          `json:"source"`
	PayrollKey  *PayrollKey     `json:"payroll_key,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
}
