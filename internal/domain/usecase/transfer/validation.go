package transfer

import (
	"fmt"

	"github.com/sealpay/wallet-ledger/internal/domain/entity"
	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
)

// Validator performs the fail-fast checks that run before any storage work.
// The first violated check wins; nothing is mutated before all pass.
type Validator struct{}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRequest checks the parts of a transfer that need no storage access:
// self-transfer rejection and amount validity. It returns the amount in cents
// on success.
func (v *Validator) ValidateRequest(fromPhone, toPhone, amount string) (int64, error) {
	if fromPhone == toPhone {
		return 0, errs.ErrSelfTransfer
	}

	amountInCents, err := entity.ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if amountInCents == 0 {
		return 0, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}

	return amountInCents, nil
}
