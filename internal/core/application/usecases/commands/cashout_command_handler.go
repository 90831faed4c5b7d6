package commands

import (
	"context"
	"time"
)

// CashoutCommandHandler zeroes a rider's balance into their cashout history:
// earnings drop to zero, total_cashout grows by the prior balance, and one
// CashoutEntry is appended. A rider with nothing to withdraw fails with
// rider.ErrNothingToCashout; no partial cashout exists.
type CashoutCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewCashoutCommandHandler creates a handler for rider cashout.
func NewCashoutCommandHandler(uowFactory RiderUoWFactory) CashoutCommandHandler {
	return CashoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cashout. Fails with a not-found error if no rider
// carries the email.
func (h CashoutCommandHandler) Handle(ctx context.Context, command CashoutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()

	courier, err := riderRepo.GetByEmail(ctx, command.RiderEmail())
	if err != nil {
		return err
	}

	if _, err = courier.Cashout(time.Now().UTC()); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, courier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
