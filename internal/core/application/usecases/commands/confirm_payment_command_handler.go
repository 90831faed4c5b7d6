package commands

import (
	"context"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/core/domain/model/payment"
)

// ConfirmPaymentCommandHandler records a completed payment: the immutable
// receipt is inserted and the parcel flips to paid with a log append. Both
// writes run in one unit of work, replacing the source system's best-effort
// write ordering with a real transaction.
type ConfirmPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmPaymentCommandHandler(uowFactory PaymentUoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation. Fails with a not-found error if the
// parcel is absent; a parcel already paid rejects the duplicate.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, command ConfirmPaymentCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	paymentRepo := uow.PaymentRepository()

	aggregate, err := parcelRepo.Get(ctx, command.ParcelID())
	if err != nil {
		return err
	}

	receipt, err := payment.NewPayment(
		kernel.NewUUID(),
		aggregate.ID(),
		aggregate.TrackingID(),
		command.Amount(),
		command.Currency(),
		command.PayerEmail(),
		command.TransactionID(),
		command.Method(),
		command.PaidAt(),
	)
	if err != nil {
		return err
	}

	if err = aggregate.ConfirmPayment(command.Amount(), command.Method(), command.PaidAt()); err != nil {
		return err
	}

	if err = paymentRepo.Add(ctx, receipt); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
