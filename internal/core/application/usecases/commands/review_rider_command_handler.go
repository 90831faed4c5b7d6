package commands

import (
	"context"
	"errors"
	"fmt"

	"parcelpilot/internal/core/domain/model/account"
	"parcelpilot/internal/core/domain/model/rider"
	"parcelpilot/internal/pkg/errs"
)

// ErrRoleSyncFailed signals that the rider decision was committed but the
// user-role sync write did not land. The caller must check both entities.
var ErrRoleSyncFailed = errors.New("rider status updated but user role sync failed")

// ReviewRiderCommandHandler applies an admin's decision on a rider
// application. The rider write commits first; on acceptance the matching
// User's role is promoted to rider in a second, separate transaction. The
// two writes are deliberately independent — User and Rider remain two
// sources of truth for "is this person a rider" — and this handler is the
// documented sync point between them. A failure of the second write
// surfaces as ErrRoleSyncFailed rather than rolling back the decision.
type ReviewRiderCommandHandler struct {
	uowFactory RiderAccountUoWFactory
}

// NewReviewRiderCommandHandler creates a handler for application review.
func NewReviewRiderCommandHandler(uowFactory RiderAccountUoWFactory) ReviewRiderCommandHandler {
	return ReviewRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decision. Fails with a not-found error if the rider
// is absent. An accepted rider without a matching user account skips the
// role sync silently; the account may register later.
func (h ReviewRiderCommandHandler) Handle(ctx context.Context, command ReviewRiderCommand) error {
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

	applicant, err := riderRepo.Get(ctx, command.RiderID())
	if err != nil {
		return err
	}

	if err = applicant.SetStatus(command.Status()); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, applicant); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if command.Status() != rider.Accepted {
		return nil
	}

	return h.syncUserRole(ctx, applicant.Email())
}

// syncUserRole promotes the user sharing the rider's email to the rider
// role. Runs in its own transaction after the rider decision is durable.
func (h ReviewRiderCommandHandler) syncUserRole(ctx context.Context, email string) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRoleSyncFailed, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	user, err := accountRepo.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRoleSyncFailed, err)
	}

	if err = user.SetRole(account.RoleRider); err != nil {
		return fmt.Errorf("%w: %w", ErrRoleSyncFailed, err)
	}

	if err = accountRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrRoleSyncFailed, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRoleSyncFailed, err)
	}

	return nil
}
