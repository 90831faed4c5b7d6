package commands_test

import (
	"testing"
	"time"

	"parcelpilot/internal/core/application/usecases/commands"
	"parcelpilot/internal/core/domain/model/account"
	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/core/domain/model/rider"
	"parcelpilot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewRiderCommandHandler_Handle_AcceptPromotesUser(t *testing.T) {
	ctx := t.Context()
	applicant := createTestRider(t)
	user, err := account.NewUser(kernel.NewUUID(), applicant.Name(), applicant.Email(), time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewReviewRiderCommand(applicant.ID(), rider.Accepted)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	accountRepo := new(MockAccountRepository)
	riderUoW := new(MockRiderAccountUoW)
	accountUoW := new(MockRiderAccountUoW)

	mock.InOrder(
		riderUoW.On("Begin", ctx).Return(nil).Once(),
		riderUoW.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, applicant.ID()).Return(applicant, nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		riderUoW.On("Commit", ctx).Return(nil).Once(),
		accountUoW.On("Begin", ctx).Return(nil).Once(),
		accountUoW.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetByEmail", ctx, applicant.Email()).Return(user, nil).Once(),
		accountRepo.On("Update", ctx, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		accountUoW.On("Commit", ctx).Return(nil).Once(),
	)
	riderUoW.On("Rollback", ctx).Return(nil).Once()
	accountUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRiderAccountUoWFactory)
	factory.On("Create").Return(riderUoW).Once()
	factory.On("Create").Return(accountUoW).Once()

	handler := commands.NewReviewRiderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, rider.Accepted, applicant.Status())
	assert.Equal(t, account.RoleRider, user.Role())
	riderRepo.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReviewRiderCommandHandler_Handle_RejectSkipsRoleSync(t *testing.T) {
	ctx := t.Context()
	applicant := createTestRider(t)

	cmd, err := commands.NewReviewRiderCommand(applicant.ID(), rider.Rejected)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockRiderAccountUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, applicant.ID()).Return(applicant, nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewRiderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, rider.Rejected, applicant.Status())
	uow.AssertNotCalled(t, "AccountRepository")
	factory.AssertExpectations(t)
}

func TestReviewRiderCommandHandler_Handle_AcceptWithoutAccount(t *testing.T) {
	ctx := t.Context()
	applicant := createTestRider(t)

	cmd, err := commands.NewReviewRiderCommand(applicant.ID(), rider.Accepted)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	accountRepo := new(MockAccountRepository)
	riderUoW := new(MockRiderAccountUoW)
	accountUoW := new(MockRiderAccountUoW)

	mock.InOrder(
		riderUoW.On("Begin", ctx).Return(nil).Once(),
		riderUoW.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, applicant.ID()).Return(applicant, nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		riderUoW.On("Commit", ctx).Return(nil).Once(),
		accountUoW.On("Begin", ctx).Return(nil).Once(),
		accountUoW.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetByEmail", ctx, applicant.Email()).
			Return(nil, errs.NewObjectNotFoundError("userEmail", applicant.Email())).Once(),
	)
	riderUoW.On("Rollback", ctx).Return(nil).Once()
	accountUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRiderAccountUoWFactory)
	factory.On("Create").Return(riderUoW).Once()
	factory.On("Create").Return(accountUoW).Once()

	handler := commands.NewReviewRiderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, rider.Accepted, applicant.Status())
	accountRepo.AssertNotCalled(t, "Update")
}

func TestReviewRiderCommandHandler_Handle_RoleSyncFailure(t *testing.T) {
	ctx := t.Context()
	applicant := createTestRider(t)
	user, err := account.NewUser(kernel.NewUUID(), applicant.Name(), applicant.Email(), time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewReviewRiderCommand(applicant.ID(), rider.Accepted)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	accountRepo := new(MockAccountRepository)
	riderUoW := new(MockRiderAccountUoW)
	accountUoW := new(MockRiderAccountUoW)

	mock.InOrder(
		riderUoW.On("Begin", ctx).Return(nil).Once(),
		riderUoW.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, applicant.ID()).Return(applicant, nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		riderUoW.On("Commit", ctx).Return(nil).Once(),
		accountUoW.On("Begin", ctx).Return(nil).Once(),
		accountUoW.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetByEmail", ctx, applicant.Email()).Return(user, nil).Once(),
		accountRepo.On("Update", ctx, mock.AnythingOfType("*account.User")).
			Return(assert.AnError).Once(),
	)
	riderUoW.On("Rollback", ctx).Return(nil).Once()
	accountUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRiderAccountUoWFactory)
	factory.On("Create").Return(riderUoW).Once()
	factory.On("Create").Return(accountUoW).Once()

	handler := commands.NewReviewRiderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	// The decision is already committed; only the sync is reported broken.
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRoleSyncFailed)
	assert.Equal(t, rider.Accepted, applicant.Status())
}

func TestNewReviewRiderCommand_Validation(t *testing.T) {
	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := commands.NewReviewRiderCommand(kernel.NewUUID(), rider.UnknownApprovalStatus)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.ReviewRiderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrReviewRiderCommandIsNotConstructed)
	})
}
