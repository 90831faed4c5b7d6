package commands_test

import (
	"testing"

	"parcelpilot/internal/core/application/usecases/commands"
	"parcelpilot/internal/core/domain/model/rider"
	"parcelpilot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCashoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testRider := createTestRider(t)
	require.NoError(t, testRider.Accrue(50))

	cmd, err := commands.NewCashoutCommand(testRider.Email())
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockRiderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("GetByEmail", ctx, testRider.Email()).Return(testRider, nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCashoutCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, testRider.Earnings())
	assert.InDelta(t, 50.0, testRider.TotalCashout(), 1e-9)
	assert.Len(t, testRider.Cashouts(), 1)
	riderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCashoutCommandHandler_Handle_NothingToCashout(t *testing.T) {
	ctx := t.Context()
	testRider := createTestRider(t) // empty ledger

	cmd, err := commands.NewCashoutCommand(testRider.Email())
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockRiderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("GetByEmail", ctx, testRider.Email()).Return(testRider, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCashoutCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, rider.ErrNothingToCashout)
	riderRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestCashoutCommandHandler_Handle_RiderNotFound(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCashoutCommand("ghost@example.com")
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockRiderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("GetByEmail", ctx, "ghost@example.com").
			Return(nil, errs.NewObjectNotFoundError("riderEmail", "ghost@example.com")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCashoutCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewCashoutCommand_Validation(t *testing.T) {
	t.Run("should reject empty email", func(t *testing.T) {
		_, err := commands.NewCashoutCommand("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CashoutCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCashoutCommandIsNotConstructed)
	})
}
