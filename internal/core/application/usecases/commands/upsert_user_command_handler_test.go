package commands_test

import (
	"testing"
	"time"

	"parcelpilot/internal/core/application/usecases/commands"
	"parcelpilot/internal/core/domain/model/account"
	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpsertUserCommandHandler_Handle_NewAccount(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewUpsertUserCommand("Alice Rahman", "alice@example.com")
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockAccountUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetByEmail", ctx, "alice@example.com").
			Return(nil, errs.NewObjectNotFoundError("userEmail", "alice@example.com")).Once(),
		accountRepo.On("Add", ctx, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpsertUserCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, created)
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpsertUserCommandHandler_Handle_ExistingAccount(t *testing.T) {
	ctx := t.Context()
	registeredAt := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	existing, err := account.NewUser(kernel.NewUUID(), "Alice Rahman", "alice@example.com", registeredAt)
	require.NoError(t, err)

	cmd, err := commands.NewUpsertUserCommand("Alice Rahman", "alice@example.com")
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockAccountUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetByEmail", ctx, "alice@example.com").Return(existing, nil).Once(),
		accountRepo.On("Update", ctx, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpsertUserCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, existing.LastLoginAt().After(registeredAt))
	accountRepo.AssertNotCalled(t, "Add")
	accountRepo.AssertExpectations(t)
}

func TestUpsertUserCommandHandler_Handle_LookupError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewUpsertUserCommand("Alice Rahman", "alice@example.com")
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockAccountUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetByEmail", ctx, "alice@example.com").
			Return(nil, assert.AnError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpsertUserCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.False(t, created)
	accountRepo.AssertNotCalled(t, "Add")
	accountRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestNewUpsertUserCommand_Validation(t *testing.T) {
	t.Run("should reject empty email", func(t *testing.T) {
		_, err := commands.NewUpsertUserCommand("Alice Rahman", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("name is optional", func(t *testing.T) {
		cmd, err := commands.NewUpsertUserCommand("", "alice@example.com")
		require.NoError(t, err)
		assert.Empty(t, cmd.Name())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.UpsertUserCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrUpsertUserCommandIsNotConstructed)
	})
}
