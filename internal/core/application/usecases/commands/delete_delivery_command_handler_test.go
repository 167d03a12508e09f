package commands_test

import (
	"testing"
	"time"

	"couriermanagement/internal/core/application/usecases/commands"
	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteDeliveryCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewDeleteDeliveryCommand(id)

		require.NoError(t, err)
		require.True(t, cmd.DeliveryID().IsEqual(id))
	})

	t.Run("zero-value id", func(t *testing.T) {
		_, err := commands.NewDeleteDeliveryCommand(kernel.UUID{})

		require.Error(t, err)
	})
}

func TestDeleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	existing := fixtureDelivery(t, deliveryID, kernel.NewUUID(), kernel.NewUUID(),
		fixtureDate(t, 30), fixtureWindow(t, 9, 12))

	cmd, err := commands.NewDeleteDeliveryCommand(deliveryID)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, deliveryID).Return(existing, nil).Once(),
		deliveryRepo.On("Remove", ctx, deliveryID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteDeliveryCommandHandler(factory, services.NewLifecycleGuard(12*time.Hour))
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteDeliveryCommandHandler_Handle_StatusLocked(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	existing := fixtureDelivery(t, deliveryID, kernel.NewUUID(), kernel.NewUUID(),
		fixtureDate(t, 30), fixtureWindow(t, 9, 12))
	require.NoError(t, existing.Start())

	cmd, err := commands.NewDeleteDeliveryCommand(deliveryID)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, deliveryID).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteDeliveryCommandHandler(factory, services.NewLifecycleGuard(12*time.Hour))
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrStatusLocked)
	deliveryRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteDeliveryCommandHandler_Handle_EditWindowClosed(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	existing := fixtureDelivery(t, deliveryID, kernel.NewUUID(), kernel.NewUUID(),
		fixtureDate(t, 0), fixtureWindow(t, 9, 12))

	cmd, err := commands.NewDeleteDeliveryCommand(deliveryID)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, deliveryID).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteDeliveryCommandHandler(factory, services.NewLifecycleGuard(12*time.Hour))
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrEditWindowClosed)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
