package commands_test

import (
	"testing"

	"couriermanagement/internal/core/application/usecases/commands"
	"couriermanagement/internal/core/domain/model/delivery"
	"couriermanagement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartDueDeliveriesCommandHandler_Handle_StartsAllDue(t *testing.T) {
	ctx := t.Context()
	first := fixtureDelivery(t, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		fixtureDate(t, 0), fixtureWindow(t, 9, 12))
	second := fixtureDelivery(t, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		fixtureDate(t, 0), fixtureWindow(t, 10, 14))

	deliveryRepo := new(MockDeliveryRepository)
	deliveryRepo.On("GetAllDue", ctx, mock.AnythingOfType("time.Time")).
		Return([]*delivery.Delivery{first, second}, nil).Once()
	deliveryRepo.On("Update", ctx, first).Return(nil).Once()
	deliveryRepo.On("Update", ctx, second).Return(nil).Once()

	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartDueDeliveriesCommandHandler(factory)
	started, err := h.Handle(ctx, commands.NewStartDueDeliveriesCommand())

	require.NoError(t, err)
	require.Equal(t, 2, started)
	require.Equal(t, delivery.InProgress, first.Status())
	require.Equal(t, delivery.InProgress, second.Status())
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartDueDeliveriesCommandHandler_Handle_NothingDue(t *testing.T) {
	ctx := t.Context()

	deliveryRepo := new(MockDeliveryRepository)
	deliveryRepo.On("GetAllDue", ctx, mock.AnythingOfType("time.Time")).
		Return([]*delivery.Delivery{}, nil).Once()

	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartDueDeliveriesCommandHandler(factory)
	started, err := h.Handle(ctx, commands.NewStartDueDeliveriesCommand())

	require.NoError(t, err)
	require.Equal(t, 0, started)

	var cmd commands.StartDueDeliveriesCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrStartDueDeliveriesCommandIsNotConstructed)
}
