package service

import (
	"context"
	"testing"

	"github.com/ahamedrahman2000/njv-travels/internal/infrastructure/memory"
	"github.com/ahamedrahman2000/njv-travels/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleCRUD(t *testing.T) {
	svc := NewVehicleService(memory.NewStore().Vehicles())
	ctx := context.Background()

	v, err := svc.CreateVehicle(ctx, " TN 01 AB 1234 ")
	require.NoError(t, err)
	assert.Equal(t, "TN 01 AB 1234", v.VehicleName)

	_, err = svc.CreateVehicle(ctx, "tn 01 ab 1234")
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))

	_, err = svc.CreateVehicle(ctx, "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	updated, err := svc.UpdateVehicle(ctx, v.ID, "TN 01 AB 9999")
	require.NoError(t, err)
	assert.Equal(t, "TN 01 AB 9999", updated.VehicleName)

	require.NoError(t, svc.DeleteVehicle(ctx, v.ID))
	err = svc.DeleteVehicle(ctx, v.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	list, err := svc.ListVehicles(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDriverCRUD(t *testing.T) {
	svc := NewDriverService(memory.NewStore().Drivers())
	ctx := context.Background()

	d, err := svc.CreateDriver(ctx, &DriverInput{DriverName: "Kumar", DriverMobile: "9000000001"})
	require.NoError(t, err)

	_, err = svc.CreateDriver(ctx, &DriverInput{DriverMobile: "9000000002"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	updated, err := svc.UpdateDriver(ctx, d.ID, &DriverInput{DriverMobile: "9000000003"})
	require.NoError(t, err)
	assert.Equal(t, "Kumar", updated.DriverName)
	assert.Equal(t, "9000000003", updated.DriverMobile)

	_, err = svc.GetDriver(ctx, uuid.New())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	list, err := svc.ListDrivers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
