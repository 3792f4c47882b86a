package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kisaanlabs/kisaan-setu/internal/config"
	"github.com/kisaanlabs/kisaan-setu/internal/logger"
	"github.com/kisaanlabs/kisaan-setu/internal/mock"
	"github.com/kisaanlabs/kisaan-setu/internal/service"
	"github.com/kisaanlabs/kisaan-setu/internal/store"
	"github.com/kisaanlabs/kisaan-setu/internal/validators"
	"github.com/kisaanlabs/kisaan-setu/models"
)

func newMockedAuthService(kv *mock.MockKVStore, users *mock.MockUserRegistry) service.AuthService {
	storages := &store.Storages{KV: kv, Users: users}
	return service.NewAuthService(storages, validators.NewRegistrationValidator(), config.ClientApp{DefaultLanguage: "Hindi"}, logger.Nop())
}

func TestAuthService_Initialize_RegistryLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKVStore(ctrl)
	users := mock.NewMockUserRegistry(ctrl)

	loadErr := errors.New("database is locked")
	users.EXPECT().LoadOrSeed(gomock.Any()).Return(loadErr)

	auth := newMockedAuthService(kv, users)
	err := auth.Initialize(context.Background())

	require.ErrorIs(t, err, loadErr)
	assert.Equal(t, service.StateUninitialized, auth.State())

	// the failed initialize leaves the service not ready
	_, err = auth.SignIn(context.Background(), "Demo User", "123456")
	assert.ErrorIs(t, err, service.ErrNotReady)
}

func TestAuthService_Register_InsertFailureIsSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKVStore(ctrl)
	users := mock.NewMockUserRegistry(ctrl)

	users.EXPECT().LoadOrSeed(gomock.Any()).Return(nil)
	kv.EXPECT().Read(gomock.Any(), store.KeyCurrentUser).Return("", store.ErrKeyNotFound)

	users.EXPECT().ExistsByNameOrEmail("Asha Patel", "asha@farm.in").Return(false)
	insertErr := errors.New("disk I/O error")
	users.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(insertErr)

	auth := newMockedAuthService(kv, users)
	require.NoError(t, auth.Initialize(context.Background()))

	request := models.RegistrationRequest{
		Personal: models.PersonalInfo{
			Name:            "Asha Patel",
			Email:           "asha@farm.in",
			Phone:           "9876543210",
			Password:        "harvest1",
			ConfirmPassword: "harvest1",
		},
		Farm: models.FarmInfo{
			FarmName: "Sunrise Farm",
			FarmSize: "10 acres",
			Location: "Maharashtra, India",
			SoilType: "Black Soil",
		},
	}

	_, err := auth.Register(context.Background(), request)
	assert.ErrorIs(t, err, insertErr)
}
