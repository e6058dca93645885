package office_test

import (
	"context"
	"errors"
	"testing"

	"geo-attend/internal/geo"
	"geo-attend/internal/office"
	officeerrors "geo-attend/internal/office/errors"
	officeMock "geo-attend/internal/office/mock"
	"geo-attend/internal/shared/apperror"
	"geo-attend/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr(f float64) *float64 { return &f }

func TestService_Save(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		req  office.SaveOfficeRequest
		want state.OfficeConfig
	}{
		{
			name: "explicit values",
			req: office.SaveOfficeRequest{
				Name: "HQ", Address: "1 Main St", Query: "hq downtown",
				Latitude: ptr(37.7749), Longitude: ptr(-122.4194), Radius: 150,
			},
			want: state.OfficeConfig{
				Name: "HQ", Address: "1 Main St",
				Location: geo.Location{Latitude: 37.7749, Longitude: -122.4194}, Radius: 150,
			},
		},
		{
			name: "defaults radius and address from query",
			req: office.SaveOfficeRequest{
				Name: " HQ ", Query: "Googleplex",
				Latitude: ptr(1), Longitude: ptr(2),
			},
			want: state.OfficeConfig{
				Name: "HQ", Address: "Googleplex",
				Location: geo.Location{Latitude: 1, Longitude: 2}, Radius: 200,
			},
		},
		{
			name: "address falls back to name",
			req: office.SaveOfficeRequest{
				Name: "HQ", Latitude: ptr(0), Longitude: ptr(0), Radius: 50,
			},
			want: state.OfficeConfig{
				Name: "HQ", Address: "HQ", Location: geo.Location{}, Radius: 50,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := officeMock.NewMockStore(ctrl)
			store.EXPECT().SaveOffice(ctx, tt.want).Return(state.UserState{IsConfigured: true, Office: &tt.want}, nil)

			resp, err := office.NewService(store, 200).Save(ctx, tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.want.Name, resp.Name)
			assert.Equal(t, tt.want.Address, resp.Address)
			assert.Equal(t, tt.want.Radius, resp.Radius)
			assert.Equal(t, tt.want.Location.String(), resp.Coordinates)
		})
	}
}

func TestService_SaveRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := officeMock.NewMockStore(ctrl)

	_, err := office.NewService(store, 200).Save(ctx, office.SaveOfficeRequest{Name: "  ", Latitude: ptr(0), Longitude: ptr(0)})
	assert.ErrorIs(t, err, apperror.RequiredField("Name"))

	_, err = office.NewService(store, 200).Save(ctx, office.SaveOfficeRequest{Name: "HQ", Longitude: ptr(0)})
	assert.ErrorIs(t, err, apperror.RequiredField("Latitude"))

	_, err = office.NewService(store, 0).Save(ctx, office.SaveOfficeRequest{Name: "HQ", Latitude: ptr(0), Longitude: ptr(0)})
	assert.ErrorIs(t, err, officeerrors.ErrInvalidRadius)
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := officeMock.NewMockStore(ctrl)
		cfg := state.OfficeConfig{Name: "HQ", Address: "x", Location: geo.Location{Latitude: 1, Longitude: 2}, Radius: 200}
		store.EXPECT().Load(ctx).Return(state.UserState{IsConfigured: true, Office: &cfg}, nil)

		resp, err := office.NewService(store, 200).Get(ctx)

		require.NoError(t, err)
		assert.Equal(t, "HQ", resp.Name)
		assert.Equal(t, "1.0000, 2.0000", resp.Coordinates)
	})

	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := officeMock.NewMockStore(ctrl)
		store.EXPECT().Load(ctx).Return(state.DefaultState(), nil)

		_, err := office.NewService(store, 200).Get(ctx)

		assert.ErrorIs(t, err, officeerrors.ErrOfficeNotConfigured)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := officeMock.NewMockStore(ctrl)
		store.EXPECT().Load(ctx).Return(state.UserState{}, errors.New("redis down"))

		_, err := office.NewService(store, 200).Get(ctx)

		assert.ErrorIs(t, err, apperror.ErrStorageUnavailable)
	})
}
