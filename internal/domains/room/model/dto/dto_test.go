package dto_test

import (
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/shared/validator"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromModels(t *testing.T) {
	rooms := []model.Room{
		{ID: 1, Type: "Standard", Price: 100},
		{ID: 2, Type: "Standard", Price: 100, NeedsCleaning: true},
	}

	res := dto.FromModels(rooms)

	assert.Len(t, res, 2)
	assert.Equal(t, model.StatusAvailable, res[0].Status)
	assert.Equal(t, model.StatusNeedsCleaning, res[1].Status)
	assert.True(t, res[1].NeedsCleaning)
}

func TestSetFlagRequestValidation(t *testing.T) {
	yes := true

	tests := []struct {
		name    string
		req     dto.SetFlagRequest
		wantErr bool
	}{
		{name: "valid", req: dto.SetFlagRequest{Flag: "needsCleaning", Value: &yes}},
		{name: "unknown flag", req: dto.SetFlagRequest{Flag: "dirty", Value: &yes}, wantErr: true},
		{name: "missing value", req: dto.SetFlagRequest{Flag: "occupied"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestUpdateRoomRequestToPatch(t *testing.T) {
	no := false
	req := dto.UpdateRoomRequest{CheckedOut: &no}

	patch := req.ToPatch()

	assert.Nil(t, patch.Occupied)
	assert.Nil(t, patch.NeedsCleaning)
	assert.Equal(t, &no, patch.CheckedOut)
}
