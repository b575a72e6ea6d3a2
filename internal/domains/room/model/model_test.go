package model_test

import (
	"hotel/internal/domains/room/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestRoomStatusPriority(t *testing.T) {
	tests := []struct {
		name     string
		room     model.Room
		expected model.Status
	}{
		{name: "no flags", room: model.Room{}, expected: model.StatusAvailable},
		{name: "checked out only", room: model.Room{CheckedOut: true}, expected: model.StatusCheckedOut},
		{name: "needs cleaning beats checked out", room: model.Room{NeedsCleaning: true, CheckedOut: true}, expected: model.StatusNeedsCleaning},
		{name: "occupied beats everything", room: model.Room{Occupied: true, NeedsCleaning: true, CheckedOut: true}, expected: model.StatusOccupied},
		{name: "occupied and needs cleaning", room: model.Room{Occupied: true, NeedsCleaning: true}, expected: model.StatusOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.room.Status())
			assert.Equal(t, tt.expected == model.StatusAvailable, tt.room.Available())
		})
	}
}

func TestRoomSetFlag(t *testing.T) {
	room := model.Room{ID: 1}

	assert.NoError(t, room.SetFlag(model.FlagNeedsCleaning, true))
	assert.True(t, room.NeedsCleaning)
	assert.False(t, room.Occupied)
	assert.False(t, room.CheckedOut)

	assert.NoError(t, room.SetFlag(model.FlagOccupied, true))
	assert.NoError(t, room.SetFlag(model.FlagNeedsCleaning, false))
	assert.True(t, room.Occupied)
	assert.False(t, room.NeedsCleaning)

	assert.ErrorIs(t, room.SetFlag("broken", true), model.ErrUnknownFlag)
}

func TestRoomReset(t *testing.T) {
	room := model.Room{ID: 2, Occupied: true, NeedsCleaning: true, CheckedOut: true}
	room.Reset()

	assert.False(t, room.Occupied)
	assert.False(t, room.NeedsCleaning)
	assert.False(t, room.CheckedOut)
	assert.Equal(t, 2, room.ID)
}

func TestPatchApply(t *testing.T) {
	room := model.Room{Occupied: true, CheckedOut: true}

	patch := model.Patch{NeedsCleaning: boolPtr(true), Occupied: boolPtr(false)}
	assert.False(t, patch.Empty())

	patch.Apply(&room)

	assert.False(t, room.Occupied)
	assert.True(t, room.NeedsCleaning)
	assert.True(t, room.CheckedOut, "untouched flags keep their value")

	assert.True(t, model.Patch{}.Empty())
}

func TestSeedRooms(t *testing.T) {
	rooms := model.SeedRooms()

	assert.Len(t, rooms, 4)

	for i, room := range rooms {
		assert.Equal(t, i+1, room.ID)
		assert.Equal(t, model.StatusAvailable, room.Status())
	}

	assert.Equal(t, 100.0, rooms[0].Price)
	assert.Equal(t, "Deluxe", rooms[3].Type)
	assert.Equal(t, 200.0, rooms[3].Price)
}
