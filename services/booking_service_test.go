package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops-backend/apperrors"
	"hotelops-backend/models"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestIntervalsOverlap(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"disjoint before", 1, 3, 5, 8, false},
		{"disjoint after", 10, 12, 5, 8, false},
		{"touching endpoints count", 1, 5, 5, 8, true},
		{"contained", 6, 7, 5, 8, true},
		{"containing", 4, 9, 5, 8, true},
		{"partial left", 3, 6, 5, 8, true},
		{"partial right", 7, 10, 5, 8, true},
		{"identical", 5, 8, 5, 8, true},
	}

	for _, tc := range cases {
		got := IntervalsOverlap(day(tc.aStart), day(tc.aEnd), day(tc.bStart), day(tc.bEnd))
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func validCheckIn() CheckInInput {
	return CheckInInput{
		GuestName:  "A Guest",
		RoomNumber: "101",
		CheckIn:    day(1),
		CheckOut:   day(3),
	}
}

func TestCheckInInput_Validate(t *testing.T) {
	in := validCheckIn()
	require.NoError(t, in.validate())

	cases := []struct {
		name  string
		tweak func(*CheckInInput)
	}{
		{"missing guest name", func(in *CheckInInput) { in.GuestName = "  " }},
		{"missing room number", func(in *CheckInInput) { in.RoomNumber = "" }},
		{"missing check-in", func(in *CheckInInput) { in.CheckIn = time.Time{} }},
		{"missing check-out", func(in *CheckInInput) { in.CheckOut = time.Time{} }},
		{"check-out before check-in", func(in *CheckInInput) { in.CheckIn, in.CheckOut = day(3), day(1) }},
	}

	for _, tc := range cases {
		in := validCheckIn()
		tc.tweak(&in)
		err := in.validate()
		require.Error(t, err, tc.name)
		assert.True(t, apperrors.IsValidation(err), tc.name)
	}
}

func TestRoomConflictReason(t *testing.T) {
	cases := []struct {
		name   string
		room   models.Room
		reason string
	}{
		{"available room", models.Room{RoomNumber: "101", Active: true}, ""},
		{"inactive room", models.Room{RoomNumber: "101", Active: false}, "room 101 is not active"},
		{"booked room", models.Room{RoomNumber: "201", Active: true, Booked: true}, "room 201 is already booked"},
		{"inactive wins over booked", models.Room{RoomNumber: "301", Active: false, Booked: true}, "room 301 is not active"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.reason, roomConflictReason(&tc.room), tc.name)
	}
}

func TestCheckInInput_SameDayStayIsValid(t *testing.T) {
	in := validCheckIn()
	in.CheckOut = in.CheckIn
	assert.NoError(t, in.validate())
}
