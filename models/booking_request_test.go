package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	d1 = time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	d2 = time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	d3 = time.Date(2026, 9, 16, 14, 30, 0, 0, time.UTC)
)

func sampleLocation() Location {
	return Location{Street: "1 Rd", PostalCode: "111"}
}

func sampleRequest(t *testing.T) *BookingRequest {
	t.Helper()
	request, err := NewBookingRequest(1, 2, 3, []time.Time{d1, d2, d3}, sampleLocation())
	assert.NoError(t, err)
	return request
}

func TestNewBookingRequest_Valid(t *testing.T) {
	request := sampleRequest(t)

	assert.Equal(t, StatusPending, request.Status)
	assert.Nil(t, request.ConfirmedDate)
	assert.Empty(t, request.Remarks)
	assert.Len(t, request.ProposedDates, 3)
	assert.Equal(t, uint(1), request.HRID)
	assert.Equal(t, uint(2), request.VendorID)
}

func TestNewBookingRequest_MissingFields(t *testing.T) {
	dates := []time.Time{d1, d2, d3}

	cases := []struct {
		name        string
		vendorID    uint
		eventTypeID uint
		dates       []time.Time
		location    Location
	}{
		{"no vendor", 0, 3, dates, sampleLocation()},
		{"no event type", 2, 0, dates, sampleLocation()},
		{"no dates", 2, 3, nil, sampleLocation()},
		{"no street", 2, 3, dates, Location{PostalCode: "111"}},
		{"no postal code", 2, 3, dates, Location{Street: "1 Rd"}},
		{"blank street", 2, 3, dates, Location{Street: "   ", PostalCode: "111"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			request, err := NewBookingRequest(1, tc.vendorID, tc.eventTypeID, tc.dates, tc.location)
			assert.ErrorIs(t, err, ErrMissingFields)
			assert.Nil(t, request)
		})
	}
}

func TestNewBookingRequest_DateCount(t *testing.T) {
	request, err := NewBookingRequest(1, 2, 3, []time.Time{d1, d2}, sampleLocation())
	assert.ErrorIs(t, err, ErrProposedDateCount)
	assert.Nil(t, request)

	request, err = NewBookingRequest(1, 2, 3, []time.Time{d1, d2, d3, d1.AddDate(0, 0, 7)}, sampleLocation())
	assert.ErrorIs(t, err, ErrProposedDateCount)
	assert.Nil(t, request)
}

func TestNewBookingRequest_DuplicateDates(t *testing.T) {
	request, err := NewBookingRequest(1, 2, 3, []time.Time{d1, d2, d1}, sampleLocation())
	assert.ErrorIs(t, err, ErrDuplicateDates)
	assert.Nil(t, request)
}

func TestApprove_Success(t *testing.T) {
	request := sampleRequest(t)

	err := request.Approve(2, d2)

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, request.Status)
	assert.NotNil(t, request.ConfirmedDate)
	assert.True(t, request.ConfirmedDate.Equal(d2))
}

func TestApprove_DateNotProposed(t *testing.T) {
	request := sampleRequest(t)
	d4 := time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC)

	err := request.Approve(2, d4)

	assert.ErrorIs(t, err, ErrDateNotProposed)
	assert.Equal(t, StatusPending, request.Status)
	assert.Nil(t, request.ConfirmedDate)
}

func TestApprove_SameInstantDifferentZone(t *testing.T) {
	request := sampleRequest(t)
	kl := time.FixedZone("MYT", 8*60*60)

	// Same instant expressed in another zone still matches.
	err := request.Approve(2, d2.In(kl))

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, request.Status)
}

func TestApprove_NotAssignedVendor(t *testing.T) {
	request := sampleRequest(t)

	err := request.Approve(99, d2)

	assert.ErrorIs(t, err, ErrNotAssignedVendor)
	assert.Equal(t, StatusPending, request.Status)
	assert.Nil(t, request.ConfirmedDate)
}

func TestApprove_AlreadyResolved(t *testing.T) {
	request := sampleRequest(t)
	assert.NoError(t, request.Approve(2, d1))

	err := request.Approve(2, d2)

	assert.ErrorIs(t, err, ErrAlreadyResolved)
	assert.True(t, request.ConfirmedDate.Equal(d1))
}

func TestReject_Success(t *testing.T) {
	request := sampleRequest(t)

	err := request.Reject(2, "Fully booked that week")

	assert.NoError(t, err)
	assert.Equal(t, StatusRejected, request.Status)
	assert.Equal(t, "Fully booked that week", request.Remarks)
	assert.Nil(t, request.ConfirmedDate)
}

func TestReject_EmptyRemarks(t *testing.T) {
	request := sampleRequest(t)

	assert.ErrorIs(t, request.Reject(2, ""), ErrRemarksRequired)
	assert.ErrorIs(t, request.Reject(2, "   "), ErrRemarksRequired)
	assert.Equal(t, StatusPending, request.Status)
}

func TestReject_NotAssignedVendor(t *testing.T) {
	request := sampleRequest(t)

	err := request.Reject(99, "not my gig")

	assert.ErrorIs(t, err, ErrNotAssignedVendor)
	assert.Equal(t, StatusPending, request.Status)
}

func TestReject_AfterApprove(t *testing.T) {
	request := sampleRequest(t)
	assert.NoError(t, request.Approve(2, d3))

	err := request.Reject(2, "changed my mind")

	assert.ErrorIs(t, err, ErrAlreadyResolved)
	assert.Equal(t, StatusApproved, request.Status)
	assert.Empty(t, request.Remarks)
}
