package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

const proposedDateCount = 3

var (
	ErrMissingFields     = errors.New("event type, vendor, proposed dates and location are required")
	ErrProposedDateCount = errors.New("must provide exactly 3 proposed dates")
	ErrDuplicateDates    = errors.New("proposed dates must be distinct")
	ErrNotAssignedVendor = errors.New("caller is not the assigned vendor")
	ErrAlreadyResolved   = errors.New("request has already been approved or rejected")
	ErrDateNotProposed   = errors.New("confirmed date must be one of the proposed dates")
	ErrRemarksRequired   = errors.New("remarks are required to reject")
)

type Location struct {
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
}

// BookingRequest is a wellness-event proposal from an HR user to a vendor.
// It starts Pending and moves exactly once to Approved or Rejected; the
// proposed dates are fixed at creation.
type BookingRequest struct {
	ID               uint                           `json:"id" gorm:"primaryKey"`
	HRID             uint                           `json:"hrId" gorm:"index"`
	HR               User                           `json:"hr" gorm:"foreignKey:HRID"`
	VendorID         uint                           `json:"vendorId" gorm:"index"`
	Vendor           User                           `json:"vendor" gorm:"foreignKey:VendorID"`
	EventTypeID      uint                           `json:"eventTypeId"`
	EventType        EventType                      `json:"eventType" gorm:"foreignKey:EventTypeID"`
	ProposedDates    datatypes.JSONSlice[time.Time] `json:"proposedDates" gorm:"type:jsonb"`
	ProposedLocation Location                       `json:"proposedLocation" gorm:"embedded;embeddedPrefix:proposed_location_"`
	Status           RequestStatus                  `json:"status" gorm:"index"`
	ConfirmedDate    *time.Time                     `json:"confirmedDate,omitempty"`
	Remarks          string                         `json:"remarks,omitempty"`
	CreatedAt        time.Time                      `json:"createdAt"`
	UpdatedAt        time.Time                      `json:"updatedAt"`
}

func (r *BookingRequest) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = StatusPending
	}
	return nil
}

// NewBookingRequest validates the proposal input and builds a Pending
// request owned by the given HR user.
func NewBookingRequest(hrID, vendorID, eventTypeID uint, dates []time.Time, loc Location) (*BookingRequest, error) {
	if vendorID == 0 || eventTypeID == 0 || len(dates) == 0 ||
		strings.TrimSpace(loc.Street) == "" || strings.TrimSpace(loc.PostalCode) == "" {
		return nil, ErrMissingFields
	}
	if len(dates) != proposedDateCount {
		return nil, ErrProposedDateCount
	}
	for i := 0; i < len(dates); i++ {
		for j := i + 1; j < len(dates); j++ {
			if dates[i].Equal(dates[j]) {
				return nil, ErrDuplicateDates
			}
		}
	}

	return &BookingRequest{
		HRID:             hrID,
		VendorID:         vendorID,
		EventTypeID:      eventTypeID,
		ProposedDates:    datatypes.NewJSONSlice(dates),
		ProposedLocation: loc,
		Status:           StatusPending,
	}, nil
}

// Approve confirms one of the proposed dates. Only the assigned vendor may
// approve, only while the request is still Pending, and only for an instant
// that exactly matches a proposed date.
func (r *BookingRequest) Approve(callerID uint, confirmedDate time.Time) error {
	if r.VendorID != callerID {
		return ErrNotAssignedVendor
	}
	if r.Status != StatusPending {
		return ErrAlreadyResolved
	}
	matched := false
	for _, d := range r.ProposedDates {
		if d.Equal(confirmedDate) {
			matched = true
			break
		}
	}
	if !matched {
		return ErrDateNotProposed
	}

	r.Status = StatusApproved
	r.ConfirmedDate = &confirmedDate
	return nil
}

// Reject declines the proposal with a reason. Same caller and state rules
// as Approve; remarks must be non-empty.
func (r *BookingRequest) Reject(callerID uint, remarks string) error {
	if r.VendorID != callerID {
		return ErrNotAssignedVendor
	}
	if r.Status != StatusPending {
		return ErrAlreadyResolved
	}
	if strings.TrimSpace(remarks) == "" {
		return ErrRemarksRequired
	}

	r.Status = StatusRejected
	r.Remarks = remarks
	return nil
}
