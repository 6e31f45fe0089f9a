package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zulhafiz/wellness-events/models"
)

func TestVisibleTo(t *testing.T) {
	request := &models.BookingRequest{
		HRID:     1,
		HR:       models.User{ID: 1, Role: models.RoleHR, CompanyName: "Acme"},
		VendorID: 5,
	}

	cases := []struct {
		name   string
		caller models.User
		want   bool
	}{
		{"creator", models.User{ID: 1, Role: models.RoleHR, CompanyName: "Acme"}, true},
		{"same company hr", models.User{ID: 2, Role: models.RoleHR, CompanyName: "Acme"}, true},
		{"other company hr", models.User{ID: 3, Role: models.RoleHR, CompanyName: "Globex"}, false},
		{"assigned vendor", models.User{ID: 5, Role: models.RoleVendor}, true},
		{"other vendor", models.User{ID: 6, Role: models.RoleVendor}, false},
		{"unknown role", models.User{ID: 7, Role: "admin"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, visibleTo(request, &tc.caller))
		})
	}
}

func TestStatusForTransitionError(t *testing.T) {
	assert.Equal(t, 403, statusForTransitionError(models.ErrNotAssignedVendor))
	assert.Equal(t, 409, statusForTransitionError(models.ErrAlreadyResolved))
	assert.Equal(t, 400, statusForTransitionError(models.ErrDateNotProposed))
	assert.Equal(t, 400, statusForTransitionError(models.ErrRemarksRequired))
}
