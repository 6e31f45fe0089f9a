package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/zulhafiz/wellness-events/db"
	"github.com/zulhafiz/wellness-events/models"
	"github.com/zulhafiz/wellness-events/utils"
)

// currentUser loads the authenticated caller set by the JWT middleware.
func currentUser(c *fiber.Ctx) (*models.User, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, errors.New("user ID not found in context")
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// visibleTo reports whether the caller may see the request: the assigned
// vendor, or any HR user of the owning HR's company. Requires r.HR to be
// preloaded.
func visibleTo(r *models.BookingRequest, caller *models.User) bool {
	switch caller.Role {
	case models.RoleVendor:
		return r.VendorID == caller.ID
	case models.RoleHR:
		return r.HR.CompanyName == caller.CompanyName
	}
	return false
}

func expanded() *gorm.DB {
	return db.DB.Preload("HR").Preload("Vendor").Preload("EventType")
}

// CreateBookingRequest handles POST /wellness-events. The caller becomes
// the owning HR reference.
func CreateBookingRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	type CreateInput struct {
		EventTypeID      uint            `json:"eventType"`
		VendorID         uint            `json:"vendor"`
		ProposedDates    []time.Time     `json:"proposedDates"`
		ProposedLocation models.Location `json:"proposedLocation"`
	}

	input := new(CreateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse JSON",
			Error:   err.Error(),
		})
	}

	request, err := models.NewBookingRequest(userID, input.VendorID, input.EventTypeID, input.ProposedDates, input.ProposedLocation)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	if err := db.DB.Create(request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking request",
			Error:   err.Error(),
		})
	}

	if err := expanded().First(request, request.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load booking request",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": request})
}

// GetBookingRequests handles GET /wellness-events. Vendors see requests
// assigned to them; HR users see every request owned by their company.
func GetBookingRequests(c *fiber.Ctx) error {
	caller, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}

	query := expanded()
	switch caller.Role {
	case models.RoleVendor:
		query = query.Where("vendor_id = ?", caller.ID)
	case models.RoleHR:
		var hrIDs []uint
		if err := db.DB.Model(&models.User{}).
			Where("role = ? AND company_name = ?", models.RoleHR, caller.CompanyName).
			Pluck("id", &hrIDs).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to resolve company users",
				Error:   err.Error(),
			})
		}
		query = query.Where("hr_id IN ?", hrIDs)
	default:
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You don't have permission to perform this action",
		})
	}

	var requests []models.BookingRequest
	if err := query.Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch booking requests",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"data": requests})
}

// GetBookingRequest handles GET /wellness-events/:id. The same visibility
// rule as the list endpoint applies; requests outside the caller's scope
// read as not found.
func GetBookingRequest(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid request ID",
		})
	}

	caller, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}

	var request models.BookingRequest
	if err := expanded().First(&request, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking request not found",
		})
	}

	if !visibleTo(&request, caller) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking request not found",
		})
	}

	return c.JSON(fiber.Map{"data": request})
}

// ApproveBookingRequest handles PATCH /wellness-events/:id/approve.
func ApproveBookingRequest(c *fiber.Ctx) error {
	type ApproveInput struct {
		ConfirmedDate *time.Time `json:"confirmedDate"`
	}

	input := new(ApproveInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse JSON",
			Error:   err.Error(),
		})
	}
	if input.ConfirmedDate == nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: models.ErrDateNotProposed.Error(),
		})
	}

	return resolveBookingRequest(c, func(request *models.BookingRequest, callerID uint) error {
		return request.Approve(callerID, *input.ConfirmedDate)
	}, func(request *models.BookingRequest) map[string]interface{} {
		return map[string]interface{}{
			"status":         request.Status,
			"confirmed_date": request.ConfirmedDate,
		}
	})
}

// RejectBookingRequest handles PATCH /wellness-events/:id/reject.
func RejectBookingRequest(c *fiber.Ctx) error {
	type RejectInput struct {
		Remarks string `json:"remarks"`
	}

	input := new(RejectInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse JSON",
			Error:   err.Error(),
		})
	}

	return resolveBookingRequest(c, func(request *models.BookingRequest, callerID uint) error {
		return request.Reject(callerID, input.Remarks)
	}, func(request *models.BookingRequest) map[string]interface{} {
		return map[string]interface{}{
			"status":  request.Status,
			"remarks": request.Remarks,
		}
	})
}

// resolveBookingRequest runs a vendor transition (approve or reject) and
// persists it with a status-guarded update so that two racing resolutions
// cannot both win: the update only applies while the row is still Pending,
// and a lost race surfaces as a Conflict.
func resolveBookingRequest(c *fiber.Ctx, transition func(*models.BookingRequest, uint) error, changes func(*models.BookingRequest) map[string]interface{}) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid request ID",
		})
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	var request models.BookingRequest
	if err := db.DB.First(&request, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking request not found",
		})
	}

	if err := transition(&request, userID); err != nil {
		return c.Status(statusForTransitionError(err)).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	result := db.DB.Model(&models.BookingRequest{}).
		Where("id = ? AND status = ?", request.ID, models.StatusPending).
		Updates(changes(&request))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update booking request",
			Error:   result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: models.ErrAlreadyResolved.Error(),
		})
	}

	if err := expanded().First(&request, request.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load booking request",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"data": request})
}

func statusForTransitionError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotAssignedVendor):
		return fiber.StatusForbidden
	case errors.Is(err, models.ErrAlreadyResolved):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}
