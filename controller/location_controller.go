package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"risun-backend/middelware"
	"risun-backend/models"
	"risun-backend/repository"
)

// callerEmail resolves the caller's email, preferring the verified token
// identity over the client-supplied header.
func callerEmail(c *gin.Context) string {
	if email := c.GetString(middelware.ContextEmailKey); email != "" {
		return email
	}
	// Header lookup is case-insensitive, covers User-Email and user-email.
	return c.GetHeader("User-Email")
}

// AddLocation godoc
// @Summary Add a location
// @Description Saves a monitoring location for the caller's organization
// @Tags locations
// @Accept json
// @Produce json
// @Param request body models.AddLocationRequest true "Location details"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /visualizations [post]
func (ctrl *Controller) AddLocation(c *gin.Context) {
	var req models.AddLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "All fields are required",
		})
		return
	}

	if err := ctrl.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "All fields are required",
		})
		return
	}

	// The body names the owning organization; the verified token identity
	// only fills in when the body leaves email out.
	email := req.Email
	if email == "" {
		email = callerEmail(c)
	}
	if email == "" {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "All fields are required",
		})
		return
	}

	_, err := ctrl.LocSvc.AddLocation(c.Request.Context(), email, &req)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Organization not found",
			})
			return
		}
		ctrl.Log.Errorf("Add location failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to add location",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Msg:     "Location added successfully",
	})
}

// ListLocations godoc
// @Summary List locations
// @Description Returns every saved location of the caller's organization
// @Tags locations
// @Produce json
// @Param User-Email header string false "Email of the registered organization"
// @Success 200 {object} models.ListLocationsResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /visualizations [get]
func (ctrl *Controller) ListLocations(c *gin.Context) {
	email := callerEmail(c)
	if email == "" {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Email is required",
		})
		return
	}

	locations, err := ctrl.LocSvc.ListLocations(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Organization not found",
			})
			return
		}
		ctrl.Log.Errorf("List locations failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to fetch locations",
		})
		return
	}

	c.JSON(http.StatusOK, models.ListLocationsResponse{
		Success:   true,
		Locations: locations,
	})
}

// DeleteLocation godoc
// @Summary Delete a location
// @Description Removes one location matching the name within the caller's organization
// @Tags locations
// @Produce json
// @Param User-Email header string false "Email of the registered organization"
// @Param location_name query string true "Name of the location to delete"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /visualizations [delete]
func (ctrl *Controller) DeleteLocation(c *gin.Context) {
	email := callerEmail(c)
	if email == "" {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Email is required",
		})
		return
	}

	locationName := c.Query("location_name")
	if locationName == "" {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Location name is required",
		})
		return
	}

	err := ctrl.LocSvc.DeleteLocation(c.Request.Context(), email, locationName)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOrganizationNotFound):
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Organization not found",
			})
		case errors.Is(err, repository.ErrLocationNotFound):
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Location not found",
			})
		default:
			ctrl.Log.Errorf("Delete location failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.APIResponse{
				Success: false,
				Error:   "Failed to delete location",
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Msg:     "Location deleted successfully",
	})
}
