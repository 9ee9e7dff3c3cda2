package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"risun-backend/models"
	"risun-backend/repository"
	"risun-backend/services"
)

// Register godoc
// @Summary Register an organization
// @Description Creates an organization account with a unique email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration details"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /register [post]
func (ctrl *Controller) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "All fields are required",
		})
		return
	}

	_, err := ctrl.AuthSvc.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			c.JSON(http.StatusBadRequest, models.APIResponse{
				Success: false,
				Error:   "Email already exists",
			})
		case errors.Is(err, repository.ErrInsertFailed):
			c.JSON(http.StatusInternalServerError, models.APIResponse{
				Success: false,
				Error:   "Failed to register user",
			})
		default:
			ctrl.Log.Errorf("Register failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.APIResponse{
				Success: false,
				Error:   "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Msg:     "Successfully registered",
	})
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials for the (email, organizationName) pair and issues a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /login [post]
func (ctrl *Controller) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "All fields are required",
		})
		return
	}

	org, err := ctrl.AuthSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOrganizationNotFound):
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "User not found",
			})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, models.APIResponse{
				Success: false,
				Error:   "Invalid credentials",
			})
		default:
			ctrl.Log.Errorf("Login failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.APIResponse{
				Success: false,
				Error:   "Internal server error",
			})
		}
		return
	}

	token, err := ctrl.JWT.GenerateToken(org)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Msg:     "Login successful",
		User: &models.UserIdentity{
			Email:            org.Email,
			OrganizationName: org.OrganizationName,
		},
		Token: token,
	})
}
