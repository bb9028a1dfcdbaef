package controllers

import (
	"net/http"

	apperrors "shop-backend/common/errors"
	"shop-backend/middleware"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	auth AuthAPI
}

func NewUserController(auth AuthAPI) *UserController {
	return &UserController{auth: auth}
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// Profile returns the authenticated user's account.
func (uc *UserController) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	user, err := uc.auth.Profile(c.Request.Context(), userID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Current User", "user": user})
}

// UpdateProfile updates the authenticated user's name fields.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := uc.auth.UpdateProfile(c.Request.Context(), userID, req.FirstName, req.LastName, req.Username)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User data updated", "user": user})
}
