package controllers

import (
	"net/http"

	"github.com/Kashishghuliani/xeno-fde/models"
	"github.com/Kashishghuliani/xeno-fde/repository"
	"github.com/Kashishghuliani/xeno-fde/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RegisterInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	TenantName string `json:"tenantName" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	users   repository.UserRepo
	tenants repository.TenantRepo
}

func NewAuthController(users repository.UserRepo, tenants repository.TenantRepo) *AuthController {
	return &AuthController{users: users, tenants: tenants}
}

// Register creates a tenant and its admin user in one step.
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	existing, err := ac.users.FindByEmail(input.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if existing != nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	}

	tenant := models.Tenant{Name: input.TenantName}
	if err := ac.tenants.Create(&tenant); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create tenant")
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		Email:        input.Email,
		PasswordHash: hash,
		IsAdmin:      true,
		TenantID:     tenant.ID,
	}
	if err := ac.users.Create(&user); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), tenant.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":    token,
		"tenantId": tenant.ID,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := ac.users.FindByEmail(input.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if user == nil || !utils.CheckPasswordHash(input.Password, user.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.TenantID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"tenantId": user.TenantID,
	})
}

func (ac *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	id, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	user, err := ac.users.FindByID(id)
	if err != nil || user == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"isAdmin":  user.IsAdmin,
			"tenantId": user.TenantID,
		},
	})
}
