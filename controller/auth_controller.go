package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Ebesoh-Adrian/ADForexPre/auth"
	localCache "github.com/Ebesoh-Adrian/ADForexPre/cache"
	"github.com/Ebesoh-Adrian/ADForexPre/customerrors"
	"github.com/Ebesoh-Adrian/ADForexPre/database"
	"github.com/Ebesoh-Adrian/ADForexPre/middleware"
	"github.com/Ebesoh-Adrian/ADForexPre/model"
	"github.com/Ebesoh-Adrian/ADForexPre/service"
	"github.com/Ebesoh-Adrian/ADForexPre/validator"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	userSvc      service.UserService
	otpSvc       service.OtpService
	isProduction bool
}

func NewAuthController(s service.UserService, otpSvc service.OtpService, isProduction bool) *AuthController {
	return &AuthController{
		userSvc:      s,
		otpSvc:       otpSvc,
		isProduction: isProduction,
	}
}

func (ctrl *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", ctrl.Login)
		authGroup.POST("/signup", ctrl.Signup)
		authGroup.POST("/verify-otp", ctrl.VerifyOtp)

		protected := authGroup.Group("/")
		protected.Use(middleware.AuthMiddleware(ctrl.isProduction))
		{
			protected.POST("/logout", ctrl.Logout)
			protected.GET("/me", ctrl.GetMe)
		}
	}
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var req model.UserDto
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	user, err := ctrl.userSvc.GetUser(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(user.Password)), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	userDto := user.ToDto()
	token, err := auth.GenerateToken(userDto)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctrl.setAuthCookie(c, token, int(auth.SessionTTL.Seconds()))
	ctrl.mirrorSession(userDto)
	c.JSON(http.StatusOK, userDto)
}

// Signup validates the payload, parks the pending user and emails an
// OTP. The account is only created once the OTP is verified.
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req model.SignupDto
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if issues := validator.SignupSchema.Validate(&req); issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signup details"})
		return
	}

	existing, err := ctrl.userSvc.GetUser(c.Request.Context(), req.Email)
	if err != nil && !errors.Is(err, customerrors.ErrUserNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to process request at this time"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": customerrors.ErrUserAlreadyExists.Error()})
		return
	}

	if err := ctrl.otpSvc.SendSignUpOtp(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrDuplicateOtp) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification email"})
		return
	}

	localCache.PendingUserCache.Set(req.Email, req, cache.DefaultExpiration)
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// VerifyOtp completes the signup: on a valid code the pending user is
// materialized and a session cookie issued.
func (ctrl *AuthController) VerifyOtp(c *gin.Context) {
	var req model.VerifyOtpDto
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if ok, err := ctrl.otpSvc.VerifyOtp(req.Email, req.Otp); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	val, found := localCache.PendingUserCache.Get(req.Email)
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signup session expired. Please sign up again"})
		return
	}
	pending := val.(model.SignupDto)

	user, err := ctrl.userSvc.CreateUser(c.Request.Context(), model.UserDto{
		Email:    pending.Email,
		Password: pending.Password,
		Name:     pending.Name,
	})
	if err != nil {
		if errors.Is(err, customerrors.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	localCache.PendingUserCache.Delete(req.Email)

	userDto := user.ToDto()
	token, err := auth.GenerateToken(userDto)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctrl.setAuthCookie(c, token, int(auth.SessionTTL.Seconds()))
	ctrl.mirrorSession(userDto)
	c.JSON(http.StatusCreated, userDto)
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	if user, ok := middleware.GetUser(c); ok && database.RedisHelper != nil {
		database.RedisHelper.Delete(model.CacheKeyForUser(user.UserID))
	}

	ctrl.setAuthCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (ctrl *AuthController) GetMe(c *gin.Context) {
	tokenUser, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := ctrl.userSvc.FindUser(c.Request.Context(), tokenUser.Email, tokenUser.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session user no longer exists"})
		return
	}

	c.JSON(http.StatusOK, user.ToDto())
}

func (ctrl *AuthController) setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(auth.SessionCookie, token, maxAge, "/", "", ctrl.isProduction, true)
}

// mirrorSession pushes the session user to Redis so other instances can
// resolve it without a Mongo round trip. Best effort.
func (ctrl *AuthController) mirrorSession(user model.UserDto) {
	if database.RedisHelper == nil {
		return
	}

	payload, err := json.Marshal(user)
	if err != nil {
		return
	}
	database.RedisHelper.Set(model.CacheKeyForUser(user.UserID), payload, auth.SessionTTL)
}
