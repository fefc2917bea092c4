package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mentorlink-dev/mentorlink/db"
	"github.com/mentorlink-dev/mentorlink/internal/auth"
	"github.com/mentorlink-dev/mentorlink/internal/services"
	"github.com/mentorlink-dev/mentorlink/internal/store"
	"github.com/mentorlink-dev/mentorlink/internal/types"
	"github.com/mentorlink-dev/mentorlink/internal/utils"
	"github.com/sirupsen/logrus"
)

type RegisterUserRequest struct {
	Name                      string `json:"name" binding:"required"`
	Username                  string `json:"username" binding:"required,min=3,max=30"`
	Email                     string `json:"email" binding:"required,email"`
	Password                  string `json:"password" binding:"required,min=8"`
	TermsAndConditionsChecked bool   `json:"terms_and_conditions_checked" binding:"required"`
}

type LoginUserRequest struct {
	// Username accepts either the username or the email address.
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

var (
	// Domain scopes the auth cookie; set from config at startup.
	Domain string

	// Mailer sends verification emails when configured; nil disables sending.
	Mailer *services.Mailer
)

func setAuthCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

func RegisterUser(ctx *gin.Context) {
	var req RegisterUserRequest

	if err := ctx.BindJSON(&req); err != nil {
		logrus.Errorf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.TrimSpace(req.Username)

	users := store.NewUserStore(db.DB)

	existing, err := users.FindByUsername(req.Username)

	if err != nil {
		logrus.Errorf("Database error when checking existing username: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if existing != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		return
	}

	existing, err = users.FindByEmail(req.Email)

	if err != nil {
		logrus.Errorf("Database error when checking existing email: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if existing != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	newUser, err := users.Create(store.CreateUserInput{
		Name:                      req.Name,
		Username:                  req.Username,
		Password:                  req.Password,
		Email:                     req.Email,
		TermsAndConditionsChecked: req.TermsAndConditionsChecked,
	})

	if err != nil {
		logrus.Errorf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if Mailer != nil {
		go func(email, name, token string) {
			if err := Mailer.SendVerification(email, name, token); err != nil {
				logrus.Errorf("Failed to send verification email to %s: %v", email, err)
			}
		}(newUser.Email, newUser.Name, newUser.EmailVerificationToken)
	}

	token, err := auth.GenerateJWT(newUser.ID, newUser.Username)

	if err != nil {
		logrus.Errorf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setAuthCookie(ctx, token, 60*60*24*7)

	ctx.JSON(http.StatusCreated, gin.H{
		"user":  types.NewUserResponse(newUser),
		"token": token,
	})
}

func LoginUser(ctx *gin.Context) {
	var req LoginUserRequest

	if err := ctx.BindJSON(&req); err != nil {
		logrus.Errorf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	users := store.NewUserStore(db.DB)

	user, err := users.FindByUsername(req.Username)

	if err != nil {
		logrus.Errorf("Database error when fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if user == nil {
		user, err = users.FindByEmail(strings.ToLower(strings.TrimSpace(req.Username)))

		if err != nil {
			logrus.Errorf("Database error when fetching user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	if user == nil || !user.CheckPassword(req.Password) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Username)

	if err != nil {
		logrus.Errorf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setAuthCookie(ctx, token, 60*60*24*7)

	ctx.JSON(http.StatusOK, gin.H{
		"user":  types.NewUserResponse(user),
		"token": token,
	})
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := store.NewUserStore(db.DB).FindByID(currentUser.ID)

	if err != nil || user == nil {
		logrus.Errorf("Failed to fetch user %d: %v", currentUser.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": types.NewUserProfile(user)})
}

func LogoutUser(ctx *gin.Context) {
	setAuthCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// ConfirmEmail completes the verification flow started at registration. The
// token arrives as a query parameter from the emailed link.
func ConfirmEmail(ctx *gin.Context) {
	token := ctx.Query("token")

	if token == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Verification token is required"})
		return
	}

	users := store.NewUserStore(db.DB)

	user, err := users.FindByVerificationToken(token)

	if err != nil {
		logrus.Errorf("Database error when fetching verification token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if user == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification token"})
		return
	}

	if user.IsEmailVerified {
		ctx.JSON(http.StatusOK, gin.H{"message": "Email already verified"})
		return
	}

	now := time.Now()
	user.IsEmailVerified = true
	user.EmailVerificationDate = &now

	if err := users.Save(user); err != nil {
		logrus.Errorf("Failed to save user %d: %v", user.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}
