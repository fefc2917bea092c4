package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mentorlink-dev/mentorlink/db"
	"github.com/mentorlink-dev/mentorlink/internal/store"
	"github.com/mentorlink-dev/mentorlink/internal/types"
	"github.com/mentorlink-dev/mentorlink/internal/utils"
	"github.com/sirupsen/logrus"
)

type UpdateProfileRequest struct {
	Name                  *string `json:"name"`
	Email                 *string `json:"email" binding:"omitempty,email"`
	Bio                   *string `json:"bio"`
	Location              *string `json:"location"`
	Occupation            *string `json:"occupation"`
	CurrentOrganization   *string `json:"current_organization"`
	SlackUsername         *string `json:"slack_username"`
	SocialMediaLinks      *string `json:"social_media_links"`
	Skills                *string `json:"skills"`
	Interests             *string `json:"interests"`
	ResumeURL             *string `json:"resume_url"`
	PhotoURL              *string `json:"photo_url"`
	NeedMentoring         *bool   `json:"need_mentoring"`
	AvailableToMentor     *bool   `json:"available_to_mentor"`
	CurrentMentorshipRole *int    `json:"current_mentorship_role"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

func UpdateProfile(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	users := store.NewUserStore(db.DB)

	user, err := users.FindByID(currentUser.ID)

	if err != nil || user == nil {
		logrus.Errorf("Failed to fetch user %d: %v", currentUser.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req UpdateProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		logrus.Errorf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}

	if req.Email != nil {
		newEmail := strings.ToLower(strings.TrimSpace(*req.Email))

		if newEmail != user.Email {
			existing, err := users.FindByEmail(newEmail)

			if err != nil {
				logrus.Errorf("Database error when checking existing email: %v", err)
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}

			if existing != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
				return
			}

			user.Email = newEmail
		}
	}

	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Occupation != nil {
		user.Occupation = *req.Occupation
	}
	if req.CurrentOrganization != nil {
		user.CurrentOrganization = *req.CurrentOrganization
	}
	if req.SlackUsername != nil {
		user.SlackUsername = *req.SlackUsername
	}
	if req.SocialMediaLinks != nil {
		user.SocialMediaLinks = *req.SocialMediaLinks
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	if req.Interests != nil {
		user.Interests = *req.Interests
	}
	if req.ResumeURL != nil {
		user.ResumeURL = *req.ResumeURL
	}
	if req.PhotoURL != nil {
		user.PhotoURL = *req.PhotoURL
	}
	if req.NeedMentoring != nil {
		user.NeedMentoring = *req.NeedMentoring
	}
	if req.AvailableToMentor != nil {
		user.AvailableToMentor = *req.AvailableToMentor
	}
	if req.CurrentMentorshipRole != nil {
		user.CurrentMentorshipRole = req.CurrentMentorshipRole
	}

	if err := users.Save(user); err != nil {
		logrus.Errorf("Failed to update user %d: %v", user.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    types.NewUserProfile(user),
	})
}

func ChangePassword(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req ChangePasswordRequest

	if err := ctx.BindJSON(&req); err != nil {
		logrus.Errorf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	users := store.NewUserStore(db.DB)

	user, err := users.FindByID(currentUser.ID)

	if err != nil || user == nil {
		logrus.Errorf("Failed to fetch user %d: %v", currentUser.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !user.CheckPassword(req.CurrentPassword) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
		return
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		logrus.Errorf("Failed to hash new password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := users.Save(user); err != nil {
		logrus.Errorf("Failed to save user %d: %v", user.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

func DeleteAccount(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req struct {
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.BindJSON(&req); err != nil {
		logrus.Errorf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Password is required for account deletion"})
		return
	}

	users := store.NewUserStore(db.DB)

	user, err := users.FindByID(currentUser.ID)

	if err != nil || user == nil {
		logrus.Errorf("Failed to fetch user %d: %v", currentUser.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !user.CheckPassword(req.Password) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Incorrect password"})
		return
	}

	// Removes the owned background and extension rows and detaches any
	// represented organization.
	if err := users.Delete(user); err != nil {
		logrus.Errorf("Failed to delete user %d: %v", user.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setAuthCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

func GetUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := store.NewUserStore(db.DB).FindByID(uint(id))

	if err != nil {
		logrus.Errorf("Database error when fetching user %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if user == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": types.NewUserProfile(user)})
}

func ListAdmins(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !currentUser.IsAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	admins, err := store.NewUserStore(db.DB).Admins()

	if err != nil {
		logrus.Errorf("Database error when listing admins: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	profiles := make([]types.UserProfile, 0, len(admins))
	for i := range admins {
		profiles = append(profiles, types.NewUserProfile(&admins[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"users": profiles})
}

func ListRepresentatives(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !currentUser.IsAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	reps, err := store.NewUserStore(db.DB).Representatives()

	if err != nil {
		logrus.Errorf("Database error when listing representatives: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	profiles := make([]types.UserProfile, 0, len(reps))
	for i := range reps {
		profiles = append(profiles, types.NewUserProfile(&reps[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"users": profiles})
}
