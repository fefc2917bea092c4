package types

import (
	"time"

	"github.com/mentorlink-dev/mentorlink/internal/models"
)

// UserResponse is the compact account shape returned by the auth endpoints.
type UserResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// UserProfile is the flat key-value representation of an account consumed by
// the web layer. The password hash is deliberately absent.
type UserProfile struct {
	ID                        uint       `json:"id"`
	Name                      string     `json:"name"`
	Username                  string     `json:"username"`
	Email                     string     `json:"email"`
	TermsAndConditionsChecked bool       `json:"terms_and_conditions_checked"`
	RegistrationDate          float64    `json:"registration_date"`
	IsAdmin                   bool       `json:"is_admin"`
	IsEmailVerified           bool       `json:"is_email_verified"`
	EmailVerificationDate     *time.Time `json:"email_verification_date"`
	CurrentMentorshipRole     *int       `json:"current_mentorship_role"`
	MembershipStatus          *int       `json:"membership_status"`
	Bio                       string     `json:"bio"`
	Location                  string     `json:"location"`
	Occupation                string     `json:"occupation"`
	CurrentOrganization       string     `json:"current_organization"`
	SlackUsername             string     `json:"slack_username"`
	SocialMediaLinks          string     `json:"social_media_links"`
	Skills                    string     `json:"skills"`
	Interests                 string     `json:"interests"`
	ResumeURL                 string     `json:"resume_url"`
	PhotoURL                  string     `json:"photo_url"`
	NeedMentoring             bool       `json:"need_mentoring"`
	AvailableToMentor         bool       `json:"available_to_mentor"`
	IsCompanyRep              bool       `json:"is_company_rep"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}

func NewUserProfile(u *models.User) UserProfile {
	return UserProfile{
		ID:                        u.ID,
		Name:                      u.Name,
		Username:                  u.Username,
		Email:                     u.Email,
		TermsAndConditionsChecked: u.TermsAndConditionsChecked,
		RegistrationDate:          u.RegistrationDate,
		IsAdmin:                   u.IsAdmin,
		IsEmailVerified:           u.IsEmailVerified,
		EmailVerificationDate:     u.EmailVerificationDate,
		CurrentMentorshipRole:     u.CurrentMentorshipRole,
		MembershipStatus:          u.MembershipStatus,
		Bio:                       u.Bio,
		Location:                  u.Location,
		Occupation:                u.Occupation,
		CurrentOrganization:       u.CurrentOrganization,
		SlackUsername:             u.SlackUsername,
		SocialMediaLinks:          u.SocialMediaLinks,
		Skills:                    u.Skills,
		Interests:                 u.Interests,
		ResumeURL:                 u.ResumeURL,
		PhotoURL:                  u.PhotoURL,
		NeedMentoring:             u.NeedMentoring,
		AvailableToMentor:         u.AvailableToMentor,
		IsCompanyRep:              u.IsCompanyRep,
	}
}
