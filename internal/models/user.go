package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is a member account. Username and email are unique across the table;
// the password is stored only as a bcrypt hash.
type User struct {
	BaseModel

	Name     string `gorm:"size:30;not null" json:"name"`
	Username string `gorm:"size:30;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:254;uniqueIndex;not null" json:"email"`

	PasswordHash string `gorm:"size:100;not null" json:"-"`

	// RegistrationDate is Unix seconds, kept as a float for parity with the
	// persisted shape the rest of the platform reads.
	RegistrationDate          float64 `json:"registration_date"`
	TermsAndConditionsChecked bool    `json:"terms_and_conditions_checked"`

	IsAdmin bool `json:"is_admin"`

	IsEmailVerified        bool       `json:"is_email_verified"`
	EmailVerificationDate  *time.Time `json:"email_verification_date"`
	EmailVerificationToken string     `gorm:"size:36;index" json:"-"`

	CurrentMentorshipRole *int `json:"current_mentorship_role"`
	MembershipStatus      *int `json:"membership_status"`

	Bio                 string `gorm:"size:500" json:"bio"`
	Location            string `gorm:"size:80" json:"location"`
	Occupation          string `gorm:"size:80" json:"occupation"`
	CurrentOrganization string `gorm:"size:80" json:"current_organization"`
	SlackUsername       string `gorm:"size:80" json:"slack_username"`
	SocialMediaLinks    string `gorm:"size:500" json:"social_media_links"`
	Skills              string `gorm:"size:500" json:"skills"`
	Interests           string `gorm:"size:200" json:"interests"`
	ResumeURL           string `gorm:"size:200" json:"resume_url"`
	PhotoURL            string `gorm:"size:200" json:"photo_url"`
	NeedMentoring       bool   `json:"need_mentoring"`
	AvailableToMentor   bool   `json:"available_to_mentor"`
	IsCompanyRep        bool   `json:"is_company_rep"`

	// Relationships
	PersonalBackground *PersonalBackground `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Organization       *Organization       `gorm:"foreignKey:RepUserID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
	Extension          *UserExtension      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

// SetPassword hashes the plaintext and stores the hash on the record.
func (u *User) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func (u *User) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}
