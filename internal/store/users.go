package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mentorlink-dev/mentorlink/internal/models"
	"gorm.io/gorm"
)

// UserStore wraps the shared GORM session with the account query helpers.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// CreateUserInput carries the required registration fields.
type CreateUserInput struct {
	Name                      string
	Username                  string
	Password                  string
	Email                     string
	TermsAndConditionsChecked bool
}

// Create builds and persists a new account. The password is hashed before the
// row is written, the first account in an empty table becomes an admin, and a
// fresh email verification token is issued.
func (s *UserStore) Create(in CreateUserInput) (*models.User, error) {
	empty, err := s.IsEmpty()
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:                      in.Name,
		Username:                  in.Username,
		Email:                     in.Email,
		TermsAndConditionsChecked: in.TermsAndConditionsChecked,
		IsAdmin:                   empty, // first user is admin
		RegistrationDate:          float64(time.Now().UnixNano()) / 1e9,
		EmailVerificationToken:    uuid.NewString(),
	}

	if err := user.SetPassword(in.Password); err != nil {
		return nil, err
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByUsername returns the matching account, or nil when there is none.
func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	return s.first("username = ?", username)
}

// FindByEmail returns the matching account, or nil when there is none.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	return s.first("email = ?", email)
}

// FindByID returns the matching account, or nil when there is none.
func (s *UserStore) FindByID(id uint) (*models.User, error) {
	return s.first("id = ?", id)
}

// FindByVerificationToken returns the account holding the given email
// verification token, or nil when there is none.
func (s *UserStore) FindByVerificationToken(token string) (*models.User, error) {
	return s.first("email_verification_token = ?", token)
}

func (s *UserStore) first(query string, arg interface{}) (*models.User, error) {
	var user models.User

	err := s.db.Where(query, arg).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Admins lists every account with admin status.
func (s *UserStore) Admins() ([]models.User, error) {
	var users []models.User

	if err := s.db.Where("is_admin = ?", true).Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// Representatives lists every account flagged as a company representative.
func (s *UserStore) Representatives() ([]models.User, error) {
	var users []models.User

	if err := s.db.Where("is_company_rep = ?", true).Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// UnverifiedBefore lists accounts that registered before the cutoff and never
// verified their email.
func (s *UserStore) UnverifiedBefore(cutoff time.Time) ([]models.User, error) {
	var users []models.User

	err := s.db.
		Where("is_email_verified = ?", false).
		Where("registration_date < ?", float64(cutoff.Unix())).
		Find(&users).Error

	if err != nil {
		return nil, err
	}

	return users, nil
}

// IsEmpty reports whether no account exists yet.
func (s *UserStore) IsEmpty() (bool, error) {
	var count int64

	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return false, err
	}

	return count == 0, nil
}

// Save writes the record, inserting or updating as needed.
func (s *UserStore) Save(user *models.User) error {
	return s.db.Save(user).Error
}

// Delete removes the account together with its owned personal background and
// extension rows, and detaches any organization the user represented so a new
// representative can be appointed. The database-level constraints mirror these
// rules, but they are applied explicitly so the semantics do not depend on the
// backend enforcing foreign keys.
func (s *UserStore) Delete(user *models.User) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.PersonalBackground{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserExtension{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Organization{}).
			Where("rep_user_id = ?", user.ID).
			Update("rep_user_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(user).Error
	})
}
