package models

import "gorm.io/datatypes"

// PersonalBackground is the optional demographic survey attached to a user.
// It is owned by the user and removed with it.
type PersonalBackground struct {
	BaseModel

	UserID uint `gorm:"not null;uniqueIndex"`

	Gender            string `gorm:"size:30"`
	Age               string `gorm:"size:30"`
	Ethnicity         string `gorm:"size:50"`
	SexualOrientation string `gorm:"size:30"`
	Religion          string `gorm:"size:30"`
	PhysicalAbility   string `gorm:"size:30"`
	MentalAbility     string `gorm:"size:30"`
	SocioEconomic     string `gorm:"size:30"`
	HighestEducation  string `gorm:"size:30"`
	YearsOfExperience string `gorm:"size:30"`

	Others   datatypes.JSON `gorm:"type:jsonb"`
	IsPublic bool
}
