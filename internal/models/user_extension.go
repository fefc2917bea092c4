package models

import "gorm.io/datatypes"

// UserExtension holds platform-specific extras that do not belong on the core
// account row. Owned by the user and removed with it.
type UserExtension struct {
	BaseModel

	UserID uint `gorm:"not null;uniqueIndex"`

	IsOrganizationRep bool
	Timezone          string `gorm:"size:50"`

	AdditionalInfo datatypes.JSON `gorm:"type:jsonb"`
}
