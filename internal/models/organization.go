package models

// Organization is a company or community represented on the platform. The
// representative link is nullable: when the representing user is deleted the
// organization is detached, not removed, so a new representative can be
// appointed.
type Organization struct {
	BaseModel

	RepUserID     *uint  `gorm:"index"`
	RepDepartment string `gorm:"size:100"`

	Name     string `gorm:"size:150;not null"`
	Email    string `gorm:"size:254"`
	About    string `gorm:"size:500"`
	Address  string `gorm:"size:250"`
	Website  string `gorm:"size:150"`
	Timezone string `gorm:"size:50"`
	Phone    string `gorm:"size:20"`

	Status *int
}
