package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a doctor/admin credential record. Appointments
// reference it through the external doctor_id, not the surrogate ID.
type Account struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"type:text;not null" json:"name"`
	Email    string    `gorm:"type:text;uniqueIndex:accounts_email_key;not null" json:"email"`
	Hospital string    `gorm:"type:text" json:"hospital,omitempty"`
	Degree   string    `gorm:"type:text" json:"degree,omitempty"`
	Password string    `gorm:"type:text;not null" json:"-"`
	DoctorID string    `gorm:"column:doctor_id;type:text;uniqueIndex:accounts_doctor_id_key;not null" json:"doctor_id"`

	// Set at creation, cleared after the first password change. The column
	// is not part of the base migration; the schema manager ensures it.
	IsFirstLogin bool `gorm:"not null;default:true" json:"is_first_login"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}
