package domain

import "time"

// User is the credential-store record. Password holds the bcrypt hash and
// never leaves the server.
type User struct {
	ID         string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	FullName   string    `json:"fullName" gorm:"size:50;not null"`
	Email      string    `json:"email" gorm:"size:254;uniqueIndex;not null"`
	Password   string    `json:"-" gorm:"not null"`
	ProfilePic *string   `json:"profilePic"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PublicUser is the projection returned to clients.
type PublicUser struct {
	ID         string    `json:"_id"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	ProfilePic *string   `json:"profilePic"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
