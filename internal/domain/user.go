package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// User represents a gym member or an admin account.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role         Role               `bson:"role" json:"role"`

	// NotifyOptIn marks members who want session reminder emails.
	// The reminder loop only ever mails users with this flag set and a
	// non-empty email.
	NotifyOptIn bool `bson:"notifyOptIn" json:"notifyOptIn"`

	// AvatarKey is the S3 object key of the member's profile picture,
	// empty if none was uploaded.
	AvatarKey string `bson:"avatarKey,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
