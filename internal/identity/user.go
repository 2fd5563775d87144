package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is one identity record in the user store. The store owns these
// records; request flows only read them through the credentials service.
type User struct {
	ID                 string // stable, globally unique
	Email              string
	UserName           string
	NormalizedEmail    string // uppercased form, unique within the store
	NormalizedUserName string
	PhoneNumber        string
	PasswordHash       string
	SecurityStamp      string // opaque, rotated on credential change
	CreatedAt          time.Time
}

// NewUser builds a user with a fresh ID and security stamp. The caller
// supplies an already-hashed password.
func NewUser(email, userName, phoneNumber, passwordHash string) User {
	return User{
		ID:                 uuid.NewString(),
		Email:              email,
		UserName:           userName,
		NormalizedEmail:    strings.ToUpper(email),
		NormalizedUserName: strings.ToUpper(userName),
		PhoneNumber:        phoneNumber,
		PasswordHash:       passwordHash,
		SecurityStamp:      uuid.NewString(),
	}
}
