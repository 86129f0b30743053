package admin

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	UUID         uuid.UUID `json:"uuid"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsSuperUser  bool      `json:"is_superuser"`
	JWTVersion   uint      `json:"jwt_version"`
	CreatedAt    time.Time `json:"created_at"`
}

type Invite struct {
	Token     uuid.UUID `json:"token"`
	Email     string    `json:"email"`
	InvitedBy uuid.UUID `json:"invited_by"`
	Accepted  bool      `json:"accepted"`
	CreatedAt time.Time `json:"created_at"`
}
