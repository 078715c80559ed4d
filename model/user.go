// model/user.go
package model

import "time"

type UserType string

const (
	UserStudent  UserType = "student"
	UserLandlord UserType = "landlord"
	UserAdmin    UserType = "admin"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	UserType     UserType  `json:"user_type"`
	Verified     bool      `json:"verified"`
	Avatar       string    `json:"avatar,omitempty"`
	College      string    `json:"college,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterReq represents user registration payload
// swagger:model RegisterReq
type RegisterReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserType string `json:"user_type" validate:"required,oneof=student landlord"`
	College  string `json:"college"`
}

// LoginReq represents login payload
// swagger:model LoginReq
type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is one authenticated login. Remote mode keeps these in Redis
// under a TTL; demo mode keeps a single slot on disk.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
