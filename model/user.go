package model

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	UserID          int64     `bson:"_id" json:"userId"`
	Email           string    `bson:"email" json:"email"`
	Username        string    `bson:"username" json:"username"`
	Password        string    `bson:"password" json:"-"`
	Name            string    `bson:"name" json:"name"`
	AccountCurrency string    `bson:"accountCurrency" json:"accountCurrency"`
	DefaultLeverage float64   `bson:"defaultLeverage" json:"defaultLeverage"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

func (u *User) ToDto() UserDto {
	return UserDto{
		UserID:          u.UserID,
		Email:           u.Email,
		Username:        u.Username,
		Name:            u.Name,
		AccountCurrency: u.AccountCurrency,
		DefaultLeverage: u.DefaultLeverage,
	}
}

type UserDto struct {
	UserID          int64   `json:"userId"`
	Email           string  `json:"email" validate:"required,email"`
	Username        string  `json:"username"`
	Password        string  `json:"password,omitempty"`
	Name            string  `json:"name"`
	AccountCurrency string  `json:"accountCurrency"`
	DefaultLeverage float64 `json:"defaultLeverage"`
}

func (d *UserDto) ToEntity(now time.Time) (*User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	username := d.Username
	if username == "" && d.Email != "" {
		username = strings.ToLower(strings.Split(d.Email, "@")[0])
	}

	currency := d.AccountCurrency
	if currency == "" {
		currency = "USD"
	}

	leverage := d.DefaultLeverage
	if leverage <= 0 {
		leverage = 100
	}

	return &User{
		UserID:          d.UserID,
		Email:           d.Email,
		Username:        username,
		Password:        string(hashed),
		Name:            d.Name,
		AccountCurrency: currency,
		DefaultLeverage: leverage,
		CreatedAt:       now,
	}, nil
}

// SignupDto is the pre-verification signup payload.
type SignupDto struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Name            string `json:"name"`
}

func (d *SignupDto) GetPassword() string { return d.Password }
func (d *SignupDto) GetConfirm() string  { return d.ConfirmPassword }

// PasswordMatcher is satisfied by payloads carrying a password confirmation.
type PasswordMatcher interface {
	GetPassword() string
	GetConfirm() string
}

type VerifyOtpDto struct {
	Email string `json:"email"`
	Otp   string `json:"otp"`
}

// --- Huma Structs ---

type ProfilePatchDto struct {
	UserID          int64   `json:"userId" mapstructure:"userId"`
	AccountCurrency string  `json:"accountCurrency" mapstructure:"accountCurrency"`
	DefaultLeverage float64 `json:"defaultLeverage" mapstructure:"defaultLeverage"`
}

func CacheKeyForUser(userID int64) string {
	return "auth_" + strconv.FormatInt(userID, 10)
}
