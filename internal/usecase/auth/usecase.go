package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	userDomain "lively-marketplace/internal/domain/user"
	"lively-marketplace/pkg/id"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

const tokenTTL = 24 * time.Hour

// Claims carried in every bearer token. UserID is the public 32-hex ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}

type Usecase struct {
	users     userDomain.Repository
	jwtSecret []byte
}

func NewUsecase(users userDomain.Repository, jwtSecret string) *Usecase {
	return &Usecase{users: users, jwtSecret: []byte(jwtSecret)}
}

type UserDTO struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserDTO   `json:"user"`
}

func (u *Usecase) Register(ctx context.Context, username, password string) (*UserDTO, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidCredentials
	}
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}

	// Racy pre-check; the unique index catches the race.
	if _, err := u.users.GetByUsername(ctx, username); err == nil {
		return nil, userDomain.ErrUsernameTaken
	} else if !errors.Is(err, userDomain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usr := &userDomain.User{
		UserID:       id.NewID32(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, err
	}

	log.Info().Str("user_id", usr.UserID).Str("username", username).Msg("user registered")
	return toUserDTO(usr), nil
}

func (u *Usecase) Login(ctx context.Context, username, password string) (*TokenDTO, error) {
	usr, err := u.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, userDomain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expires := time.Now().Add(tokenTTL)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:  usr.UserID,
		IsAdmin: usr.IsAdmin,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &TokenDTO{Token: signed, ExpiresAt: expires, User: *toUserDTO(usr)}, nil
}

// EnsureAdmin creates the bootstrap admin account on first run. A no-op
// when the username already exists.
func (u *Usecase) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := u.users.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, userDomain.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	usr := &userDomain.User{
		UserID:       id.NewID32(),
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return err
	}
	log.Info().Str("username", username).Msg("bootstrap admin created")
	return nil
}

func toUserDTO(usr *userDomain.User) *UserDTO {
	return &UserDTO{
		UserID:    usr.UserID,
		Username:  usr.Username,
		IsAdmin:   usr.IsAdmin,
		CreatedAt: usr.CreatedAt,
	}
}
