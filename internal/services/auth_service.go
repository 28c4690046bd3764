package services

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/strideapp/stride/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAuthCredentialsInvalid = errors.New("invalid credentials input")
	ErrRegisterSecretInvalid  = errors.New("invalid registration secret")
	ErrEmailTaken             = errors.New("email already registered")
)

type AuthUserStore interface {
	List() ([]models.User, error)
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	Create(user *models.User) error
	UpdateByID(userID uint, updates map[string]any) error
}

type AuthService struct {
	users          AuthUserStore
	registerSecret string
}

func NewAuthService(users AuthUserStore, registerSecret string) *AuthService {
	return &AuthService{users: users, registerSecret: registerSecret}
}

// NormalizeAuthEmail lowercases and trims an email, returning "" when the
// input does not look like one.
func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return ""
	}
	return email
}

type Registration struct {
	Name     string
	Email    string
	Password string
	Location string
	Secret   string
}

func (service *AuthService) Register(input Registration) (models.User, error) {
	if subtle.ConstantTimeCompare([]byte(input.Secret), []byte(service.registerSecret)) != 1 {
		return models.User{}, ErrRegisterSecretInvalid
	}

	email := NormalizeAuthEmail(input.Email)
	if email == "" || input.Password == "" {
		return models.User{}, ErrAuthCredentialsInvalid
	}

	taken, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(passwordHash),
		Location:     input.Location,
		CreatedAt:    time.Now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		// The unique email index is the last line of defense against a
		// concurrent registration for the same address.
		return models.User{}, ErrEmailTaken
	}
	return user, nil
}

func (service *AuthService) Authenticate(email, password string) (models.User, error) {
	normalized := NormalizeAuthEmail(email)
	if normalized == "" {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	user, err := service.users.FindByNormalizedEmail(normalized)
	if err != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) ListUsers() ([]models.User, error) {
	return service.users.List()
}

func (service *AuthService) UpdateProfile(userID uint, updates map[string]any) error {
	return service.users.UpdateByID(userID, updates)
}
