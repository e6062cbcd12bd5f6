package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"restaurant-backend/entity"
	"restaurant-backend/repository"
	"restaurant-backend/utils"
)

var (
	// ErrDuplicateUsername is a result, not a fault: callers re-prompt.
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles registration and login for both roles.
type AuthService struct {
	users     *repository.FileStore[entity.User]
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(users *repository.FileStore[entity.User], secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) findByUsername(username string) (*entity.User, bool) {
	for _, u := range s.users.GetAll() {
		if u.Username == username {
			return &u, true
		}
	}
	return nil, false
}

// Register creates a client account. Usernames are unique.
func (s *AuthService) Register(username, password, address string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}
	if _, exists := s.findByUsername(username); exists {
		return nil, ErrDuplicateUsername
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := entity.NewClient(username, string(hashed), address)
	if err := s.users.Add(*user); err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterManager is used by first-run seeding.
func (s *AuthService) RegisterManager(username, password string) (*entity.User, error) {
	if _, exists := s.findByUsername(username); exists {
		return nil, ErrDuplicateUsername
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}
	user := entity.NewManager(username, string(hashed))
	if err := s.users.Add(*user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and mints a JWT.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	user, ok := s.findByUsername(strings.TrimSpace(username))
	if !ok {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uuid.UUID) (*entity.User, bool) {
	u, ok := s.users.GetByID(userID)
	if !ok {
		return nil, false
	}
	return &u, true
}
