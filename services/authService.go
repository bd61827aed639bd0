package services

import (
	"errors"
	"fmt"
	"log"
	"net/mail"

	"mentrex/db"
	"mentrex/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users db.UserRepository
}

func NewAuthService(users db.UserRepository) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Signup(req *models.SignupRequest) (*models.User, error) {
	log.Printf("[INFO] Starting signup")

	if err := s.validateSignupRequest(req); err != nil {
		log.Printf("[ERROR] Signup validation failed: %v", err)
		return nil, err
	}

	if _, err := s.users.GetUserByEmail(req.Email); err == nil {
		return nil, NewValidationError("Email already registered")
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := s.users.GetUserByUsername(req.Username); err == nil {
		return nil, NewValidationError("Username already taken")
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.CreateUser(user); err != nil {
		log.Printf("[ERROR] Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("[INFO] Successfully created user %s", user.ID)
	return user, nil
}

// Login resolves the identifier as email first, then username, and checks
// the password. Unknown identity and wrong password yield the same error.
func (s *AuthService) Login(req *models.LoginRequest) (*models.User, error) {
	log.Printf("[INFO] Starting login")

	if err := s.validateLoginRequest(req); err != nil {
		log.Printf("[ERROR] Login validation failed: %v", err)
		return nil, err
	}

	user, err := s.users.GetUserByEmail(req.EmailOrUsername)
	if errors.Is(err, db.ErrNotFound) {
		user, err = s.users.GetUserByUsername(req.EmailOrUsername)
	}
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	log.Printf("[INFO] Successfully logged in user %s", user.ID)
	return user, nil
}

func (s *AuthService) GetUserByID(id uuid.UUID) (*models.User, error) {
	return s.users.GetUserByID(id)
}

func (s *AuthService) validateSignupRequest(req *models.SignupRequest) error {
	if req == nil {
		return NewValidationError("Request body is required")
	}
	if len(req.Username) < 3 {
		return NewValidationError("Username must be at least 3 characters")
	}
	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		return NewValidationError("Invalid email address")
	}
	if len(req.Password) < 6 {
		return NewValidationError("Password must be at least 6 characters")
	}
	return nil
}

func (s *AuthService) validateLoginRequest(req *models.LoginRequest) error {
	if req == nil {
		return NewValidationError("Request body is required")
	}
	if req.EmailOrUsername == "" {
		return NewValidationError("Email or username is required")
	}
	if req.Password == "" {
		return NewValidationError("Password is required")
	}
	return nil
}
