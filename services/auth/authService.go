package authService

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"coursehub/apperror"
	"coursehub/models"
	userRepository "coursehub/repository/user"
	"coursehub/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

// TokenIssuer signs session tokens for an authenticated user.
type TokenIssuer interface {
	Issue(user models.User) (utils.IssuedTokens, error)
}

type RegisterRequest struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

// AuthResult is returned by Login and Register.
type AuthResult struct {
	Token        string
	RefreshToken string
	ExpiresAt    time.Time
	User         models.User
}

type Service struct {
	users     userRepository.Repo
	tokens    TokenIssuer
	saltRound int
	log       *logrus.Logger
	now       func() time.Time

	// dummyHash is compared when no usable account exists, so both login paths cost one bcrypt check.
	dummyHash   []byte
	compareHash func(hash, password []byte) error
}

func New(users userRepository.Repo, tokens TokenIssuer, saltRound int, log *logrus.Logger) *Service {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("coursehub-login-placeholder"), saltRound)
	if err != nil {
		log.WithError(err).Warn("could not prepare placeholder password hash")
	}
	return &Service{
		users:       users,
		tokens:      tokens,
		saltRound:   saltRound,
		log:         log,
		now:         time.Now,
		dummyHash:   dummyHash,
		compareHash: bcrypt.CompareHashAndPassword,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login checks the credentials of an active account and issues a new session.
// Unknown email, inactive account and wrong password all fail the same way.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, apperror.NewUnexpected("Failed to login!", err)
	}
	if user == nil || !user.IsActive {
		_ = s.compareHash(s.dummyHash, []byte(password))
		return nil, apperror.NewAuthenticationFailed("Invalid email or password")
	}
	if err := s.compareHash([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.WithField("userId", user.ID).Info("login rejected")
		return nil, apperror.NewAuthenticationFailed("Invalid email or password")
	}

	return s.issue(*user)
}

// Register creates an active account and signs the new user in.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperror.NewValidationFailed("Passwords do not match")
	}
	if utf8.RuneCountInString(req.Password) < MinPasswordLength {
		return nil, apperror.NewValidationFailed("Password must be at least 8 characters long")
	}

	email := normalizeEmail(req.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperror.NewUnexpected("Failed to register user!", err)
	}
	if existing != nil && existing.IsActive {
		return nil, apperror.NewValidationFailed("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.saltRound)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperror.NewValidationFailed("Password is too long")
		}
		return nil, apperror.NewUnexpected("Failed to register user!", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Insert(ctx, &user); err != nil {
		if errors.Is(err, userRepository.ErrDuplicateEmail) {
			return nil, apperror.NewValidationFailed("User with this email already exists")
		}
		return nil, apperror.NewUnexpected("Failed to register user!", err)
	}

	s.log.WithField("userId", user.ID).Info("user registered")
	return s.issue(user)
}

// GetCurrentUser resolves the account behind a session token.
func (s *Service) GetCurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	if userID == 0 {
		return nil, apperror.NewUnauthorized("Unauthorized")
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperror.NewUnexpected("Failed to fetch user!", err)
	}
	if user == nil || !user.IsActive {
		return nil, apperror.NewUnauthorized("Unauthorized")
	}
	return user, nil
}

func (s *Service) issue(user models.User) (*AuthResult, error) {
	tokens, err := s.tokens.Issue(user)
	if err != nil {
		return nil, apperror.NewUnexpected("Failed to issue token!", err)
	}
	return &AuthResult{
		Token:        tokens.Token,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokens.ExpiresAt,
		User:         user,
	}, nil
}
