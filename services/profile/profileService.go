package profileService

import (
	"context"
	"time"

	"coursehub/apperror"
	"coursehub/models"
	userRepository "coursehub/repository/user"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// UpdateProfileRequest carries the editable profile fields. Nil optional fields are left as stored.
type UpdateProfileRequest struct {
	FirstName       string
	LastName        string
	ProfileImageURL *string
	DateOfBirth     *time.Time
	Bio             *string
}

type Service struct {
	users userRepository.Repo
	log   *logrus.Logger
	now   func() time.Time
}

func New(users userRepository.Repo, log *logrus.Logger) *Service {
	return &Service{users: users, log: log, now: time.Now}
}

func (s *Service) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperror.NewUnexpected("Failed to fetch profile!", err)
	}
	if user == nil {
		return nil, apperror.NewNotFound("User not found")
	}
	return user, nil
}

// UpdateProfile overwrites the name fields and any optional field that was supplied.
// A missing account is reported as Unauthorized since the caller holds a token for it.
func (s *Service) UpdateProfile(ctx context.Context, userID uint, req UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperror.NewUnexpected("Failed to update profile!", err)
	}
	if user == nil {
		return nil, apperror.NewUnauthorized("User not found")
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = req.ProfileImageURL
	}
	if req.DateOfBirth != nil {
		dob := datatypes.Date(*req.DateOfBirth)
		user.DateOfBirth = &dob
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	updatedAt := s.now().UTC()
	user.UpdatedAt = &updatedAt

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperror.NewUnexpected("Failed to update profile!", err)
	}

	s.log.WithField("userId", user.ID).Info("profile updated")
	return user, nil
}
