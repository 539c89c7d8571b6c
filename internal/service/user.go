package service

import (
	"context"
	"fmt"

	"ecokart/internal/model"
	"ecokart/internal/repository"
)

type UserService interface {
	// EnsureUser upserts the user row from verified token claims; a
	// first login creates the record.
	EnsureUser(ctx context.Context, userID, email, firstName, lastName, profileImageURL string) (*model.User, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

func (s *userServiceImpl) EnsureUser(ctx context.Context, userID, email, firstName, lastName, profileImageURL string) (*model.User, error) {
	user, err := s.userRepo.Upsert(ctx, &model.User{
		ID:              userID,
		Email:           email,
		FirstName:       firstName,
		LastName:        lastName,
		ProfileImageURL: profileImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return user, nil
}
