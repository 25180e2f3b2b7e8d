package services

import (
	"context"
	"fmt"

	"github.com/devraj/lecturehall/internal/app/models"
	"github.com/devraj/lecturehall/internal/app/models/dto"
	"github.com/devraj/lecturehall/internal/app/repositories"
)

// InstructorService defines the interface for instructor-related operations
type InstructorService interface {
	ListInstructors(ctx context.Context) ([]dto.UserResponse, error)
}

// instructorServiceImpl implements the InstructorService interface
type instructorServiceImpl struct {
	userRepo repositories.IUserRepository
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(userRepo repositories.IUserRepository) InstructorService {
	return &instructorServiceImpl{
		userRepo: userRepo,
	}
}

// ListInstructors returns every user with the instructor role.
func (s *instructorServiceImpl) ListInstructors(ctx context.Context) ([]dto.UserResponse, error) {
	instructors, err := s.userRepo.ListByRole(ctx, models.RoleInstructor)
	if err != nil {
		return nil, fmt.Errorf("error listing instructors: %w", err)
	}

	result := make([]dto.UserResponse, 0, len(instructors))
	for i := range instructors {
		result = append(result, dto.NewUserResponse(&instructors[i]))
	}

	return result, nil
}
