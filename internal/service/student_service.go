package service

import (
	"context"

	"github.com/mavpath/advisor-backend/internal/model"
	"github.com/mavpath/advisor-backend/internal/repository"
)

// StudentService handles student account business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// GetByNetID retrieves a student by their NetID.
func (s *StudentService) GetByNetID(ctx context.Context, netID string) (*model.Student, error) {
	return s.studentRepo.GetByNetID(ctx, netID)
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// Register creates a new student account with the given password hash.
func (s *StudentService) Register(ctx context.Context, req *model.RegisterStudentRequest, passwordHash string) (*model.Student, error) {
	student := &model.Student{
		NetID:        req.NetID,
		Name:         req.Name,
		PasswordHash: passwordHash,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}
