package services

import (
	"errors"
	"fmt"

	"incubator_backend/internal/models"
	"incubator_backend/internal/repositories"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// --- Custom Service Errors ---
var (
	ErrInternshipNotFound = errors.New("internship not found")
	ErrInternNoExists     = errors.New("intern number already registered")
)

// --- Data Transfer Objects (DTOs) ---

// InternshipRequest carries create/update fields for an intern record. An
// empty status defaults to active.
type InternshipRequest struct {
	Name                 string  `json:"name" binding:"required"`
	InternNo             string  `json:"intern_no" binding:"required"`
	DateOfBirth          *string `json:"date_of_birth"`
	Email                *string `json:"email"`
	PhoneNumber          *string `json:"phone_number"`
	FatherName           *string `json:"father_name"`
	MotherName           *string `json:"mother_name"`
	BloodGroup           *string `json:"blood_group"`
	PermanentAddress     *string `json:"permanent_address"`
	CommunicationAddress *string `json:"communication_address"`
	DateOfExpiry         *string `json:"date_of_expiry"`
	MaritalStatus        *string `json:"marital_status"`
	DateOfJoining        *string `json:"date_of_joining"`
	Designation          *string `json:"designation"`
	Status               string  `json:"status"`
}

// Validate applies the internship field rules.
func (req *InternshipRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.InternNo, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Status, validation.In(
			models.InternshipStatusActive,
			models.InternshipStatusCompleted,
		)),
	)
}

// --- InternshipService Interface ---
type InternshipService interface {
	CreateInternship(req InternshipRequest) (*models.Internship, error)
	GetInternships(status *string, searchTerm *string, page, pageSize int) ([]models.Internship, int, error)
	GetInternshipByID(internshipID int64) (*models.Internship, error)
	GetInternshipByInternNo(internNo string) (*models.Internship, error)
	UpdateInternship(internshipID int64, req InternshipRequest) (*models.Internship, error)
	DeleteInternship(internshipID int64) error
}

// --- internshipService Implementation ---
type internshipService struct {
	internshipRepo repositories.InternshipRepository
}

// NewInternshipService creates a new instance of InternshipService.
func NewInternshipService(internshipRepo repositories.InternshipRepository) InternshipService {
	return &internshipService{internshipRepo: internshipRepo}
}

func buildInternship(req InternshipRequest) models.Internship {
	internship := models.Internship{
		Name:                 req.Name,
		InternNo:             req.InternNo,
		DateOfBirth:          req.DateOfBirth,
		Email:                req.Email,
		PhoneNumber:          req.PhoneNumber,
		FatherName:           req.FatherName,
		MotherName:           req.MotherName,
		BloodGroup:           req.BloodGroup,
		PermanentAddress:     req.PermanentAddress,
		CommunicationAddress: req.CommunicationAddress,
		DateOfExpiry:         req.DateOfExpiry,
		MaritalStatus:        req.MaritalStatus,
		DateOfJoining:        req.DateOfJoining,
		Designation:          req.Designation,
		Status:               req.Status,
	}
	if internship.Status == "" {
		internship.Status = models.InternshipStatusActive
	}
	return internship
}

func (s *internshipService) CreateInternship(req InternshipRequest) (*models.Internship, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	internship := buildInternship(req)
	if err := s.internshipRepo.CreateInternship(&internship); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %q", ErrInternNoExists, internship.InternNo)
		}
		return nil, fmt.Errorf("failed to create internship: %w", err)
	}
	return &internship, nil
}

func (s *internshipService) GetInternships(status *string, searchTerm *string, page, pageSize int) ([]models.Internship, int, error) {
	if status != nil && *status != "" && !models.IsValidInternshipStatus(*status) {
		return nil, 0, fmt.Errorf("%w: unknown internship status %q", ErrValidation, *status)
	}
	internships, totalCount, err := s.internshipRepo.GetInternships(status, searchTerm, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get internships: %w", err)
	}
	return internships, totalCount, nil
}

func (s *internshipService) GetInternshipByID(internshipID int64) (*models.Internship, error) {
	internship, err := s.internshipRepo.GetInternshipByID(internshipID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("failed to get internship: %w", err)
	}
	return internship, nil
}

func (s *internshipService) GetInternshipByInternNo(internNo string) (*models.Internship, error) {
	internship, err := s.internshipRepo.GetInternshipByInternNo(internNo)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("failed to get internship by intern number: %w", err)
	}
	return internship, nil
}

func (s *internshipService) UpdateInternship(internshipID int64, req InternshipRequest) (*models.Internship, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	internship := buildInternship(req)
	internship.ID = internshipID
	if err := s.internshipRepo.UpdateInternship(&internship); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %q", ErrInternNoExists, internship.InternNo)
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("failed to update internship: %w", err)
	}
	return &internship, nil
}

func (s *internshipService) DeleteInternship(internshipID int64) error {
	if err := s.internshipRepo.DeleteInternship(internshipID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInternshipNotFound
		}
		return fmt.Errorf("failed to delete internship: %w", err)
	}
	return nil
}
