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
var ErrTenderNotFound = errors.New("tender not found")

// --- Data Transfer Objects (DTOs) ---

// TenderRequest carries create/update fields for a tender notice. Only the
// title is mandatory; the rest mirrors the loosely structured notices the
// center publishes.
type TenderRequest struct {
	Title        string  `json:"title" binding:"required"`
	Date         *string `json:"date"`
	Organization *string `json:"organization"`
	Reference    *string `json:"reference"`
	LastDate     *string `json:"last_date"`
	LastTime     *string `json:"last_time"`
	FileLink     *string `json:"file_link"`
	FileName     *string `json:"file_name"`
}

// Validate applies the tender field rules.
func (req *TenderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&req.FileLink, is.URL),
	)
}

// --- TenderService Interface ---
type TenderService interface {
	CreateTender(req TenderRequest) (*models.Tender, error)
	GetTenders(page, pageSize int) ([]models.Tender, int, error)
	GetTenderByID(tenderID int64) (*models.Tender, error)
	UpdateTender(tenderID int64, req TenderRequest) (*models.Tender, error)
	DeleteTender(tenderID int64) error
}

// --- tenderService Implementation ---
type tenderService struct {
	tenderRepo repositories.TenderRepository
}

// NewTenderService creates a new instance of TenderService.
func NewTenderService(tenderRepo repositories.TenderRepository) TenderService {
	return &tenderService{tenderRepo: tenderRepo}
}

func buildTender(req TenderRequest) models.Tender {
	return models.Tender{
		Title:        req.Title,
		Date:         req.Date,
		Organization: req.Organization,
		Reference:    req.Reference,
		LastDate:     req.LastDate,
		LastTime:     req.LastTime,
		FileLink:     req.FileLink,
		FileName:     req.FileName,
	}
}

func (s *tenderService) CreateTender(req TenderRequest) (*models.Tender, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	tender := buildTender(req)
	if err := s.tenderRepo.CreateTender(&tender); err != nil {
		return nil, fmt.Errorf("failed to create tender: %w", err)
	}
	return &tender, nil
}

func (s *tenderService) GetTenders(page, pageSize int) ([]models.Tender, int, error) {
	tenders, totalCount, err := s.tenderRepo.GetTenders(page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get tenders: %w", err)
	}
	return tenders, totalCount, nil
}

func (s *tenderService) GetTenderByID(tenderID int64) (*models.Tender, error) {
	tender, err := s.tenderRepo.GetTenderByID(tenderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTenderNotFound
		}
		return nil, fmt.Errorf("failed to get tender: %w", err)
	}
	return tender, nil
}

func (s *tenderService) UpdateTender(tenderID int64, req TenderRequest) (*models.Tender, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	tender := buildTender(req)
	tender.ID = tenderID
	if err := s.tenderRepo.UpdateTender(&tender); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTenderNotFound
		}
		return nil, fmt.Errorf("failed to update tender: %w", err)
	}
	return &tender, nil
}

func (s *tenderService) DeleteTender(tenderID int64) error {
	if err := s.tenderRepo.DeleteTender(tenderID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTenderNotFound
		}
		return fmt.Errorf("failed to delete tender: %w", err)
	}
	return nil
}
