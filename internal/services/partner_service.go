package services

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"incubator_backend/internal/models"
	"incubator_backend/internal/repositories"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// --- Custom Service Errors ---
var (
	// ErrValidation is the generic validation sentinel shared by services.
	ErrValidation = errors.New("validation error")

	ErrPartnerNotFound = errors.New("partner not found")
)

var (
	websiteRegex  = regexp.MustCompile(`^https?://.+`)
	linkedinRegex = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/in/.+`)
)

// --- Data Transfer Objects (DTOs) ---

// PartnerRequest carries create/update fields for a partner. Company types
// (Academic, Corporate, IP Partners) and individual types (Mentors,
// External Investors) have different conditional requirements, mirrored in
// Validate.
type PartnerRequest struct {
	Name        string   `json:"name" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Role        *string  `json:"role"`
	Expertise   []string `json:"expertise"`
	CompanyName *string  `json:"company_name"`
	Website     *string  `json:"website"`
	Email       *string  `json:"email"`
	LinkedIn    *string  `json:"linkedin"`
	Details     *string  `json:"details"`
	Order       int      `json:"order"`
	IsActive    *bool    `json:"is_active"`
}

// Validate applies the partner rules: base field checks for everyone, a
// website URL shape for companies, an email shape for individuals, and a
// LinkedIn profile URL whenever one is given.
func (req *PartnerRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Type, validation.Required, validation.In(
			models.PartnerTypeAcademic,
			models.PartnerTypeCorporate,
			models.PartnerTypeIPPartners,
			models.PartnerTypeMentors,
			models.PartnerTypeExternalInvestors,
		)),
		validation.Field(&req.Details, validation.Length(0, 500)),
	)
	if err != nil {
		return err
	}

	if models.IsCompanyPartnerType(req.Type) {
		if req.Website != nil && *req.Website != "" && !websiteRegex.MatchString(*req.Website) {
			return errors.New("please provide a valid website URL")
		}
	} else {
		if req.Email != nil && *req.Email != "" {
			if err := validation.Validate(*req.Email, is.Email); err != nil {
				return errors.New("please provide a valid email address")
			}
		}
	}

	if req.LinkedIn != nil && *req.LinkedIn != "" && !linkedinRegex.MatchString(*req.LinkedIn) {
		return errors.New("please provide a valid LinkedIn URL")
	}

	return nil
}

// --- PartnerService Interface ---
type PartnerService interface {
	CreatePartner(req PartnerRequest) (*models.Partner, error)
	GetPartners(partnerType *string, activeOnly bool, page, pageSize int) ([]models.Partner, int, error)
	GetPartnerByID(partnerID int64) (*models.Partner, error)
	UpdatePartner(partnerID int64, req PartnerRequest) (*models.Partner, error)
	DeletePartner(partnerID int64) error
	SetPartnerImage(partnerID int64, upload FileUpload) (*models.Partner, error)
}

// --- partnerService Implementation ---
type partnerService struct {
	db             *sql.DB
	partnerRepo    repositories.PartnerRepository
	attachmentRepo repositories.AttachmentRepository
}

// NewPartnerService creates a new instance of PartnerService.
func NewPartnerService(db *sql.DB, partnerRepo repositories.PartnerRepository,
	attachmentRepo repositories.AttachmentRepository) PartnerService {
	return &partnerService{db: db, partnerRepo: partnerRepo, attachmentRepo: attachmentRepo}
}

func (s *partnerService) buildPartner(req PartnerRequest) models.Partner {
	partner := models.Partner{
		Name:         req.Name,
		Type:         req.Type,
		Role:         req.Role,
		Expertise:    req.Expertise,
		CompanyName:  req.CompanyName,
		Website:      req.Website,
		Email:        req.Email,
		LinkedIn:     req.LinkedIn,
		Details:      req.Details,
		DisplayOrder: req.Order,
		IsActive:     true,
	}
	if req.IsActive != nil {
		partner.IsActive = *req.IsActive
	}
	if partner.Expertise == nil {
		partner.Expertise = []string{}
	}
	return partner
}

func (s *partnerService) CreatePartner(req PartnerRequest) (*models.Partner, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	partner := s.buildPartner(req)
	if err := s.partnerRepo.CreatePartner(&partner); err != nil {
		return nil, fmt.Errorf("failed to create partner: %w", err)
	}
	return &partner, nil
}

func (s *partnerService) GetPartners(partnerType *string, activeOnly bool, page, pageSize int) ([]models.Partner, int, error) {
	if partnerType != nil && *partnerType != "" && !models.IsValidPartnerType(*partnerType) {
		return nil, 0, fmt.Errorf("%w: unknown partner type %q", ErrValidation, *partnerType)
	}
	partners, totalCount, err := s.partnerRepo.GetPartners(partnerType, activeOnly, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get partners: %w", err)
	}
	return partners, totalCount, nil
}

func (s *partnerService) GetPartnerByID(partnerID int64) (*models.Partner, error) {
	partner, err := s.partnerRepo.GetPartnerByID(partnerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}
	return partner, nil
}

func (s *partnerService) UpdatePartner(partnerID int64, req PartnerRequest) (*models.Partner, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.GetPartnerByID(partnerID)
	if err != nil {
		return nil, err
	}

	partner := s.buildPartner(req)
	partner.ID = partnerID
	partner.LogoID = existing.LogoID
	partner.PhotoID = existing.PhotoID

	if err := s.partnerRepo.UpdatePartner(&partner); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}
	return &partner, nil
}

func (s *partnerService) DeletePartner(partnerID int64) error {
	partner, err := s.GetPartnerByID(partnerID)
	if err != nil {
		return err
	}

	if err := s.partnerRepo.DeletePartner(partnerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPartnerNotFound
		}
		return fmt.Errorf("failed to delete partner: %w", err)
	}

	cleanupAttachment(s.db, s.attachmentRepo, partner.LogoID)
	cleanupAttachment(s.db, s.attachmentRepo, partner.PhotoID)
	return nil
}

// SetPartnerImage stores the uploaded image on the correct slot: companies
// keep a logo, individuals a photo. The other slot is cleared so a partner
// never carries both.
func (s *partnerService) SetPartnerImage(partnerID int64, upload FileUpload) (*models.Partner, error) {
	partner, err := s.GetPartnerByID(partnerID)
	if err != nil {
		return nil, err
	}

	oldID, crossID := partner.LogoID, partner.PhotoID
	if !partner.IsCompany() {
		oldID, crossID = partner.PhotoID, partner.LogoID
	}

	attachment, err := swapAttachment(s.db, s.attachmentRepo, oldID, upload,
		func(executor repositories.SQLExecutor, newID *string) error {
			if partner.IsCompany() {
				return s.partnerRepo.SetPartnerImages(executor, partnerID, newID, nil)
			}
			return s.partnerRepo.SetPartnerImages(executor, partnerID, nil, newID)
		})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to set partner image: %w", err)
	}

	// The cleared slot's blob is unreferenced once the row update commits.
	cleanupAttachment(s.db, s.attachmentRepo, crossID)

	imageID := attachment.ID.String()
	if partner.IsCompany() {
		partner.LogoID = &imageID
		partner.PhotoID = nil
	} else {
		partner.PhotoID = &imageID
		partner.LogoID = nil
	}
	return partner, nil
}
