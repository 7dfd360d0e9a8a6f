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
var ErrContactNotFound = errors.New("contact info not found")

// --- Data Transfer Objects (DTOs) ---

// ContactRequest carries the contact and social links for the site footer.
// Every update replaces the whole row.
type ContactRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Location  *string `json:"location"`
	Instagram *string `json:"instagram"`
	Twitter   *string `json:"twitter"`
	LinkedIn  *string `json:"linkedin"`
	YouTube   *string `json:"youtube"`
	WhatsApp  *string `json:"whatsapp"`
	MapLink   *string `json:"map"`
	Role      *string `json:"role"`
}

// Validate applies the contact info field rules.
func (req *ContactRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Instagram, is.URL),
		validation.Field(&req.Twitter, is.URL),
		validation.Field(&req.LinkedIn, is.URL),
		validation.Field(&req.YouTube, is.URL),
		validation.Field(&req.MapLink, is.URL),
	)
}

// --- ContactService Interface ---
type ContactService interface {
	GetContact() (*models.ContactInfo, error)
	UpdateContact(req ContactRequest) (*models.ContactInfo, error)
}

// --- contactService Implementation ---
type contactService struct {
	contactRepo repositories.ContactRepository
}

// NewContactService creates a new instance of ContactService.
func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) GetContact() (*models.ContactInfo, error) {
	contact, err := s.contactRepo.GetContact()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact info: %w", err)
	}
	return contact, nil
}

func (s *contactService) UpdateContact(req ContactRequest) (*models.ContactInfo, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	contact := models.ContactInfo{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Location:  req.Location,
		Instagram: req.Instagram,
		Twitter:   req.Twitter,
		LinkedIn:  req.LinkedIn,
		YouTube:   req.YouTube,
		WhatsApp:  req.WhatsApp,
		MapLink:   req.MapLink,
		Role:      req.Role,
	}
	if err := s.contactRepo.UpsertContact(&contact); err != nil {
		return nil, fmt.Errorf("failed to update contact info: %w", err)
	}
	return &contact, nil
}
