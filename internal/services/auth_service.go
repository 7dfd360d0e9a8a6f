package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"incubator_backend/internal/models"
	"incubator_backend/internal/repositories"
	"incubator_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// --- Data Transfer Objects (DTOs) ---

// LoginRequest DTO
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUserRequest carries the account fields plus the organization
// profile captured on the incubation application form.
type RegisterUserRequest struct {
	Name                 string  `json:"name" binding:"required"`
	Email                string  `json:"email" binding:"required,email"`
	Password             string  `json:"password" binding:"required,min=8"`
	PhoneNumber          *string `json:"phone_number"`
	Domain               *string `json:"domain"`
	OrganizationName     *string `json:"organization_name"`
	OrganizationSize     *string `json:"organization_size"`
	OrganizationIndustry *string `json:"organization_industry"`
	FounderName          *string `json:"founder_name"`
	FounderWhatsApp      *string `json:"founder_whatsapp"`
	DpiitNumber          *string `json:"dpiit_number"`
	Sector               *string `json:"sector"`
	WomenLed             *string `json:"women_led"`
	PanNumber            *string `json:"pan_number"`
	GstNumber            *string `json:"gst_number"`
	Address              *string `json:"address"`
	CityStatePostal      *string `json:"city_state_postal"`
	ProductDescription   *string `json:"product_description"`
	BusinessType         *string `json:"business_type"`
	WebsiteURL           *string `json:"website_url"`
	GrowthPotential      *string `json:"growth_potential"`
}

// AuthResponse DTO
type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
}

// --- AuthService Interface ---
type AuthService interface {
	RegisterUser(req RegisterUserRequest) (*models.User, error)
	LoginUser(req LoginRequest) (*AuthResponse, error)
	GetUserProfile(userID int64) (*models.User, error)
	SetProfilePhoto(userID int64, upload FileUpload) (*models.User, error)
	DeleteProfilePhoto(userID int64) error
}

// --- authService Implementation ---
type authService struct {
	db             *sql.DB
	userRepo       repositories.UserRepository
	attachmentRepo repositories.AttachmentRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(db *sql.DB, userRepo repositories.UserRepository,
	attachmentRepo repositories.AttachmentRepository) AuthService {
	return &authService{db: db, userRepo: userRepo, attachmentRepo: attachmentRepo}
}

// RegisterUser handles the business logic for user registration.
// New accounts always start as regular (non-admin) users.
func (s *authService) RegisterUser(req RegisterUserRequest) (*models.User, error) {
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:                 strings.TrimSpace(req.Name),
		Email:                strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:         string(hashedPasswordBytes),
		AdminLevel:           0,
		PhoneNumber:          req.PhoneNumber,
		Domain:               req.Domain,
		OrganizationName:     req.OrganizationName,
		OrganizationSize:     req.OrganizationSize,
		OrganizationIndustry: req.OrganizationIndustry,
		FounderName:          req.FounderName,
		FounderWhatsApp:      req.FounderWhatsApp,
		DpiitNumber:          req.DpiitNumber,
		Sector:               req.Sector,
		WomenLed:             req.WomenLed,
		PanNumber:            req.PanNumber,
		GstNumber:            req.GstNumber,
		Address:              req.Address,
		CityStatePostal:      req.CityStatePostal,
		ProductDescription:   req.ProductDescription,
		BusinessType:         req.BusinessType,
		WebsiteURL:           req.WebsiteURL,
		GrowthPotential:      req.GrowthPotential,
	}

	if err = s.userRepo.CreateUser(&user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user.PasswordHash = ""
	return &user, nil
}

// LoginUser handles user login and token generation.
func (s *authService) LoginUser(req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetUserByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user for login: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, user.Email, user.Name, user.AdminLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	user.PasswordHash = ""
	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetUserProfile fetches a user by ID for the /me endpoint.
func (s *authService) GetUserProfile(userID int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}

// SetProfilePhoto replaces the user's profile photo, removing the previous
// attachment in the same transaction.
func (s *authService) SetProfilePhoto(userID int64, upload FileUpload) (*models.User, error) {
	user, err := s.GetUserProfile(userID)
	if err != nil {
		return nil, err
	}

	attachment, err := swapAttachment(s.db, s.attachmentRepo, user.ProfilePhotoID, upload,
		func(executor repositories.SQLExecutor, newID *string) error {
			return s.userRepo.SetProfilePhoto(executor, userID, newID)
		})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to set profile photo: %w", err)
	}

	photoID := attachment.ID.String()
	user.ProfilePhotoID = &photoID
	return user, nil
}

// DeleteProfilePhoto clears the reference and removes the attachment.
func (s *authService) DeleteProfilePhoto(userID int64) error {
	user, err := s.GetUserProfile(userID)
	if err != nil {
		return err
	}
	if user.ProfilePhotoID == nil {
		return nil
	}

	if err := s.userRepo.SetProfilePhoto(s.db, userID, nil); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to clear profile photo: %w", err)
	}

	cleanupAttachment(s.db, s.attachmentRepo, user.ProfilePhotoID)
	return nil
}
