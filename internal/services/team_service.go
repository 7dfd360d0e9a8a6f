package services

import (
	"database/sql"
	"errors"
	"fmt"

	"incubator_backend/internal/models"
	"incubator_backend/internal/repositories"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// --- Custom Service Errors ---
var ErrTeamMemberNotFound = errors.New("team member not found")

// --- Data Transfer Objects (DTOs) ---

// TeamMemberRequest carries create/update fields for a team member profile.
type TeamMemberRequest struct {
	Name     string  `json:"name" binding:"required"`
	Role     string  `json:"role" binding:"required"`
	Email    *string `json:"email"`
	LinkedIn *string `json:"linkedin"`
	Team     string  `json:"team" binding:"required"`
}

// Validate applies the team member field rules.
func (req *TeamMemberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Role, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.LinkedIn, is.URL),
		validation.Field(&req.Team, validation.Required, validation.In(
			models.TeamGroupCore,
			models.TeamGroupExecutive,
		)),
	)
}

// --- TeamService Interface ---
type TeamService interface {
	CreateTeamMember(req TeamMemberRequest) (*models.TeamMember, error)
	GetTeamMembers(group *string) ([]models.TeamMember, error)
	GetTeamMemberByID(memberID int64) (*models.TeamMember, error)
	UpdateTeamMember(memberID int64, req TeamMemberRequest) (*models.TeamMember, error)
	DeleteTeamMember(memberID int64) error
	SetTeamMemberPhoto(memberID int64, upload FileUpload) (*models.TeamMember, error)
	ReorderTeamMembers(memberIDs []int64) error
}

// --- teamService Implementation ---
type teamService struct {
	db             *sql.DB
	teamRepo       repositories.TeamRepository
	attachmentRepo repositories.AttachmentRepository
}

// NewTeamService creates a new instance of TeamService.
func NewTeamService(db *sql.DB, teamRepo repositories.TeamRepository,
	attachmentRepo repositories.AttachmentRepository) TeamService {
	return &teamService{db: db, teamRepo: teamRepo, attachmentRepo: attachmentRepo}
}

func (s *teamService) CreateTeamMember(req TeamMemberRequest) (*models.TeamMember, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	member := models.TeamMember{
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		LinkedIn: req.LinkedIn,
		Team:     req.Team,
	}
	if err := s.teamRepo.CreateTeamMember(&member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return &member, nil
}

func (s *teamService) GetTeamMembers(group *string) ([]models.TeamMember, error) {
	if group != nil && *group != "" && !models.IsValidTeamGroup(*group) {
		return nil, fmt.Errorf("%w: unknown team group %q", ErrValidation, *group)
	}
	members, err := s.teamRepo.GetTeamMembers(group)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	return members, nil
}

func (s *teamService) GetTeamMemberByID(memberID int64) (*models.TeamMember, error) {
	member, err := s.teamRepo.GetTeamMemberByID(memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	return member, nil
}

func (s *teamService) UpdateTeamMember(memberID int64, req TeamMemberRequest) (*models.TeamMember, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.GetTeamMemberByID(memberID)
	if err != nil {
		return nil, err
	}

	member := models.TeamMember{
		ID:           memberID,
		Name:         req.Name,
		Role:         req.Role,
		Email:        req.Email,
		LinkedIn:     req.LinkedIn,
		Team:         req.Team,
		PhotoID:      existing.PhotoID,
		DisplayOrder: existing.DisplayOrder,
	}
	if err := s.teamRepo.UpdateTeamMember(&member); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return &member, nil
}

func (s *teamService) DeleteTeamMember(memberID int64) error {
	member, err := s.GetTeamMemberByID(memberID)
	if err != nil {
		return err
	}

	if err := s.teamRepo.DeleteTeamMember(memberID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to delete team member: %w", err)
	}

	cleanupAttachment(s.db, s.attachmentRepo, member.PhotoID)
	return nil
}

func (s *teamService) SetTeamMemberPhoto(memberID int64, upload FileUpload) (*models.TeamMember, error) {
	member, err := s.GetTeamMemberByID(memberID)
	if err != nil {
		return nil, err
	}

	attachment, err := swapAttachment(s.db, s.attachmentRepo, member.PhotoID, upload,
		func(executor repositories.SQLExecutor, newID *string) error {
			return s.teamRepo.SetTeamMemberPhoto(executor, memberID, newID)
		})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to set team member photo: %w", err)
	}

	photoID := attachment.ID.String()
	member.PhotoID = &photoID
	return member, nil
}

// ReorderTeamMembers assigns display positions by the order of memberIDs.
// Callers reorder within one group at a time; positions are group-relative.
func (s *teamService) ReorderTeamMembers(memberIDs []int64) error {
	if len(memberIDs) == 0 {
		return fmt.Errorf("%w: no member ids provided", ErrValidation)
	}
	seen := make(map[int64]bool, len(memberIDs))
	for _, id := range memberIDs {
		if seen[id] {
			return fmt.Errorf("%w: duplicate member id %d", ErrValidation, id)
		}
		seen[id] = true
	}

	if err := s.teamRepo.ReorderTeamMembers(memberIDs); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to reorder team members: %w", err)
	}
	return nil
}
