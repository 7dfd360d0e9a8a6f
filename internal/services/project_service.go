package services

import (
	"errors"
	"fmt"

	"incubator_backend/internal/models"
	"incubator_backend/internal/repositories"

	validation "github.com/go-ozzo/ozzo-validation"
)

// --- Custom Service Errors ---
var ErrProjectNotFound = errors.New("project not found")

// --- Data Transfer Objects (DTOs) ---

// ProjectRequest carries create/update fields for a student lab project.
type ProjectRequest struct {
	Name              string                 `json:"name" binding:"required"`
	RegisterNumber    string                 `json:"register_number" binding:"required"`
	UserID            *string                `json:"user_id"`
	Department        *string                `json:"department"`
	YearOfStudy       *string                `json:"year_of_study"`
	InstituteName     *string                `json:"institute_name"`
	ProjectType       *string                `json:"project_type"`
	OtherProjectType  *string                `json:"other_project_type"`
	ProjectTitle      *string                `json:"project_title"`
	LabEquipmentUsage *string                `json:"lab_equipment_usage"`
	ProjectDuration   *string                `json:"project_duration"`
	ProjectGuideName  *string                `json:"project_guide_name"`
	Members           []models.ProjectMember `json:"members"`
	Components        []string               `json:"components"`
	Status            string                 `json:"status"`
}

// Validate applies the project field rules, including per-member checks.
func (req *ProjectRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.RegisterNumber, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Status, validation.In(
			models.ProjectStatusActive,
			models.ProjectStatusCompleted,
		)),
	)
	if err != nil {
		return err
	}

	for i, member := range req.Members {
		if member.Name == "" || member.RegNo == "" {
			return fmt.Errorf("member %d: name and reg_no are required", i+1)
		}
	}
	return nil
}

// --- ProjectService Interface ---
type ProjectService interface {
	CreateProject(req ProjectRequest) (*models.Project, error)
	GetProjects(status *string, searchTerm *string, page, pageSize int) ([]models.Project, int, error)
	GetProjectByID(projectID int64) (*models.Project, error)
	UpdateProject(projectID int64, req ProjectRequest) (*models.Project, error)
	DeleteProject(projectID int64) error
}

// --- projectService Implementation ---
type projectService struct {
	projectRepo repositories.ProjectRepository
}

// NewProjectService creates a new instance of ProjectService.
func NewProjectService(projectRepo repositories.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func buildProject(req ProjectRequest) models.Project {
	project := models.Project{
		Name:              req.Name,
		RegisterNumber:    req.RegisterNumber,
		UserID:            req.UserID,
		Department:        req.Department,
		YearOfStudy:       req.YearOfStudy,
		InstituteName:     req.InstituteName,
		ProjectType:       req.ProjectType,
		OtherProjectType:  req.OtherProjectType,
		ProjectTitle:      req.ProjectTitle,
		LabEquipmentUsage: req.LabEquipmentUsage,
		ProjectDuration:   req.ProjectDuration,
		ProjectGuideName:  req.ProjectGuideName,
		Members:           req.Members,
		Components:        req.Components,
		Status:            req.Status,
	}
	if project.Members == nil {
		project.Members = []models.ProjectMember{}
	}
	if project.Components == nil {
		project.Components = []string{}
	}
	if project.Status == "" {
		project.Status = models.ProjectStatusActive
	}
	return project
}

func (s *projectService) CreateProject(req ProjectRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	project := buildProject(req)
	if err := s.projectRepo.CreateProject(&project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}

func (s *projectService) GetProjects(status *string, searchTerm *string, page, pageSize int) ([]models.Project, int, error) {
	if status != nil && *status != "" && !models.IsValidProjectStatus(*status) {
		return nil, 0, fmt.Errorf("%w: unknown project status %q", ErrValidation, *status)
	}
	projects, totalCount, err := s.projectRepo.GetProjects(status, searchTerm, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get projects: %w", err)
	}
	return projects, totalCount, nil
}

func (s *projectService) GetProjectByID(projectID int64) (*models.Project, error) {
	project, err := s.projectRepo.GetProjectByID(projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (s *projectService) UpdateProject(projectID int64, req ProjectRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	project := buildProject(req)
	project.ID = projectID
	if err := s.projectRepo.UpdateProject(&project); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &project, nil
}

func (s *projectService) DeleteProject(projectID int64) error {
	if err := s.projectRepo.DeleteProject(projectID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
