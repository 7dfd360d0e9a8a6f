package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"incubator_backend/internal/models"

	"github.com/lib/pq"
)

// ProjectRepository defines the interface for lab-project database
// operations.
type ProjectRepository interface {
	CreateProject(project *models.Project) error
	GetProjects(status *string, searchTerm *string, page, pageSize int) ([]models.Project, int, error)
	GetProjectByID(projectID int64) (*models.Project, error)
	UpdateProject(project *models.Project) error
	DeleteProject(projectID int64) error
}

type projectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new instance of ProjectRepository.
func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `id, name, register_number, user_id, department, year_of_study, institute_name,
	project_type, other_project_type, project_title, lab_equipment_usage, project_duration,
	project_guide_name, members, components, status, created_at, updated_at`

// Members travel as a JSONB column so the embedded subrecords survive
// round trips without a join table.
func marshalMembers(members []models.ProjectMember) ([]byte, error) {
	if members == nil {
		members = []models.ProjectMember{}
	}
	return json.Marshal(members)
}

func scanProject(s scanner, extra ...interface{}) (*models.Project, error) {
	var project models.Project
	var membersJSON []byte
	optionals := []**string{
		&project.UserID, &project.Department, &project.YearOfStudy, &project.InstituteName,
		&project.ProjectType, &project.OtherProjectType, &project.ProjectTitle,
		&project.LabEquipmentUsage, &project.ProjectDuration, &project.ProjectGuideName,
	}

	nullables := make([]sql.NullString, len(optionals))
	dest := []interface{}{&project.ID, &project.Name, &project.RegisterNumber}
	for i := range nullables {
		dest = append(dest, &nullables[i])
	}
	dest = append(dest, &membersJSON, pq.Array(&project.Components),
		&project.Status, &project.CreatedAt, &project.UpdatedAt)
	dest = append(dest, extra...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	for i, ns := range nullables {
		if ns.Valid {
			value := ns.String
			*optionals[i] = &value
		}
	}

	project.Members = []models.ProjectMember{}
	if len(membersJSON) > 0 {
		if err := json.Unmarshal(membersJSON, &project.Members); err != nil {
			return nil, fmt.Errorf("decoding members: %w", err)
		}
	}
	return &project, nil
}

func (r *projectRepository) CreateProject(project *models.Project) error {
	membersJSON, err := marshalMembers(project.Members)
	if err != nil {
		return fmt.Errorf("%w: encoding members: %v", ErrDatabaseError, err)
	}

	query := `INSERT INTO projects (name, register_number, user_id, department, year_of_study,
	            institute_name, project_type, other_project_type, project_title, lab_equipment_usage,
	            project_duration, project_guide_name, members, components, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	          RETURNING id, created_at, updated_at`
	err = r.db.QueryRow(query,
		project.Name, project.RegisterNumber, project.UserID, project.Department,
		project.YearOfStudy, project.InstituteName, project.ProjectType, project.OtherProjectType,
		project.ProjectTitle, project.LabEquipmentUsage, project.ProjectDuration,
		project.ProjectGuideName, membersJSON, pq.Array(project.Components), project.Status,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: creating project: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *projectRepository) GetProjects(status *string, searchTerm *string, page, pageSize int) ([]models.Project, int, error) {
	projects := []models.Project{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + projectColumns + `, COUNT(*) OVER() AS total_count FROM projects`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if status != nil && *status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *status)
		argCount++
	}
	if searchTerm != nil && *searchTerm != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR register_number ILIKE $%d OR project_title ILIKE $%d)",
			argCount, argCount, argCount))
		args = append(args, "%"+*searchTerm+"%")
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: getting projects: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		project, err := scanProject(rows, &totalCount)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning project: %v", ErrDatabaseError, err)
		}
		projects = append(projects, *project)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating projects: %v", ErrDatabaseError, err)
	}

	return projects, totalCount, nil
}

func (r *projectRepository) GetProjectByID(projectID int64) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	project, err := scanProject(r.db.QueryRow(query, projectID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting project: %v", ErrDatabaseError, err)
	}
	return project, nil
}

func (r *projectRepository) UpdateProject(project *models.Project) error {
	membersJSON, err := marshalMembers(project.Members)
	if err != nil {
		return fmt.Errorf("%w: encoding members: %v", ErrDatabaseError, err)
	}

	query := `UPDATE projects
	          SET name = $1, register_number = $2, user_id = $3, department = $4, year_of_study = $5,
	              institute_name = $6, project_type = $7, other_project_type = $8, project_title = $9,
	              lab_equipment_usage = $10, project_duration = $11, project_guide_name = $12,
	              members = $13, components = $14, status = $15, updated_at = $16
	          WHERE id = $17`
	result, err := r.db.Exec(query,
		project.Name, project.RegisterNumber, project.UserID, project.Department,
		project.YearOfStudy, project.InstituteName, project.ProjectType, project.OtherProjectType,
		project.ProjectTitle, project.LabEquipmentUsage, project.ProjectDuration,
		project.ProjectGuideName, membersJSON, pq.Array(project.Components), project.Status,
		time.Now(), project.ID)
	if err != nil {
		return fmt.Errorf("%w: updating project: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking project update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *projectRepository) DeleteProject(projectID int64) error {
	result, err := r.db.Exec(`DELETE FROM projects WHERE id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("%w: deleting project: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking project delete: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
