package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"incubator_backend/internal/models"
)

// TeamRepository defines the interface for team member database operations.
type TeamRepository interface {
	CreateTeamMember(member *models.TeamMember) error
	GetTeamMembers(group *string) ([]models.TeamMember, error)
	GetTeamMemberByID(memberID int64) (*models.TeamMember, error)
	UpdateTeamMember(member *models.TeamMember) error
	DeleteTeamMember(memberID int64) error
	SetTeamMemberPhoto(executor SQLExecutor, memberID int64, photoID *string) error
	ReorderTeamMembers(memberIDs []int64) error
}

type teamRepository struct {
	db *sql.DB
}

// NewTeamRepository creates a new instance of TeamRepository.
func NewTeamRepository(db *sql.DB) TeamRepository {
	return &teamRepository{db: db}
}

const teamColumns = `id, name, role, email, linkedin, team, photo_id, display_order, created_at, updated_at`

func scanTeamMember(row scanner, member *models.TeamMember) error {
	var email, linkedin, photoID sql.NullString
	if err := row.Scan(&member.ID, &member.Name, &member.Role, &email, &linkedin,
		&member.Team, &photoID, &member.DisplayOrder, &member.CreatedAt, &member.UpdatedAt); err != nil {
		return err
	}
	if email.Valid {
		member.Email = &email.String
	}
	if linkedin.Valid {
		member.LinkedIn = &linkedin.String
	}
	if photoID.Valid {
		member.PhotoID = &photoID.String
	}
	return nil
}

// CreateTeamMember inserts a member at the end of its group's order.
func (r *teamRepository) CreateTeamMember(member *models.TeamMember) error {
	query := `INSERT INTO team_members (name, role, email, linkedin, team, display_order)
	          VALUES ($1, $2, $3, $4, $5,
	              (SELECT COALESCE(MAX(display_order), -1) + 1 FROM team_members WHERE team = $5))
	          RETURNING id, display_order, created_at, updated_at`
	err := r.db.QueryRow(query, member.Name, member.Role, member.Email, member.LinkedIn, member.Team).
		Scan(&member.ID, &member.DisplayOrder, &member.CreatedAt, &member.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: creating team member: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *teamRepository) GetTeamMembers(group *string) ([]models.TeamMember, error) {
	members := []models.TeamMember{}

	query := `SELECT ` + teamColumns + ` FROM team_members`
	var args []interface{}
	if group != nil && *group != "" {
		query += ` WHERE team = $1`
		args = append(args, *group)
	}
	query += ` ORDER BY team, display_order, id`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getting team members: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var member models.TeamMember
		if err := scanTeamMember(rows, &member); err != nil {
			return nil, fmt.Errorf("%w: scanning team member: %v", ErrDatabaseError, err)
		}
		members = append(members, member)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating team members: %v", ErrDatabaseError, err)
	}
	return members, nil
}

func (r *teamRepository) GetTeamMemberByID(memberID int64) (*models.TeamMember, error) {
	var member models.TeamMember
	query := `SELECT ` + teamColumns + ` FROM team_members WHERE id = $1`
	err := scanTeamMember(r.db.QueryRow(query, memberID), &member)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting team member: %v", ErrDatabaseError, err)
	}
	return &member, nil
}

func (r *teamRepository) UpdateTeamMember(member *models.TeamMember) error {
	query := `UPDATE team_members
	          SET name = $1, role = $2, email = $3, linkedin = $4, team = $5, updated_at = $6
	          WHERE id = $7`
	result, err := r.db.Exec(query, member.Name, member.Role, member.Email, member.LinkedIn,
		member.Team, time.Now(), member.ID)
	if err != nil {
		return fmt.Errorf("%w: updating team member: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking team member update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTeamMember removes a member and closes the gap in its group's order
// in the same transaction.
func (r *teamRepository) DeleteTeamMember(memberID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning team member delete: %v", ErrDatabaseError, err)
	}
	defer tx.Rollback()

	var group string
	var order int
	err = tx.QueryRow(`DELETE FROM team_members WHERE id = $1 RETURNING team, display_order`, memberID).
		Scan(&group, &order)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	} else if err != nil {
		return fmt.Errorf("%w: deleting team member: %v", ErrDatabaseError, err)
	}

	_, err = tx.Exec(`UPDATE team_members SET display_order = display_order - 1, updated_at = $1
	                  WHERE team = $2 AND display_order > $3`, time.Now(), group, order)
	if err != nil {
		return fmt.Errorf("%w: closing team order gap: %v", ErrDatabaseError, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing team member delete: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *teamRepository) SetTeamMemberPhoto(executor SQLExecutor, memberID int64, photoID *string) error {
	result, err := executor.Exec(`UPDATE team_members SET photo_id = $1, updated_at = $2 WHERE id = $3`,
		photoID, time.Now(), memberID)
	if err != nil {
		return fmt.Errorf("%w: updating team member photo: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking team member photo update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReorderTeamMembers assigns display_order by position in memberIDs, in one
// transaction.
func (r *teamRepository) ReorderTeamMembers(memberIDs []int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning team reorder: %v", ErrDatabaseError, err)
	}
	defer tx.Rollback()

	now := time.Now()
	for position, id := range memberIDs {
		result, err := tx.Exec(`UPDATE team_members SET display_order = $1, updated_at = $2 WHERE id = $3`,
			position, now, id)
		if err != nil {
			return fmt.Errorf("%w: reordering team member %d: %v", ErrDatabaseError, id, err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: checking team reorder: %v", ErrDatabaseError, err)
		}
		if rowsAffected == 0 {
			return ErrNotFound
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing team reorder: %v", ErrDatabaseError, err)
	}
	return nil
}
