package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"incubator_backend/internal/models"
)

// EcosystemRepository reads and writes the singleton ecosystem metrics row.
type EcosystemRepository interface {
	GetMetrics() (*models.EcosystemMetrics, error)
	UpsertMetrics(metrics *models.EcosystemMetrics) error
}

type ecosystemRepository struct {
	db *sql.DB
}

// NewEcosystemRepository creates a new instance of EcosystemRepository.
func NewEcosystemRepository(db *sql.DB) EcosystemRepository {
	return &ecosystemRepository{db: db}
}

const ecosystemColumns = `registered_members, startups_supported, mentors_on_board,
	industrial_partnerships, academic_partnerships, industry_consulting_projects,
	msme_support, outreach_initiatives_events, number_of_startups, startups_graduated,
	employment_generated, corps_fund, csr_secured, updated_at`

func (r *ecosystemRepository) GetMetrics() (*models.EcosystemMetrics, error) {
	var m models.EcosystemMetrics
	query := `SELECT ` + ecosystemColumns + ` FROM ecosystem_metrics WHERE id`
	err := r.db.QueryRow(query).Scan(
		&m.RegisteredMembers, &m.StartupsSupported, &m.MentorsOnBoard,
		&m.IndustrialPartnerships, &m.AcademicPartnerships, &m.IndustryConsultingProjects,
		&m.MsmeSupport, &m.OutreachInitiativesEvents, &m.NumberOfStartups, &m.StartupsGraduated,
		&m.EmploymentGenerated, &m.CorpsFund, &m.CsrSecured, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting ecosystem metrics: %v", ErrDatabaseError, err)
	}
	return &m, nil
}

// UpsertMetrics writes the singleton row, creating it on first use.
func (r *ecosystemRepository) UpsertMetrics(m *models.EcosystemMetrics) error {
	query := `INSERT INTO ecosystem_metrics (id, registered_members, startups_supported, mentors_on_board,
	              industrial_partnerships, academic_partnerships, industry_consulting_projects,
	              msme_support, outreach_initiatives_events, number_of_startups, startups_graduated,
	              employment_generated, corps_fund, csr_secured, updated_at)
	          VALUES (TRUE, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now())
	          ON CONFLICT (id) DO UPDATE SET
	              registered_members = EXCLUDED.registered_members,
	              startups_supported = EXCLUDED.startups_supported,
	              mentors_on_board = EXCLUDED.mentors_on_board,
	              industrial_partnerships = EXCLUDED.industrial_partnerships,
	              academic_partnerships = EXCLUDED.academic_partnerships,
	              industry_consulting_projects = EXCLUDED.industry_consulting_projects,
	              msme_support = EXCLUDED.msme_support,
	              outreach_initiatives_events = EXCLUDED.outreach_initiatives_events,
	              number_of_startups = EXCLUDED.number_of_startups,
	              startups_graduated = EXCLUDED.startups_graduated,
	              employment_generated = EXCLUDED.employment_generated,
	              corps_fund = EXCLUDED.corps_fund,
	              csr_secured = EXCLUDED.csr_secured,
	              updated_at = now()
	          RETURNING updated_at`
	err := r.db.QueryRow(query,
		m.RegisteredMembers, m.StartupsSupported, m.MentorsOnBoard,
		m.IndustrialPartnerships, m.AcademicPartnerships, m.IndustryConsultingProjects,
		m.MsmeSupport, m.OutreachInitiativesEvents, m.NumberOfStartups, m.StartupsGraduated,
		m.EmploymentGenerated, m.CorpsFund, m.CsrSecured).Scan(&m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: upserting ecosystem metrics: %v", ErrDatabaseError, err)
	}
	return nil
}
