package models

import "time"

// EcosystemMetrics is the single row of headline numbers shown on the
// landing page. There is exactly one; updates overwrite it.
type EcosystemMetrics struct {
	RegisteredMembers          int64     `json:"registered_members" db:"registered_members"`
	StartupsSupported          int64     `json:"startups_supported" db:"startups_supported"`
	MentorsOnBoard             int64     `json:"mentors_on_board" db:"mentors_on_board"`
	IndustrialPartnerships     int64     `json:"industrial_partnerships" db:"industrial_partnerships"`
	AcademicPartnerships       int64     `json:"academic_partnerships" db:"academic_partnerships"`
	IndustryConsultingProjects int64     `json:"industry_consulting_projects" db:"industry_consulting_projects"`
	MsmeSupport                int64     `json:"msme_support" db:"msme_support"`
	OutreachInitiativesEvents  int64     `json:"outreach_initiatives_events" db:"outreach_initiatives_events"`
	NumberOfStartups           int64     `json:"number_of_startups" db:"number_of_startups"`
	StartupsGraduated          int64     `json:"startups_graduated" db:"startups_graduated"`
	EmploymentGenerated        int64     `json:"employment_generated" db:"employment_generated"`
	CorpsFund                  int64     `json:"corps_fund" db:"corps_fund"`
	CsrSecured                 int64     `json:"csr_secured" db:"csr_secured"`
	UpdatedAt                  time.Time `json:"updated_at" db:"updated_at"`
}
