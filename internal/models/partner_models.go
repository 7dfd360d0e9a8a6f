package models

import "time"

// Partner types. Academic, Corporate and IP Partners are companies;
// Mentors and External Investors are individuals.
const (
	PartnerTypeAcademic          = "Academic"
	PartnerTypeCorporate         = "Corporate"
	PartnerTypeIPPartners        = "IP Partners"
	PartnerTypeMentors           = "Mentors"
	PartnerTypeExternalInvestors = "External Investors"
)

// Partner represents a partner organization or individual.
type Partner struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name" binding:"required"`
	Type         string    `json:"type" db:"partner_type" binding:"required"`
	Role         *string   `json:"role,omitempty" db:"role"`
	Expertise    []string  `json:"expertise" db:"expertise"`
	CompanyName  *string   `json:"company_name,omitempty" db:"company_name"`
	Website      *string   `json:"website,omitempty" db:"website"`
	Email        *string   `json:"email,omitempty" db:"email"`
	LinkedIn     *string   `json:"linkedin,omitempty" db:"linkedin"`
	Details      *string   `json:"details,omitempty" db:"details"`
	LogoID       *string   `json:"logo_id,omitempty" db:"logo_id"`
	PhotoID      *string   `json:"photo_id,omitempty" db:"photo_id"`
	DisplayOrder int       `json:"order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// IsCompany reports whether the partner type is an organization rather than
// an individual.
func (p *Partner) IsCompany() bool {
	return IsCompanyPartnerType(p.Type)
}

// IsCompanyPartnerType reports whether the given type denotes a company.
func IsCompanyPartnerType(partnerType string) bool {
	switch partnerType {
	case PartnerTypeAcademic, PartnerTypeCorporate, PartnerTypeIPPartners:
		return true
	default:
		return false
	}
}

// IsValidPartnerType reports whether the type is in the closed set.
func IsValidPartnerType(partnerType string) bool {
	switch partnerType {
	case PartnerTypeAcademic, PartnerTypeCorporate, PartnerTypeIPPartners,
		PartnerTypeMentors, PartnerTypeExternalInvestors:
		return true
	default:
		return false
	}
}
