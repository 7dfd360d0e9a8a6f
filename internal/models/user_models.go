package models

import "time"

// User represents an applicant or admin account, including the organization
// profile captured during registration.
type User struct {
	ID                   int64     `json:"id" db:"id"`
	Name                 string    `json:"name" db:"name" binding:"required"`
	Email                string    `json:"email" db:"email" binding:"required,email"`
	PasswordHash         string    `json:"-" db:"password_hash"`
	AdminLevel           int       `json:"admin_level" db:"admin_level"`
	PhoneNumber          *string   `json:"phone_number,omitempty" db:"phone_number"`
	Domain               *string   `json:"domain,omitempty" db:"domain"`
	OrganizationName     *string   `json:"organization_name,omitempty" db:"organization_name"`
	OrganizationSize     *string   `json:"organization_size,omitempty" db:"organization_size"`
	OrganizationIndustry *string   `json:"organization_industry,omitempty" db:"organization_industry"`
	FounderName          *string   `json:"founder_name,omitempty" db:"founder_name"`
	FounderWhatsApp      *string   `json:"founder_whatsapp,omitempty" db:"founder_whatsapp"`
	DpiitNumber          *string   `json:"dpiit_number,omitempty" db:"dpiit_number"`
	Sector               *string   `json:"sector,omitempty" db:"sector"`
	WomenLed             *string   `json:"women_led,omitempty" db:"women_led"`
	PanNumber            *string   `json:"pan_number,omitempty" db:"pan_number"`
	GstNumber            *string   `json:"gst_number,omitempty" db:"gst_number"`
	Address              *string   `json:"address,omitempty" db:"address"`
	CityStatePostal      *string   `json:"city_state_postal,omitempty" db:"city_state_postal"`
	ProductDescription   *string   `json:"product_description,omitempty" db:"product_description"`
	BusinessType         *string   `json:"business_type,omitempty" db:"business_type"`
	WebsiteURL           *string   `json:"website_url,omitempty" db:"website_url"`
	GrowthPotential      *string   `json:"growth_potential,omitempty" db:"growth_potential"`
	ProfilePhotoID       *string   `json:"profile_photo_id,omitempty" db:"profile_photo_id"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}
