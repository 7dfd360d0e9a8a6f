package models

import "time"

// ContactInfo is the single row of contact and social links shown in the
// site footer and contact page. There is exactly one; updates overwrite it.
type ContactInfo struct {
	Name      string    `json:"name" db:"name" binding:"required"`
	Email     *string   `json:"email,omitempty" db:"email"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Location  *string   `json:"location,omitempty" db:"location"`
	Instagram *string   `json:"instagram,omitempty" db:"instagram"`
	Twitter   *string   `json:"twitter,omitempty" db:"twitter"`
	LinkedIn  *string   `json:"linkedin,omitempty" db:"linkedin"`
	YouTube   *string   `json:"youtube,omitempty" db:"youtube"`
	WhatsApp  *string   `json:"whatsapp,omitempty" db:"whatsapp"`
	MapLink   *string   `json:"map,omitempty" db:"map_link"`
	Role      *string   `json:"role,omitempty" db:"role"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
