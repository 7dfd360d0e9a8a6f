package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"incubator_backend/internal/models"
)

// ContactRepository reads and writes the singleton contact info row.
type ContactRepository interface {
	GetContact() (*models.ContactInfo, error)
	UpsertContact(contact *models.ContactInfo) error
}

type contactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new instance of ContactRepository.
func NewContactRepository(db *sql.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) GetContact() (*models.ContactInfo, error) {
	var contact models.ContactInfo
	var email, phone, location, instagram, twitter, linkedin, youtube, whatsapp, mapLink, role sql.NullString

	query := `SELECT name, email, phone, location, instagram, twitter, linkedin, youtube,
	            whatsapp, map_link, role, updated_at
	          FROM contact_info WHERE id`
	err := r.db.QueryRow(query).Scan(&contact.Name, &email, &phone, &location, &instagram,
		&twitter, &linkedin, &youtube, &whatsapp, &mapLink, &role, &contact.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting contact info: %v", ErrDatabaseError, err)
	}

	optionals := []**string{&contact.Email, &contact.Phone, &contact.Location, &contact.Instagram,
		&contact.Twitter, &contact.LinkedIn, &contact.YouTube, &contact.WhatsApp, &contact.MapLink, &contact.Role}
	values := []sql.NullString{email, phone, location, instagram, twitter, linkedin, youtube, whatsapp, mapLink, role}
	for i, value := range values {
		if value.Valid {
			v := value.String
			*optionals[i] = &v
		}
	}
	return &contact, nil
}

// UpsertContact writes the singleton row, creating it on first use.
func (r *contactRepository) UpsertContact(contact *models.ContactInfo) error {
	query := `INSERT INTO contact_info (id, name, email, phone, location, instagram, twitter,
	              linkedin, youtube, whatsapp, map_link, role, updated_at)
	          VALUES (TRUE, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
	          ON CONFLICT (id) DO UPDATE SET
	              name = EXCLUDED.name,
	              email = EXCLUDED.email,
	              phone = EXCLUDED.phone,
	              location = EXCLUDED.location,
	              instagram = EXCLUDED.instagram,
	              twitter = EXCLUDED.twitter,
	              linkedin = EXCLUDED.linkedin,
	              youtube = EXCLUDED.youtube,
	              whatsapp = EXCLUDED.whatsapp,
	              map_link = EXCLUDED.map_link,
	              role = EXCLUDED.role,
	              updated_at = now()
	          RETURNING updated_at`
	err := r.db.QueryRow(query, contact.Name, contact.Email, contact.Phone, contact.Location,
		contact.Instagram, contact.Twitter, contact.LinkedIn, contact.YouTube, contact.WhatsApp,
		contact.MapLink, contact.Role).Scan(&contact.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: upserting contact info: %v", ErrDatabaseError, err)
	}
	return nil
}
