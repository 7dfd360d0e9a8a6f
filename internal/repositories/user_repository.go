package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"incubator_backend/internal/models"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(userID int64) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	SetProfilePhoto(executor SQLExecutor, userID int64, photoID *string) error
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password_hash, admin_level, phone_number, domain,
	organization_name, organization_size, organization_industry, founder_name, founder_whatsapp,
	dpiit_number, sector, women_led, pan_number, gst_number, address, city_state_postal,
	product_description, business_type, website_url, growth_potential, profile_photo_id,
	created_at, updated_at`

func scanUser(s scanner) (*models.User, error) {
	var user models.User
	optionals := []**string{
		&user.PhoneNumber, &user.Domain, &user.OrganizationName, &user.OrganizationSize,
		&user.OrganizationIndustry, &user.FounderName, &user.FounderWhatsApp, &user.DpiitNumber,
		&user.Sector, &user.WomenLed, &user.PanNumber, &user.GstNumber, &user.Address,
		&user.CityStatePostal, &user.ProductDescription, &user.BusinessType, &user.WebsiteURL,
		&user.GrowthPotential, &user.ProfilePhotoID,
	}

	nullables := make([]sql.NullString, len(optionals))
	dest := []interface{}{&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.AdminLevel}
	for i := range nullables {
		dest = append(dest, &nullables[i])
	}
	dest = append(dest, &user.CreatedAt, &user.UpdatedAt)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	for i, ns := range nullables {
		if ns.Valid {
			value := ns.String
			*optionals[i] = &value
		}
	}
	return &user, nil
}

func (r *userRepository) CreateUser(user *models.User) error {
	query := `INSERT INTO users (name, email, password_hash, admin_level, phone_number, domain,
	            organization_name, organization_size, organization_industry, founder_name, founder_whatsapp,
	            dpiit_number, sector, women_led, pan_number, gst_number, address, city_state_postal,
	            product_description, business_type, website_url, growth_potential)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	          RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(query,
		user.Name, user.Email, user.PasswordHash, user.AdminLevel, user.PhoneNumber, user.Domain,
		user.OrganizationName, user.OrganizationSize, user.OrganizationIndustry, user.FounderName,
		user.FounderWhatsApp, user.DpiitNumber, user.Sector, user.WomenLed, user.PanNumber,
		user.GstNumber, user.Address, user.CityStatePostal, user.ProductDescription,
		user.BusinessType, user.WebsiteURL, user.GrowthPotential,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if IsUniqueViolation(err, "users_email_key") {
			return fmt.Errorf("%w: email %q", ErrDuplicateKey, user.Email)
		}
		return fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *userRepository) GetUserByID(userID int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting user by id: %v", ErrDatabaseError, err)
	}
	return user, nil
}

func (r *userRepository) GetUserByEmail(email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting user by email: %v", ErrDatabaseError, err)
	}
	return user, nil
}

func (r *userRepository) SetProfilePhoto(executor SQLExecutor, userID int64, photoID *string) error {
	result, err := executor.Exec(`UPDATE users SET profile_photo_id = $1, updated_at = $2 WHERE id = $3`,
		photoID, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("%w: updating profile photo: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking profile photo update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
