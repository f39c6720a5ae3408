// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"natours/internal/domain/entity"
	"natours/internal/domain/query"
	"natours/internal/domain/repository"
	"natours/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var userColumns = columnSet{
	"id":        {name: "id", kind: kindUUID},
	"name":      {name: "name", kind: kindString},
	"email":     {name: "email", kind: kindString},
	"photo":     {name: "photo", kind: kindString},
	"role":      {name: "role", kind: kindString},
	"createdAt": {name: "created_at", kind: kindTime},
}

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// activeUsers hides deactivated accounts from every find.
func activeUsers(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

// FindByID retrieves a single active user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	m, err := findByID[model.UserModel](ctx, repo.db, id, "failed to find user by id", activeUsers)
	if err != nil {
		return nil, err
	}

	return toUserDomain(m), nil
}

// FindByEmail retrieves a single active user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	m, err := findOne[model.UserModel](ctx, repo.db, "failed to find user by email", activeUsers, func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	})
	if err != nil {
		return nil, err
	}

	return toUserDomain(m), nil
}

func (repo *userRepository) FindByResetToken(ctx context.Context, hashedToken string, now time.Time) (*entity.User, error) {
	m, err := findOne[model.UserModel](ctx, repo.db, "failed to find user by reset token", activeUsers, func(db *gorm.DB) *gorm.DB {
		return db.Where("password_reset_token = ? AND password_reset_expires > ?", hashedToken, now)
	})
	if err != nil {
		return nil, err
	}

	return toUserDomain(m), nil
}

func (repo *userRepository) FindByConfirmToken(ctx context.Context, hashedToken string) (*entity.User, error) {
	m, err := findOne[model.UserModel](ctx, repo.db, "failed to find user by confirm token", activeUsers, func(db *gorm.DB) *gorm.DB {
		return db.Where("confirm_token = ?", hashedToken)
	})
	if err != nil {
		return nil, err
	}

	return toUserDomain(m), nil
}

func (repo *userRepository) List(ctx context.Context, features *query.Features) ([]*entity.User, error) {
	ms, err := list[model.UserModel](ctx, repo.db, userColumns, features, "failed to list users", activeUsers)
	if err != nil {
		return nil, err
	}

	return mapAll(ms, toUserDomain), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	m := fromUserDomain(user)
	if err := create(ctx, repo.db, m, "failed to create user"); err != nil {
		return err
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt

	return nil
}

// Update writes every column of the user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	m := fromUserDomain(user)
	m.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("*").Omit("id", "created_at").
		Updates(m)
	if result.Error != nil {
		return translateError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	user.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.UserModel](ctx, repo.db, id, "failed to delete user")
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                   data.ID,
		Name:                 data.Name,
		Email:                data.Email,
		Photo:                data.Photo,
		Role:                 entity.Role(data.Role),
		PasswordHash:         data.PasswordHash,
		PasswordChangedAt:    data.PasswordChangedAt,
		PasswordResetToken:   derefString(data.PasswordResetToken),
		PasswordResetExpires: data.PasswordResetExpires,
		ConfirmToken:         derefString(data.ConfirmToken),
		Confirmed:            data.Confirmed,
		Active:               data.Active,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                   data.ID,
		Name:                 data.Name,
		Email:                strings.ToLower(data.Email),
		Photo:                data.Photo,
		Role:                 data.Role.String(),
		PasswordHash:         data.PasswordHash,
		PasswordChangedAt:    data.PasswordChangedAt,
		PasswordResetToken:   nullableString(data.PasswordResetToken),
		PasswordResetExpires: data.PasswordResetExpires,
		ConfirmToken:         nullableString(data.ConfirmToken),
		Confirmed:            data.Confirmed,
		Active:               data.Active,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
