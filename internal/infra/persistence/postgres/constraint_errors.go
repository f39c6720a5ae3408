package postgres

import (
	"regexp"
	"strings"

	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL error codes handled by translateError.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgInvalidText         = "22P02"
)

var duplicateDetailPattern = regexp.MustCompile(`Key \((.+?)\)=\((.*)\) already exists`)

// translateError maps driver errors onto domain errors. action describes the failed operation.
func translateError(err error, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			field, value := parseDuplicateDetail(pgErr.Detail)

			return domainerrors.NewDuplicateFieldError(field, value)
		case pgForeignKeyViolation:
			return domainerrors.ErrReferenceNotFound.WithDetails(pgErr.ConstraintName)
		case pgCheckViolation, pgNotNullViolation:
			return domainerrors.ErrValidationFailed.WithDetails(pgErr.ConstraintName)
		case pgInvalidText:
			return domainerrors.ErrValidationFailed.WithDetails(pgErr.Message)
		}
	}

	if isUniqueConstraintViolation(err) {
		return domainerrors.NewDuplicateFieldError("value", "")
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrReferenceNotFound
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed
	}

	return domainerrors.NewDatabaseExecuteError(err, action)
}

// parseDuplicateDetail reads "Key (email)=(a@b.io) already exists." into ("email", "a@b.io").
// Composite keys come back comma separated: ("tour, user", "<id>, <id>").
func parseDuplicateDetail(detail string) (field, value string) {
	m := duplicateDetailPattern.FindStringSubmatch(detail)
	if m == nil {
		return "value", ""
	}

	columns := strings.Split(m[1], ",")
	fields := make([]string, 0, len(columns))
	for _, column := range columns {
		fields = append(fields, fieldName(strings.TrimSpace(column)))
	}

	return strings.Join(fields, ", "), m[2]
}

// fieldName converts a column name to its API field: "tour_id" -> "tour", "max_group_size" -> "maxGroupSize".
func fieldName(column string) string {
	column = strings.TrimSuffix(column, "_id")
	parts := strings.Split(column, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}

	return strings.Join(parts, "")
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// isConstraintViolation reports errors that translateError turns into client errors.
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation:
			return true
		}
	}

	return isUniqueConstraintViolation(err) || isForeignKeyConstraintViolation(err) || isCheckConstraintViolation(err)
}
