// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "natours/internal/errors"

// ErrNotFound is returned when no document matches a lookup.
var ErrNotFound = errors.New("record not found")
