package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"natours/internal/domain/entity"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	usersFile   = "users.json"
	toursFile   = "tours.json"
	reviewsFile = "reviews.json"
)

// userRecord carries the plaintext password next to the user fields.
type userRecord struct {
	entity.User
	Password string `json:"password"`
}

// tourRecord lists guides by user id.
type tourRecord struct {
	entity.Tour
	Guides []uuid.UUID `json:"guides"`
}

// reviewRecord names its author by user id.
type reviewRecord struct {
	entity.Review
	User uuid.UUID `json:"user"`
}

type dataset struct {
	Users   []userRecord
	Tours   []tourRecord
	Reviews []reviewRecord
}

func readDataset(dir string) (*usecase.SeedData, error) {
	var ds dataset
	if err := readJSON(filepath.Join(dir, usersFile), &ds.Users); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, toursFile), &ds.Tours); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, reviewsFile), &ds.Reviews); err != nil {
		return nil, err
	}

	return ds.seedData(), nil
}

func writeDataset(dir string, ds *dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", dir)
	}
	if err := writeJSON(filepath.Join(dir, usersFile), ds.Users); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, toursFile), ds.Tours); err != nil {
		return err
	}

	return writeJSON(filepath.Join(dir, reviewsFile), ds.Reviews)
}

func (ds *dataset) seedData() *usecase.SeedData {
	data := &usecase.SeedData{
		Users:   make([]*usecase.SeedUser, 0, len(ds.Users)),
		Tours:   make([]*entity.Tour, 0, len(ds.Tours)),
		Reviews: make([]*entity.Review, 0, len(ds.Reviews)),
	}

	for i := range ds.Users {
		rec := &ds.Users[i]
		user := rec.User
		if user.Role == "" {
			user.Role = entity.RoleUser
		}
		data.Users = append(data.Users, &usecase.SeedUser{User: &user, Password: rec.Password})
	}
	for i := range ds.Tours {
		tour := ds.Tours[i].Tour
		tour.GuideIDs = ds.Tours[i].Guides
		tour.Guides = nil
		data.Tours = append(data.Tours, &tour)
	}
	for i := range ds.Reviews {
		review := ds.Reviews[i].Review
		review.UserID = ds.Reviews[i].User
		review.User = nil
		data.Reviews = append(data.Reviews, &review)
	}

	return data
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrapf(err, "failed to decode %s", path)
	}

	return nil
}

func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", path)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return nil
}
