package main

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"natours/internal/domain/entity"

	"github.com/Pallinder/go-randomdata"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	maxTourName      = 40
	tourImagesCount  = 3
	tourStops        = 4
	tourStartDates   = 3
	maxTourNameTries = 50
)

var difficulties = []entity.Difficulty{
	entity.DifficultyEasy,
	entity.DifficultyMedium,
	entity.DifficultyDifficult,
}

type generateOptions struct {
	Users          int
	Guides         int
	Tours          int
	ReviewsPerTour int
	Password       string
}

func generateDataset(opts generateOptions) (*dataset, error) {
	if opts.Guides < 1 {
		return nil, errors.New("at least one guide is required")
	}
	if opts.ReviewsPerTour > opts.Users {
		return nil, errors.Errorf("reviews-per-tour (%d) cannot exceed users (%d)", opts.ReviewsPerTour, opts.Users)
	}

	ds := &dataset{}
	ds.Users = append(ds.Users, newUserRecord(0, entity.RoleAdmin, opts.Password))

	guides := make([]uuid.UUID, 0, opts.Guides)
	for i := range opts.Guides {
		role := entity.RoleGuide
		if i%2 == 0 {
			role = entity.RoleLeadGuide
		}
		rec := newUserRecord(len(ds.Users), role, opts.Password)
		guides = append(guides, rec.ID)
		ds.Users = append(ds.Users, rec)
	}

	reviewers := make([]uuid.UUID, 0, opts.Users)
	for range opts.Users {
		rec := newUserRecord(len(ds.Users), entity.RoleUser, opts.Password)
		reviewers = append(reviewers, rec.ID)
		ds.Users = append(ds.Users, rec)
	}

	names := make(map[string]struct{}, opts.Tours)
	for i := range opts.Tours {
		name, err := uniqueTourName(names)
		if err != nil {
			return nil, err
		}
		tour := newTourRecord(i+1, name, guides)
		ds.Tours = append(ds.Tours, tour)

		// Each reviewer reviews a tour at most once.
		offset := randomdata.Number(0, len(reviewers))
		for j := range opts.ReviewsPerTour {
			ds.Reviews = append(ds.Reviews, reviewRecord{
				Review: entity.Review{
					ID:     uuid.New(),
					Review: randomdata.Paragraph(),
					Rating: float64(randomdata.Number(1, 6)),
					TourID: tour.ID,
				},
				User: reviewers[(offset+j)%len(reviewers)],
			})
		}
	}

	return ds, nil
}

func newUserRecord(n int, role entity.Role, password string) userRecord {
	name := randomdata.FullName(randomdata.RandomGender)
	email := fmt.Sprintf("%s.%d@example.com", strings.ToLower(strings.ReplaceAll(name, " ", ".")), n)

	return userRecord{
		User: entity.User{
			ID:    uuid.New(),
			Name:  name,
			Email: email,
			Role:  role,
		},
		Password: password,
	}
}

func newTourRecord(n int, name string, guides []uuid.UUID) tourRecord {
	price := float64(randomdata.Number(300, 3000))

	tour := entity.Tour{
		ID:           uuid.New(),
		Name:         name,
		Duration:     randomdata.Number(3, 15),
		MaxGroupSize: randomdata.Number(5, 26),
		Difficulty:   difficulties[randomdata.Number(0, len(difficulties))],
		Price:        price,
		Summary:      randomdata.Paragraph(),
		Description:  randomdata.Paragraph() + "\n" + randomdata.Paragraph(),
		ImageCover:   fmt.Sprintf("tour-%d-cover.jpg", n),
	}
	if randomdata.Boolean() {
		tour.PriceDiscount = float64(randomdata.Number(1, int(price/2)))
	}
	for i := range tourImagesCount {
		tour.Images = append(tour.Images, fmt.Sprintf("tour-%d-%d.jpg", n, i+1))
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	for i := range tourStartDates {
		tour.StartDates = append(tour.StartDates, start.AddDate(0, 2*(i+1), 0))
	}

	startLocation := randomLocation()
	startLocation.Description = randomdata.City()
	tour.StartLocation = &startLocation
	for day := 1; day <= tourStops; day++ {
		stop := randomLocation()
		stop.Description = randomdata.City()
		stop.Day = day
		tour.Locations = append(tour.Locations, stop)
	}

	pick := randomdata.Number(0, len(guides))
	selected := []uuid.UUID{guides[pick]}
	if len(guides) > 1 {
		selected = append(selected, guides[(pick+1)%len(guides)])
	}

	return tourRecord{Tour: tour, Guides: selected}
}

func randomLocation() entity.Location {
	loc := entity.NewLocation(randomdata.Decimal(-60, 60, 4), randomdata.Decimal(-170, 170, 4))
	loc.Address = randomdata.Address()

	return loc
}

func uniqueTourName(used map[string]struct{}) (string, error) {
	for range maxTourNameTries {
		name := fmt.Sprintf("The %s %s", capitalize(randomdata.Adjective()), capitalize(randomdata.Noun()))
		if len(name) < 10 {
			name += " Trail"
		}
		if len(name) > maxTourName {
			continue
		}
		if _, taken := used[name]; taken {
			continue
		}
		used[name] = struct{}{}

		return name, nil
	}

	return "", errors.New("could not find an unused tour name")
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}
