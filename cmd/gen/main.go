package main

import (
	"natours/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.TourModel{},
		model.TourStartDateModel{},
		model.TourGuideModel{},
		model.ReviewModel{},
		model.BookingModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
