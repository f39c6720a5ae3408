package handler

import (
	"net/http"
	"net/url"

	"natours/internal/delivery/api/response"
	"natours/internal/domain/query"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/labstack/echo/v4"
)

// nameParam filters list results by a case-insensitive name fragment.
const nameParam = "name"

// resource serves the generic REST endpoints of one document type.
type resource[T, C, P any] struct {
	svc usecase.Resource[T, C, P]

	// parentParam names a path parameter that pre-filters lists on parentField,
	// e.g. the tour of nested review routes.
	parentParam string
	parentField string
}

func newResource[T, C, P any](svc usecase.Resource[T, C, P]) resource[T, C, P] {
	return resource[T, C, P]{svc: svc}
}

// nestedUnder returns a copy whose lists honor the parent path parameter.
func (r resource[T, C, P]) nestedUnder(param, field string) resource[T, C, P] {
	r.parentParam = param
	r.parentField = field

	return r
}

// createOne answers 201 with the stored document. prepare may fill fields from the request.
func (r resource[T, C, P]) createOne(prepare ...func(echo.Context, *C) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		input := new(C)
		if err := bindBody(c, input); err != nil {
			return err
		}
		for _, fn := range prepare {
			if err := fn(c, input); err != nil {
				return err
			}
		}

		doc, err := r.svc.Create(c.Request().Context(), input)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Document(c, http.StatusCreated, doc)
	}
}

func (r resource[T, C, P]) getOne() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}

		doc, err := r.svc.Get(c.Request().Context(), id)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Document(c, http.StatusOK, doc)
	}
}

// getAll runs the query string through the feature pipeline and projects the results.
func (r resource[T, C, P]) getAll() echo.HandlerFunc {
	return func(c echo.Context) error {
		params := url.Values{}
		for key, values := range c.QueryParams() {
			if key == nameParam {
				continue
			}
			params[key] = values
		}
		features := query.New(params)

		if r.parentParam != "" && c.Param(r.parentParam) != "" {
			parentID, err := pathID(c, r.parentParam)
			if err != nil {
				return err
			}
			features.Where(r.parentField, parentID.String())
		}
		features.NameLike(c.QueryParam(nameParam)).Build()

		docs, err := r.svc.List(c.Request().Context(), features)
		if err != nil {
			return errors.WithStack(err)
		}

		projected, err := query.Project(features.Projection, docs)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Documents(c, projected, len(projected))
	}
}

// updateOne applies a partial patch. prepare may adjust the patch from the request.
func (r resource[T, C, P]) updateOne(prepare ...func(echo.Context, *P) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		patch := new(P)
		if err := bindBody(c, patch); err != nil {
			return err
		}
		for _, fn := range prepare {
			if err := fn(c, patch); err != nil {
				return err
			}
		}

		doc, err := r.svc.Update(c.Request().Context(), id, patch)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Document(c, http.StatusOK, doc)
	}
}

func (r resource[T, C, P]) deleteOne() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}

		if err := r.svc.Delete(c.Request().Context(), id); err != nil {
			return errors.WithStack(err)
		}

		return response.NoContent(c)
	}
}
