// Package response writes the JSON envelopes of the API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	StatusSuccess = "success"
)

// SuccessResponse is the envelope of every successful response.
type SuccessResponse struct {
	Status  string `json:"status"`
	Results *int   `json:"results,omitempty"`
	Token   string `json:"token,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// DocumentData wraps one document or a list of documents.
type DocumentData struct {
	Data any `json:"data"`
}

// UserData wraps the user of a token response.
type UserData struct {
	User any `json:"user"`
}

// Document writes {status, data:{data: doc}}.
func Document(c echo.Context, statusCode int, doc any) error {
	return c.JSON(statusCode, SuccessResponse{
		Status: StatusSuccess,
		Data:   DocumentData{Data: doc},
	})
}

// Documents writes {status, results, data:{data: docs}}.
func Documents(c echo.Context, docs any, results int) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Status:  StatusSuccess,
		Results: &results,
		Data:    DocumentData{Data: docs},
	})
}

// Data writes {status, data} for responses that name their payload, e.g. {stats: ...}.
func Data(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Status: StatusSuccess,
		Data:   data,
	})
}

// Results writes {status, results, data} for named lists.
func Results(c echo.Context, data any, results int) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Status:  StatusSuccess,
		Results: &results,
		Data:    data,
	})
}

// Token writes {status, token} and adds data.user on 201.
func Token(c echo.Context, statusCode int, token string, user any) error {
	resp := SuccessResponse{
		Status: StatusSuccess,
		Token:  token,
	}
	if statusCode == http.StatusCreated && user != nil {
		resp.Data = UserData{User: user}
	}

	return c.JSON(statusCode, resp)
}

// Message writes {status, message}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]string{
		"status":  StatusSuccess,
		"message": message,
	})
}

// NoContent answers 204 with an empty body.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
