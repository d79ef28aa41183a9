package validation

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type signup struct {
	Name     string `json:"name" validate:"required,min=3,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Page     int    `form:"page" validate:"omitempty,gte=1"`
	Size     int    `json:"size" validate:"omitempty,max=50"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)
	return v
}

func TestToDetails_ValidationErrors(t *testing.T) {
	err := newValidator().Struct(signup{Name: "Jo", Email: "not-an-email", Page: -1, Size: 80})

	details := ToDetails(err)
	assert.Equal(t, map[string]string{
		"name":     "must be at least 3 characters long",
		"email":    "must be a valid email",
		"password": "is required",
		"page":     "must be greater than or equal to 1",
		"size":     "must be at most 50",
	}, details)
}

func TestToDetails_JSONErrors(t *testing.T) {
	var dst signup
	syntaxErr := json.Unmarshal([]byte(`{"name":`), &dst)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(syntaxErr))

	typeErr := json.Unmarshal([]byte(`{"name": 12}`), &dst)
	assert.Equal(t, map[string]string{"name": "must be a string"}, ToDetails(typeErr))

	assert.Equal(t, map[string]string{"payload": "request body is empty"}, ToDetails(io.EOF))
}

func TestToDetails_Fallback(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("boom")))
}
