package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

type stockPayload struct {
	ID      string `json:"id" validate:"required"`
	InStock *bool  `json:"inStock" validate:"required"`
}

func TestFromBindError_UsesFormTags(t *testing.T) {
	in := loginForm{Email: "nope", Password: "123"}
	err := validator.New().Struct(&in)

	got := FromBindError(err, &in)
	if got["email"] != "Enter a valid email address." {
		t.Fatalf("email: %q", got["email"])
	}
	if got["password"] != "Must be at least 6 characters." {
		t.Fatalf("password: %q", got["password"])
	}
}

func TestFromBindError_FallsBackToJSONTags(t *testing.T) {
	in := stockPayload{}
	err := validator.New().Struct(&in)

	got := FromBindError(err, &in)
	if got["id"] != "This field is required." || got["inStock"] != "This field is required." {
		t.Fatalf("unexpected fields: %v", got)
	}
}

func TestFromBindError_NonValidationError(t *testing.T) {
	got := FromBindError(errors.New("EOF"), &loginForm{})
	if _, ok := got["_"]; !ok || len(got) != 1 {
		t.Fatalf("expected generic error, got %v", got)
	}
}
