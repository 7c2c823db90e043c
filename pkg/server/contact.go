package server

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/petspa/salonsite/pkg/errors"
)

// ContactForm is the contact section's form.
type ContactForm struct {
	Name    string `validate:"required,max=100"`
	Phone   string `validate:"required,min=6,max=32,phone_chars"`
	Email   string `validate:"omitempty,email,max=254"`
	Pet     string `validate:"max=100"`
	Message string `validate:"max=2000"`
}

func contactFromValues(v url.Values) ContactForm {
	get := func(k string) string { return strings.TrimSpace(v.Get(k)) }
	return ContactForm{
		Name:    get("name"),
		Phone:   get("phone"),
		Email:   get("email"),
		Pet:     get("pet"),
		Message: get("message"),
	}
}

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone_chars", func(fl validator.FieldLevel) bool {
		return strings.Trim(fl.Field().String(), "0123456789+-() .") == ""
	})
	return v
})

// Validate reports every invalid field as one INVALID_INPUT error.
func (f ContactForm) Validate() error {
	err := validate().Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "validate contact form")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		default:
			msgs = append(msgs, field+" is not valid")
		}
	}
	sort.Strings(msgs)
	return errors.New(errors.ErrCodeInvalidInput, "%s", strings.Join(msgs, "; "))
}
