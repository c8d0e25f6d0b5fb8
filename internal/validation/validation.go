package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"product-store-be/internal/models"
)

// allowedTLDs is the set of top-level domains an email address may end with
var allowedTLDs = []string{".com", ".net"}

// Validator checks request payloads against their schemas. Validation never
// mutates the input; on failure only the first violation is reported, in
// struct field order.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the custom "tld" email rule registered.
// Field names in error messages come from the json tags.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// tld restricts the email's domain to the allowed top-level domains
	v.RegisterValidation("tld", func(fl validator.FieldLevel) bool {
		email := strings.ToLower(fl.Field().String())
		at := strings.LastIndex(email, "@")
		if at < 0 {
			return false
		}
		domain := email[at+1:]
		// The domain must have at least two segments (e.g. example.com)
		if !strings.Contains(domain, ".") {
			return false
		}
		for _, tld := range allowedTLDs {
			if strings.HasSuffix(domain, tld) {
				return true
			}
		}
		return false
	})

	return &Validator{validate: v}
}

// ValidateRegister checks a registration payload
func (v *Validator) ValidateRegister(req *models.RegisterRequest) error {
	return v.check(req)
}

// ValidateLogin checks a login payload
func (v *Validator) ValidateLogin(req *models.LoginRequest) error {
	return v.check(req)
}

// ValidateProduct checks a product-creation payload
func (v *Validator) ValidateProduct(req *models.CreateProductRequest) error {
	return v.check(req)
}

// check runs the schema and surfaces the first violation as an error whose
// message is human-readable
func (v *Validator) check(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return errors.New(message(verrs[0]))
	}
	return err
}

// message translates a single field error into the message surfaced to the
// caller
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "tld":
		return fmt.Sprintf("%s must end with an allowed top-level domain (.com, .net)", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
