package stay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ValidationError describes one invalid field on one catalog record.
type ValidationError struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("listing %d: %s: %s", v.Index, v.Field, v.Message)
}

// ValidationErrors collects every invalid field found in a catalog.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	if len(v) == 1 {
		return "invalid catalog: " + v[0].Error()
	}
	return fmt.Sprintf("invalid catalog: %d error(s), first: %s", len(v), v[0].Error())
}

// Validator checks catalog records before they are stored.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a catalog validator.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &Validator{validate: v}
}

// Validate checks every listing and returns ValidationErrors if any fail.
func (v *Validator) Validate(catalog []Listing) error {
	var errs ValidationErrors
	for i := range catalog {
		err := v.validate.Struct(catalog[i])
		if err == nil {
			continue
		}
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validating listing %d: %w", i, err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, ValidationError{
				Index:   i,
				Field:   fe.Field(),
				Message: fieldMessage(fe),
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "url":
		return "must be a valid URL"
	}
	return "failed " + fe.Tag() + " check"
}

// jsonFieldName reports fields by their catalog (JSON) name.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// Decode reads a catalog from a JSON array of listing records.
func Decode(r io.Reader) ([]Listing, error) {
	var catalog []Listing
	if err := json.NewDecoder(r).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if catalog == nil {
		catalog = []Listing{}
	}
	return catalog, nil
}

// LoadFile decodes and validates the catalog file at path.
func LoadFile(path string) ([]Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "warning: closing catalog: %v\n", cerr)
		}
	}()

	catalog, err := Decode(f)
	if err != nil {
		return nil, err
	}
	if err := NewValidator().Validate(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}
