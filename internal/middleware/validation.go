package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	apierrors "uplcompare/internal/errors"
)

// MaxSheetNameLength is the longest worksheet name a workbook accepts
const MaxSheetNameLength = 31

// Validator decodes JSON request bodies and validates them with struct tags
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the custom tags registered
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("sheetname", isValidSheetName)
	_ = v.RegisterValidation("filename", isValidFilename)

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// DecodeJSON reads a JSON body into dst and validates it. A body over the
// LimitBody cap surfaces as *http.MaxBytesError.
func (v *Validator) DecodeJSON(r *http.Request, dst any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return apierrors.NewWithDetails(
				http.StatusUnsupportedMediaType,
				apierrors.CodeUnsupportedMedia,
				"Unsupported content type",
				map[string]any{"content_type": ct, "allowed": []string{"application/json"}},
			)
		}
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		if errors.Is(err, io.EOF) {
			return apierrors.New(http.StatusBadRequest, apierrors.CodeInvalidRequest, "Request body is empty")
		}
		return apierrors.InvalidRequestWithError(err)
	}
	if dec.More() {
		return apierrors.New(http.StatusBadRequest, apierrors.CodeInvalidRequest, "Request body must hold a single JSON object")
	}

	return v.Struct(dst)
}

// Struct validates s and converts failures to a field-level API error
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apierrors.InvalidRequestWithError(err)
	}

	fields := make([]apierrors.ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apierrors.ValidationError{
			Field:   fieldPath(fe),
			Message: formatValidationError(fe),
		})
	}
	return apierrors.NewValidationErrors(fields)
}

// Var validates a single value against tag
func (v *Validator) Var(value any, tag string) error {
	return v.validate.Var(value, tag)
}

// fieldPath drops the top-level struct name from the namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func formatValidationError(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, param)
	case "max":
		return fmt.Sprintf("%s must have at most %s entries", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	case "unique":
		return fmt.Sprintf("%s must not repeat values", field)
	case "sheetname":
		return fmt.Sprintf("%s must be a worksheet name of 1 to %d characters without : \\ / ? * [ ]", field, MaxSheetNameLength)
	case "filename":
		return fmt.Sprintf("%s must be a valid filename", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// isValidSheetName applies the worksheet naming rules of xlsx files
func isValidSheetName(fl validator.FieldLevel) bool {
	return ValidSheetName(fl.Field().String())
}

// ValidSheetName reports whether name can be used as a worksheet name
func ValidSheetName(name string) bool {
	n := utf8.RuneCountInString(name)
	if n == 0 || n > MaxSheetNameLength {
		return false
	}
	if strings.ContainsAny(name, `:\/?*[]`) {
		return false
	}
	return !strings.HasPrefix(name, "'") && !strings.HasSuffix(name, "'")
}

// isValidFilename rejects path separators and traversal
func isValidFilename(fl validator.FieldLevel) bool {
	filename := fl.Field().String()
	if filename == "" {
		return false
	}
	if strings.Contains(filename, "..") || strings.ContainsAny(filename, `/\`) {
		return false
	}
	return len(filename) <= 255
}
