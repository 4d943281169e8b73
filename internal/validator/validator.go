package validator

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/fdahk/Tjlogs/internal/domain"
	"github.com/fdahk/Tjlogs/internal/query"
)

var (
	creatableStatus = []interface{}{string(domain.StatusDraft), string(domain.StatusPublished)}
	anyStatus       = []interface{}{string(domain.StatusDraft), string(domain.StatusPublished), string(domain.StatusDeleted)}
)

// Column widths mirror the articles table.
const (
	maxTitleLen    = 255
	maxAuthorLen   = 100
	maxCoverLen    = 512
	maxCategoryLen = 100
	maxTagLen      = 255
)

// Validator provides validation methods for article payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateArticle validates a creation payload.
func (v *Validator) ValidateCreateArticle(in *domain.CreateArticleInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.RuneLength(0, maxTitleLen).Error("title_too_long"),
		),
		validation.Field(&in.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&in.Author,
			validation.Required.Error("author_required"),
			validation.RuneLength(0, maxAuthorLen).Error("author_too_long"),
		),
		validation.Field(&in.Category,
			validation.Required.Error("category_required"),
			validation.RuneLength(0, maxCategoryLen).Error("category_too_long"),
		),
		validation.Field(&in.Cover,
			validation.RuneLength(0, maxCoverLen).Error("cover_too_long"),
		),
		validation.Field(&in.Tag,
			validation.RuneLength(0, maxTagLen).Error("tag_too_long"),
		),
		validation.Field(&in.Status,
			validation.In(creatableStatus...).Error("invalid_status"),
		),
	)
}

// ValidatePatch validates the fields present in an update payload. Absent
// fields are skipped; emptiness is checked when the update is composed.
func (v *Validator) ValidatePatch(p *query.Patch) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.RuneLength(0, maxTitleLen).Error("title_too_long"),
		),
		validation.Field(&p.Cover,
			validation.RuneLength(0, maxCoverLen).Error("cover_too_long"),
		),
		validation.Field(&p.Category,
			validation.RuneLength(0, maxCategoryLen).Error("category_too_long"),
		),
		validation.Field(&p.Tag,
			validation.RuneLength(0, maxTagLen).Error("tag_too_long"),
		),
		validation.Field(&p.Status,
			validation.In(anyStatus...).Error("invalid_status"),
		),
	)
}

// ConvertValidationErrors converts ozzo validation errors to a domain
// ValidationError. Missing required values wrap ErrMissingRequiredField,
// every other rule failure wraps ErrInvalidParameter. When several fields
// fail, the first one in alphabetical order is reported.
func ConvertValidationErrors(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return domain.NewValidationError("", err.Error(), domain.ErrInvalidParameter)
	}

	fields := make([]string, 0, len(ve))
	for field, fieldErr := range ve {
		if fieldErr != nil {
			fields = append(fields, field)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	sort.Strings(fields)

	field := fields[0]
	fieldErr := ve[field]

	cause := domain.ErrInvalidParameter
	var ruleErr validation.Error
	if errors.As(fieldErr, &ruleErr) && ruleErr.Code() == validation.ErrRequired.Code() {
		cause = domain.ErrMissingRequiredField
	}
	return domain.NewValidationError(field, fieldErr.Error(), cause)
}
