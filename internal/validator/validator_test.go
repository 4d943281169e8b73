package validator

import (
	"errors"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/fdahk/Tjlogs/internal/domain"
	"github.com/fdahk/Tjlogs/internal/query"
)

func validInput() *domain.CreateArticleInput {
	return &domain.CreateArticleInput{
		Title:    "Test Article",
		Content:  "This is the article body.",
		Author:   "alice",
		Category: "frontend",
	}
}

func TestValidateCreateArticle(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		mutate  func(in *domain.CreateArticleInput)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid minimal article",
			mutate:  func(in *domain.CreateArticleInput) {},
			wantErr: false,
		},
		{
			name: "valid published article with optional fields",
			mutate: func(in *domain.CreateArticleInput) {
				in.Summary = "short"
				in.Cover = "/uploads/cover.png"
				in.Tag = "go,web"
				in.Status = "published"
			},
			wantErr: false,
		},
		{
			name:    "missing title",
			mutate:  func(in *domain.CreateArticleInput) { in.Title = "" },
			wantErr: true,
			errMsg:  "title",
		},
		{
			name:    "missing content",
			mutate:  func(in *domain.CreateArticleInput) { in.Content = "" },
			wantErr: true,
			errMsg:  "content",
		},
		{
			name:    "missing author",
			mutate:  func(in *domain.CreateArticleInput) { in.Author = "" },
			wantErr: true,
			errMsg:  "author",
		},
		{
			name:    "missing category",
			mutate:  func(in *domain.CreateArticleInput) { in.Category = "" },
			wantErr: true,
			errMsg:  "category",
		},
		{
			name:    "deleted is not a creatable status",
			mutate:  func(in *domain.CreateArticleInput) { in.Status = "deleted" },
			wantErr: true,
			errMsg:  "status",
		},
		{
			name:    "unknown status",
			mutate:  func(in *domain.CreateArticleInput) { in.Status = "archived" },
			wantErr: true,
			errMsg:  "status",
		},
		{
			name:    "title too long",
			mutate:  func(in *domain.CreateArticleInput) { in.Title = strings.Repeat("x", maxTitleLen+1) },
			wantErr: true,
			errMsg:  "title",
		},
		{
			name:    "multibyte title at the limit",
			mutate:  func(in *domain.CreateArticleInput) { in.Title = strings.Repeat("文", maxTitleLen) },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			err := v.ValidateCreateArticle(in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCreateArticle() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && tt.errMsg != "" {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			}
		})
	}
}

func TestValidatePatch(t *testing.T) {
	v := NewValidator()
	str := func(s string) *string { return &s }

	tests := []struct {
		name    string
		patch   query.Patch
		wantErr bool
	}{
		{name: "empty patch passes field rules", patch: query.Patch{}},
		{name: "empty strings are allowed", patch: query.Patch{Title: str(""), Tag: str("")}},
		{name: "soft delete through status", patch: query.Patch{Status: str("deleted")}},
		{name: "unknown status", patch: query.Patch{Status: str("archived")}, wantErr: true},
		{name: "category too long", patch: query.Patch{Category: str(strings.Repeat("c", maxCategoryLen+1))}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePatch(&tt.patch)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePatch() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConvertValidationErrors(t *testing.T) {
	v := NewValidator()

	t.Run("nil stays nil", func(t *testing.T) {
		if err := ConvertValidationErrors(nil); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("all required fields missing", func(t *testing.T) {
		err := ConvertValidationErrors(v.ValidateCreateArticle(&domain.CreateArticleInput{}))
		if err == nil {
			t.Fatal("expected validation error")
		}

		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected *domain.ValidationError, got %T", err)
		}
		if ve.Field != "author" {
			t.Errorf("expected first field alphabetically (author), got %q", ve.Field)
		}
		if !errors.Is(err, domain.ErrMissingRequiredField) {
			t.Errorf("expected ErrMissingRequiredField, got %v", err)
		}
		if !domain.IsValidation(err) {
			t.Error("expected validation class")
		}
	})

	t.Run("rule failure is an invalid parameter", func(t *testing.T) {
		in := validInput()
		in.Status = "archived"

		err := ConvertValidationErrors(v.ValidateCreateArticle(in))
		if !errors.Is(err, domain.ErrInvalidParameter) {
			t.Errorf("expected ErrInvalidParameter, got %v", err)
		}
		if errors.Is(err, domain.ErrMissingRequiredField) {
			t.Error("status rule should not count as a missing field")
		}
	})

	t.Run("non ozzo error", func(t *testing.T) {
		err := ConvertValidationErrors(errors.New("boom"))
		if !errors.Is(err, domain.ErrInvalidParameter) {
			t.Errorf("expected ErrInvalidParameter, got %v", err)
		}
	})

	t.Run("empty ozzo errors", func(t *testing.T) {
		if err := ConvertValidationErrors(validation.Errors{"title": nil}); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})
}
