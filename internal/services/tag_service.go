// Package services – TagService
//
// This file implements the TagService. Tag names are normalized to Unicode
// NFC with runs of whitespace collapsed, so visually identical names collide
// on the unique index instead of producing near-duplicates.
//
// Observability: public methods are OpenTelemetry-instrumented.
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"

	"github.com/tbourn/go-ecommerce-api/internal/domain"
	"github.com/tbourn/go-ecommerce-api/internal/repo"
)

// TagService coordinates tag persistence.
type TagService struct {
	DB *gorm.DB

	// NameMaxLen caps tag names by rune length (0 disables the check).
	NameMaxLen int
}

// Create stores a new tag.
func (s *TagService) Create(ctx context.Context, name string) (*domain.Tag, error) {
	ctx, span := otel.Tracer("services/TagService").Start(ctx, "Create")
	defer span.End()

	name, err := s.normalize(name)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("tag.name", name))

	t, err := repo.CreateTag(ctx, s.DB, name)
	if errors.Is(err, repo.ErrDuplicate) {
		return nil, ErrDuplicateTag
	}
	return t, err
}

// Get returns tag id.
func (s *TagService) Get(ctx context.Context, id string) (*domain.Tag, error) {
	ctx, span := otel.Tracer("services/TagService").Start(ctx, "Get",
		trace.WithAttributes(attribute.String("tag.id", id)),
	)
	defer span.End()

	t, err := repo.GetTag(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrTagNotFound
	}
	return t, err
}

// ListPage returns a page of tags, newest first, and the total count.
func (s *TagService) ListPage(ctx context.Context, page, pageSize int) ([]domain.Tag, int64, error) {
	ctx, span := otel.Tracer("services/TagService").Start(ctx, "ListPage",
		trace.WithAttributes(
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	return listPage(page, pageSize,
		func() (int64, error) { return repo.CountTags(ctx, s.DB) },
		func(offset, limit int) ([]domain.Tag, error) { return repo.ListTagsPage(ctx, s.DB, offset, limit) },
	)
}

// Rename changes the name of tag id and returns the updated tag.
func (s *TagService) Rename(ctx context.Context, id, name string) (*domain.Tag, error) {
	ctx, span := otel.Tracer("services/TagService").Start(ctx, "Rename",
		trace.WithAttributes(attribute.String("tag.id", id)),
	)
	defer span.End()

	name, err := s.normalize(name)
	if err != nil {
		return nil, err
	}
	switch err := repo.RenameTag(ctx, s.DB, id, name); {
	case errors.Is(err, repo.ErrNotFound):
		return nil, ErrTagNotFound
	case errors.Is(err, repo.ErrDuplicate):
		return nil, ErrDuplicateTag
	case err != nil:
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes tag id.
func (s *TagService) Delete(ctx context.Context, id string) error {
	ctx, span := otel.Tracer("services/TagService").Start(ctx, "Delete",
		trace.WithAttributes(attribute.String("tag.id", id)),
	)
	defer span.End()

	err := repo.DeleteTag(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrTagNotFound
	}
	return err
}

func (s *TagService) normalize(name string) (string, error) {
	name = normalizeName(name)
	if name == "" {
		return "", ErrEmptyTagName
	}
	if s.NameMaxLen > 0 && utf8.RuneCountInString(name) > s.NameMaxLen {
		return "", ErrTagNameTooLong
	}
	return name, nil
}

// normalizeName applies NFC, trims, and collapses internal whitespace.
func normalizeName(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(norm.NFC.String(s)), " ")
}

// whitespaceRE collapses consecutive whitespace to a single space.
var whitespaceRE = regexp.MustCompile(`\s+`)
