// ABOUTME: Reusable validation primitives shared by the feed entities
// ABOUTME: Each rule returns a structured ValidationError naming the offending value

package validate

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"podcast-feed-api/core/errors"
	"podcast-feed-api/pkg/utils/html"
)

// DefaultMaxLength is the limit applied to short text fields.
const DefaultMaxLength = 255

// DefaultMaxLengthHTML is the visible-character limit applied to
// HTML-capable fields after tag stripping.
const DefaultMaxLengthHTML = 3600

var languagePattern = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

// OneOf fails unless value is a member of the allowed set.
func OneOf(field, value string, allowed []string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return errors.NewValidation(field, "value '%s' is not one of [%s]", value, strings.Join(allowed, ", "))
}

// MaxLength trims the text and fails if its UTF-8 character count
// exceeds limit.
func MaxLength(field, text string, limit int) error {
	trimmed := strings.TrimSpace(text)
	if count := utf8.RuneCountInString(trimmed); count > limit {
		return errors.NewValidation(field, "length %d exceeds maximum of %d characters", count, limit)
	}
	return nil
}

// MaxLengthHTML strips markup from the text and applies MaxLength to
// what remains visible.
func MaxLengthHTML(field, fragment string, limit int) error {
	return MaxLength(field, html.StripTags(fragment), limit)
}

// Email fails unless the text parses as a syntactically valid address.
func Email(field, text string) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(text)); err != nil {
		return errors.NewValidation(field, "'%s' is not a valid email address", text)
	}
	return nil
}

// URL fails unless the text parses as an absolute URL with both a
// scheme and a host.
func URL(field, text string) error {
	parsed, err := url.Parse(strings.TrimSpace(text))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.NewValidation(field, "'%s' is not a valid URL", text)
	}
	return nil
}

// PositiveInt fails unless n is greater than zero.
func PositiveInt(field string, n int64) error {
	if n <= 0 {
		return errors.NewValidation(field, "value %d must be a positive integer", n)
	}
	return nil
}

// Required fails when the value is absent: nil, a blank string, or a
// zero numeric. Used by the pre-render integrity checks.
func Required(field string, value interface{}) error {
	missing := errors.NewValidation(field, "required value is missing")

	switch v := value.(type) {
	case nil:
		return missing
	case string:
		if strings.TrimSpace(v) == "" {
			return missing
		}
	case int:
		if v == 0 {
			return missing
		}
	case int64:
		if v == 0 {
			return missing
		}
	}
	return nil
}

// MinCount fails when a collection holds fewer than min elements.
func MinCount(field string, count, min int) error {
	if count < min {
		return errors.NewValidation(field, "requires at least %d element(s), found %d", min, count)
	}
	return nil
}

// LanguageTag fails unless the text is an ISO 639-1 language tag,
// optionally with an uppercase region suffix (en, en-US).
func LanguageTag(field, text string) error {
	if !languagePattern.MatchString(text) {
		return errors.NewValidation(field, "'%s' is not an ISO 639-1 language tag", text)
	}
	return nil
}
