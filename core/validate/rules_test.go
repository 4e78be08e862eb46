package validate

import (
	"strings"
	"testing"

	"podcast-feed-api/core/errors"
)

func TestOneOf(t *testing.T) {
	allowed := []string{"full", "trailer", "bonus"}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"member full", "full", false},
		{"member trailer", "trailer", false},
		{"member bonus", "bonus", false},
		{"non-member", "teaser", true},
		{"case sensitive", "Full", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := OneOf("type", tt.value, allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("OneOf(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.IsValidation(err) {
				t.Errorf("OneOf(%q) returned non-validation error %v", tt.value, err)
			}
		})
	}
}

func TestMaxLength(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		limit   int
		wantErr bool
	}{
		{"under limit", "short", 255, false},
		{"exactly at limit", strings.Repeat("a", 255), 255, false},
		{"over limit", strings.Repeat("a", 256), 255, true},
		{"whitespace trimmed before counting", "  " + strings.Repeat("a", 255) + "  ", 255, false},
		{"multibyte runes counted as characters", strings.Repeat("é", 255), 255, false},
		{"empty", "", 255, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MaxLength("title", tt.text, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Errorf("MaxLength() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMaxLengthHTML(t *testing.T) {
	// 3600 visible characters wrapped in markup that would exceed the
	// limit if counted raw.
	longVisible := "<p>" + strings.Repeat("a", 3600) + "</p>"
	tooLong := "<p>" + strings.Repeat("a", 3601) + "</p>"

	if err := MaxLengthHTML("description", longVisible, DefaultMaxLengthHTML); err != nil {
		t.Errorf("visible length at limit should pass, got %v", err)
	}
	if err := MaxLengthHTML("description", tooLong, DefaultMaxLengthHTML); err == nil {
		t.Error("visible length over limit should fail")
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"simple address", "owner@example.com", false},
		{"address with plus tag", "owner+feed@example.com", false},
		{"missing at sign", "owner.example.com", true},
		{"missing domain", "owner@", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email("contactEmail", tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("Email(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"https URL", "https://example.com/feed.xml", false},
		{"http URL with port", "http://example.com:8080/e1.mp3", false},
		{"missing scheme", "example.com/feed.xml", true},
		{"relative path", "/feed.xml", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := URL("website", tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("URL(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestPositiveInt(t *testing.T) {
	tests := []struct {
		name    string
		n       int64
		wantErr bool
	}{
		{"positive", 1000, false},
		{"one", 1, false},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PositiveInt("fileSize", tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("PositiveInt(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
			}
		})
	}
}

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{"non-empty string", "hello", false},
		{"empty string", "", true},
		{"whitespace-only string", "   ", true},
		{"nil", nil, true},
		{"zero int", 0, true},
		{"positive int", 3, false},
		{"zero int64", int64(0), true},
		{"positive int64", int64(1000), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Required("field", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Required(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestMinCount(t *testing.T) {
	if err := MinCount("episodes", 0, 1); err == nil {
		t.Error("empty collection should fail minimum of 1")
	}
	if err := MinCount("episodes", 1, 1); err != nil {
		t.Errorf("collection at minimum should pass, got %v", err)
	}
	if err := MinCount("categories", 4, 1); err != nil {
		t.Errorf("collection above minimum should pass, got %v", err)
	}
}

func TestLanguageTag(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"bare language", "en", false},
		{"language with region", "en-US", false},
		{"other language", "pt-BR", false},
		{"uppercase language", "EN", true},
		{"lowercase region", "en-us", true},
		{"three letters", "eng", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LanguageTag("language", tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("LanguageTag(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}
