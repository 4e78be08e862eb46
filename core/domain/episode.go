// ABOUTME: Episode entity represents a single podcast installment
// ABOUTME: Validating setters keep field state legal; emits its item node tree

package domain

import (
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"podcast-feed-api/core/errors"
	"podcast-feed-api/core/interfaces"
	"podcast-feed-api/core/render"
	"podcast-feed-api/core/validate"
	"podcast-feed-api/pkg/utils/duration"
)

// Episode represents one installment of a podcast. State is mutated
// exclusively through the validating setters; an invalid value is
// never committed.
type Episode struct {
	title             string
	fileSize          int64
	mimeType          MimeType
	episodeURL        string
	guid              string
	pubDate           *time.Time
	description       string
	descriptionIsHTML bool
	durationSecs      int
	website           string
	imageURL          string
	explicit          *bool
	shouldBeRemoved   bool
	number            int
	season            int
	kind              EpisodeType
}

// NewEpisode creates an episode with no type set.
func NewEpisode() *Episode {
	return &Episode{}
}

// NewFullEpisode creates an episode of type full.
func NewFullEpisode() *Episode {
	return &Episode{kind: EpisodeTypeFull}
}

// NewTrailerEpisode creates an episode of type trailer.
func NewTrailerEpisode() *Episode {
	return &Episode{kind: EpisodeTypeTrailer}
}

// NewBonusEpisode creates an episode of type bonus.
func NewBonusEpisode() *Episode {
	return &Episode{kind: EpisodeTypeBonus}
}

// SetTitle sets the episode title, at most 255 characters.
func (e *Episode) SetTitle(title string) error {
	if err := validate.MaxLength("title", title, validate.DefaultMaxLength); err != nil {
		return err
	}
	e.title = strings.TrimSpace(title)
	return nil
}

// Title returns the episode title.
func (e *Episode) Title() string { return e.title }

// SetFileSize sets the enclosure size in bytes.
func (e *Episode) SetFileSize(size int64) error {
	if err := validate.PositiveInt("fileSize", size); err != nil {
		return err
	}
	e.fileSize = size
	return nil
}

// FileSize returns the enclosure size in bytes.
func (e *Episode) FileSize() int64 { return e.fileSize }

// SetMimeType sets the declared media type of the enclosure. When the
// episode URL is already set, the extension/MIME correspondence is
// re-checked; a mismatch leaves the previous value in place.
func (e *Episode) SetMimeType(mimeType MimeType) error {
	if err := validate.OneOf("mimeType", string(mimeType), mimeTypeValues()); err != nil {
		return err
	}

	previous := e.mimeType
	e.mimeType = mimeType
	if err := e.checkEnclosureConsistency(); err != nil {
		e.mimeType = previous
		return err
	}
	return nil
}

// MimeType returns the declared media type of the enclosure.
func (e *Episode) MimeType() MimeType { return e.mimeType }

// SetEpisodeURL sets the enclosure URL. The URL must be absolute and
// carry one of the known media extensions; when the MIME type is
// already set, the extension/MIME correspondence is re-checked.
func (e *Episode) SetEpisodeURL(episodeURL string) error {
	if err := validate.URL("episodeUrl", episodeURL); err != nil {
		return err
	}
	ext, err := extensionFromURL(episodeURL)
	if err != nil {
		return err
	}
	if err := validate.OneOf("episodeUrl", string(ext), fileExtensionValues()); err != nil {
		return err
	}

	previous := e.episodeURL
	e.episodeURL = strings.TrimSpace(episodeURL)
	if err := e.checkEnclosureConsistency(); err != nil {
		e.episodeURL = previous
		return err
	}
	return nil
}

// EpisodeURL returns the enclosure URL.
func (e *Episode) EpisodeURL() string { return e.episodeURL }

// SetFromFile derives the file size and MIME type from a local media
// file and feeds them through the normal validating setters. Inspector
// failures surface as validation errors.
func (e *Episode) SetFromFile(inspector interfaces.FileInspector, filePath string) error {
	if inspector == nil {
		return errors.NewValidation("file", "no file inspector available")
	}

	size, mimeType, err := inspector.Inspect(filePath)
	if err != nil {
		return errors.NewValidation("file", "cannot inspect '%s': %v", filePath, err)
	}

	if err := e.SetFileSize(size); err != nil {
		return err
	}
	return e.SetMimeType(MimeType(mimeType))
}

// SetGUID sets the globally unique identifier, at most 255 characters.
// Guids are recommended to be unique within a podcast; uniqueness is
// enforced when the episode is added to one.
func (e *Episode) SetGUID(guid string) error {
	if err := validate.MaxLength("guid", guid, validate.DefaultMaxLength); err != nil {
		return err
	}
	e.guid = strings.TrimSpace(guid)
	return nil
}

// GUID returns the episode guid.
func (e *Episode) GUID() string { return e.guid }

// SetPubDate sets the publication timestamp, rendered per RFC 2822.
func (e *Episode) SetPubDate(pubDate time.Time) error {
	e.pubDate = &pubDate
	return nil
}

// PubDate returns the publication timestamp, or nil when unset.
func (e *Episode) PubDate() *time.Time { return e.pubDate }

// SetDescription sets a plain-text description, at most 3600 visible
// characters. Markup passed here is escaped on render.
func (e *Episode) SetDescription(description string) error {
	if err := validate.MaxLengthHTML("description", description, validate.DefaultMaxLengthHTML); err != nil {
		return err
	}
	e.description = description
	e.descriptionIsHTML = false
	return nil
}

// SetDescriptionHTML sets an HTML description, at most 3600 visible
// characters after tag stripping. The markup is preserved on render.
func (e *Episode) SetDescriptionHTML(description string) error {
	if err := validate.MaxLengthHTML("description", description, validate.DefaultMaxLengthHTML); err != nil {
		return err
	}
	e.description = description
	e.descriptionIsHTML = true
	return nil
}

// Description returns the description text.
func (e *Episode) Description() string { return e.description }

// IsDescriptionHTML reports whether the description carries markup and
// will be CDATA-wrapped on render.
func (e *Episode) IsDescriptionHTML() bool { return e.descriptionIsHTML }

// SetDuration sets the episode length in whole seconds.
func (e *Episode) SetDuration(seconds int) error {
	if err := validate.PositiveInt("duration", int64(seconds)); err != nil {
		return err
	}
	e.durationSecs = seconds
	return nil
}

// SetDurationFromString sets the episode length from a clock-style
// string such as "28:19" or "01:02:03", or plain seconds.
func (e *Episode) SetDurationFromString(durationStr string) error {
	seconds, err := duration.ParseToSeconds(durationStr)
	if err != nil {
		return errors.NewValidation("duration", "%v", err)
	}
	return e.SetDuration(seconds)
}

// Duration returns the episode length in seconds, zero when unset.
func (e *Episode) Duration() int { return e.durationSecs }

// SetWebsite sets the episode web page URL.
func (e *Episode) SetWebsite(website string) error {
	if err := validate.URL("website", website); err != nil {
		return err
	}
	e.website = strings.TrimSpace(website)
	return nil
}

// Website returns the episode web page URL.
func (e *Episode) Website() string { return e.website }

// SetImageURL sets the episode artwork URL.
func (e *Episode) SetImageURL(imageURL string) error {
	if err := validate.URL("imageUrl", imageURL); err != nil {
		return err
	}
	e.imageURL = strings.TrimSpace(imageURL)
	return nil
}

// ImageURL returns the episode artwork URL.
func (e *Episode) ImageURL() string { return e.imageURL }

// SetExplicit marks the episode as explicit or clean.
func (e *Episode) SetExplicit(explicit bool) error {
	e.explicit = &explicit
	return nil
}

// IsExplicit reports the explicit flag, collapsing unset to false.
// The unset state is tracked internally but renders identically.
func (e *Episode) IsExplicit() bool {
	return e.explicit != nil && *e.explicit
}

// SetShouldBeRemoved asks aggregators to hide this episode.
func (e *Episode) SetShouldBeRemoved(remove bool) error {
	e.shouldBeRemoved = remove
	return nil
}

// ShouldBeRemoved reports whether aggregators are asked to hide this
// episode.
func (e *Episode) ShouldBeRemoved() bool { return e.shouldBeRemoved }

// SetEpisodeNumber sets the installment number within its season.
func (e *Episode) SetEpisodeNumber(number int) error {
	if err := validate.PositiveInt("episodeNumber", int64(number)); err != nil {
		return err
	}
	e.number = number
	return nil
}

// EpisodeNumber returns the episode number, zero when unset.
func (e *Episode) EpisodeNumber() int { return e.number }

// SetSeasonNumber sets the season the episode belongs to.
func (e *Episode) SetSeasonNumber(season int) error {
	if err := validate.PositiveInt("seasonNumber", int64(season)); err != nil {
		return err
	}
	e.season = season
	return nil
}

// SeasonNumber returns the season number, zero when unset.
func (e *Episode) SeasonNumber() int { return e.season }

// SetType sets the episode type (full, trailer or bonus).
func (e *Episode) SetType(kind EpisodeType) error {
	if err := validate.OneOf("type", string(kind), episodeTypeValues()); err != nil {
		return err
	}
	e.kind = kind
	return nil
}

// Type returns the episode type, empty when unset.
func (e *Episode) Type() EpisodeType { return e.kind }

// ValidateDataIntegrity asserts that every field required for a legal
// item element is present. It is side-effect-free and is run before
// any serialization output is produced.
func (e *Episode) ValidateDataIntegrity() error {
	if err := validate.Required("title", e.title); err != nil {
		return err
	}
	if err := validate.Required("fileSize", e.fileSize); err != nil {
		return err
	}
	if err := validate.Required("mimeType", string(e.mimeType)); err != nil {
		return err
	}
	return validate.Required("episodeUrl", e.episodeURL)
}

// checkEnclosureConsistency re-checks the extension/MIME
// correspondence from current field state. The check is deferred
// while either side of the pair is still unset.
func (e *Episode) checkEnclosureConsistency() error {
	if e.episodeURL == "" || e.mimeType == "" {
		return nil
	}

	ext, err := extensionFromURL(e.episodeURL)
	if err != nil {
		return err
	}
	if expected, ok := MimeTypeByExtension[ext]; !ok || expected != e.mimeType {
		return errors.NewValidation("episodeUrl",
			"extension '%s' does not match MIME type '%s'", ext, e.mimeType)
	}
	return nil
}

// extensionFromURL extracts the lowercased path extension of an
// enclosure URL.
func extensionFromURL(rawURL string) (FileExtension, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", errors.NewValidation("episodeUrl", "'%s' is not a valid URL", rawURL)
	}
	ext := strings.TrimPrefix(path.Ext(parsed.Path), ".")
	if ext == "" {
		return "", errors.NewValidation("episodeUrl", "'%s' has no file extension", rawURL)
	}
	return FileExtension(strings.ToLower(ext)), nil
}

// itemNodes walks the fixed episode field order and emits one node per
// populated field. Several readers rely on this order as a cheap
// validity heuristic, so it is part of the contract.
func (e *Episode) itemNodes() []render.Node {
	w := render.NewFieldWriter()

	w.WriteField("title", e.title, nil)
	if e.descriptionIsHTML {
		w.WriteHTMLField("description", e.description, nil)
	} else {
		w.WriteField("description", e.description, nil)
	}
	w.WriteField("enclosure", nil, map[string]string{
		"url":    e.episodeURL,
		"length": strconv.FormatInt(e.fileSize, 10),
		"type":   string(e.mimeType),
	})
	w.WriteField("guid", e.guid, nil)
	if e.pubDate != nil {
		w.WriteField("pubDate", e.pubDate.Format(time.RFC1123Z), nil)
	}
	if e.durationSecs > 0 {
		w.WriteField(render.Name(render.NSITunes, "duration"), strconv.Itoa(e.durationSecs), nil)
	}
	w.WriteField("link", e.website, nil)
	w.WriteField(render.Name(render.NSITunes, "image"), nil, map[string]string{"href": e.imageURL})
	w.WriteField(render.Name(render.NSITunes, "explicit"), boolString(e.IsExplicit()), nil)
	if e.number > 0 {
		w.WriteField(render.Name(render.NSITunes, "episode"), strconv.Itoa(e.number), nil)
	}
	if e.season > 0 {
		w.WriteField(render.Name(render.NSITunes, "season"), strconv.Itoa(e.season), nil)
	}
	w.WriteField(render.Name(render.NSITunes, "episodeType"), string(e.kind), nil)
	if e.shouldBeRemoved {
		w.WriteField(render.Name(render.NSITunes, "block"), "Yes", nil)
	}

	return w.Nodes()
}
