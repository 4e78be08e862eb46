// ABOUTME: Podcast entity is the feed root owning metadata, categories and episodes
// ABOUTME: Enforces collection invariants at insertion time and renders the channel

package domain

import (
	"fmt"
	"strings"

	"podcast-feed-api/core/errors"
	"podcast-feed-api/core/render"
	"podcast-feed-api/core/validate"
)

// Podcast is the feed root. Categories and episodes are appended
// through validating operations and are never reordered.
type Podcast struct {
	title             string
	description       string
	descriptionIsHTML bool
	imageURL          string
	language          string
	website           string
	author            string
	contactName       string
	contactEmail      string
	copyright         string
	explicit          bool
	shouldBeRemoved   bool
	isArchived        bool
	newFeedURL        string
	kind              PodcastType
	categories        []Category
	episodes          []*Episode
}

// NewPodcast creates a podcast with no type set.
func NewPodcast() *Podcast {
	return &Podcast{}
}

// NewEpisodic creates a podcast of type episodic.
func NewEpisodic() *Podcast {
	return &Podcast{kind: PodcastTypeEpisodic}
}

// NewSerial creates a podcast of type serial. Every episode added to a
// serial podcast must carry an episode number.
func NewSerial() *Podcast {
	return &Podcast{kind: PodcastTypeSerial}
}

// SetTitle sets the feed title, at most 255 characters.
func (p *Podcast) SetTitle(title string) error {
	if err := validate.MaxLength("title", title, validate.DefaultMaxLength); err != nil {
		return err
	}
	p.title = strings.TrimSpace(title)
	return nil
}

// Title returns the feed title.
func (p *Podcast) Title() string { return p.title }

// SetDescription sets a plain-text show description, at most 3600
// visible characters. Markup passed here is escaped on render.
func (p *Podcast) SetDescription(description string) error {
	if err := validate.MaxLengthHTML("description", description, validate.DefaultMaxLengthHTML); err != nil {
		return err
	}
	p.description = description
	p.descriptionIsHTML = false
	return nil
}

// SetDescriptionHTML sets an HTML show description, at most 3600
// visible characters after tag stripping.
func (p *Podcast) SetDescriptionHTML(description string) error {
	if err := validate.MaxLengthHTML("description", description, validate.DefaultMaxLengthHTML); err != nil {
		return err
	}
	p.description = description
	p.descriptionIsHTML = true
	return nil
}

// Description returns the show description.
func (p *Podcast) Description() string { return p.description }

// IsDescriptionHTML reports whether the description carries markup and
// will be CDATA-wrapped on render.
func (p *Podcast) IsDescriptionHTML() bool { return p.descriptionIsHTML }

// SetImageURL sets the show artwork URL.
func (p *Podcast) SetImageURL(imageURL string) error {
	if err := validate.URL("imageUrl", imageURL); err != nil {
		return err
	}
	p.imageURL = strings.TrimSpace(imageURL)
	return nil
}

// ImageURL returns the show artwork URL.
func (p *Podcast) ImageURL() string { return p.imageURL }

// SetLanguage sets the feed language as an ISO 639-1 tag such as "en"
// or "en-US".
func (p *Podcast) SetLanguage(language string) error {
	if err := validate.LanguageTag("language", language); err != nil {
		return err
	}
	p.language = language
	return nil
}

// Language returns the feed language tag.
func (p *Podcast) Language() string { return p.language }

// SetWebsite sets the show's web page URL.
func (p *Podcast) SetWebsite(website string) error {
	if err := validate.URL("website", website); err != nil {
		return err
	}
	p.website = strings.TrimSpace(website)
	return nil
}

// Website returns the show's web page URL.
func (p *Podcast) Website() string { return p.website }

// SetAuthor sets the show author, at most 255 characters.
func (p *Podcast) SetAuthor(author string) error {
	if err := validate.MaxLength("author", author, validate.DefaultMaxLength); err != nil {
		return err
	}
	p.author = strings.TrimSpace(author)
	return nil
}

// Author returns the show author.
func (p *Podcast) Author() string { return p.author }

// SetContactName sets the owner contact name, at most 255 characters.
func (p *Podcast) SetContactName(name string) error {
	if err := validate.MaxLength("contactName", name, validate.DefaultMaxLength); err != nil {
		return err
	}
	p.contactName = strings.TrimSpace(name)
	return nil
}

// ContactName returns the owner contact name.
func (p *Podcast) ContactName() string { return p.contactName }

// SetContactEmail sets the owner contact email address.
func (p *Podcast) SetContactEmail(email string) error {
	if err := validate.MaxLength("contactEmail", email, validate.DefaultMaxLength); err != nil {
		return err
	}
	if err := validate.Email("contactEmail", email); err != nil {
		return err
	}
	p.contactEmail = strings.TrimSpace(email)
	return nil
}

// ContactEmail returns the owner contact email address.
func (p *Podcast) ContactEmail() string { return p.contactEmail }

// SetCopyright sets the copyright notice, at most 255 characters.
func (p *Podcast) SetCopyright(copyright string) error {
	if err := validate.MaxLength("copyright", copyright, validate.DefaultMaxLength); err != nil {
		return err
	}
	p.copyright = strings.TrimSpace(copyright)
	return nil
}

// Copyright returns the copyright notice.
func (p *Podcast) Copyright() string { return p.copyright }

// SetExplicit marks the whole show as explicit or clean.
func (p *Podcast) SetExplicit(explicit bool) error {
	p.explicit = explicit
	return nil
}

// IsExplicit reports whether the show is marked explicit.
func (p *Podcast) IsExplicit() bool { return p.explicit }

// SetShouldBeRemoved asks aggregators to hide the whole feed.
func (p *Podcast) SetShouldBeRemoved(remove bool) error {
	p.shouldBeRemoved = remove
	return nil
}

// ShouldBeRemoved reports whether aggregators are asked to hide the
// feed.
func (p *Podcast) ShouldBeRemoved() bool { return p.shouldBeRemoved }

// SetArchived marks the show as complete: no further episodes will be
// published, but the feed stays visible.
func (p *Podcast) SetArchived(archived bool) error {
	p.isArchived = archived
	return nil
}

// IsArchived reports whether the show is complete.
func (p *Podcast) IsArchived() bool { return p.isArchived }

// SetNewFeedURL signals a permanent feed relocation to aggregators.
func (p *Podcast) SetNewFeedURL(newFeedURL string) error {
	if err := validate.URL("newFeedUrl", newFeedURL); err != nil {
		return err
	}
	p.newFeedURL = strings.TrimSpace(newFeedURL)
	return nil
}

// NewFeedURL returns the relocation URL, empty when unset.
func (p *Podcast) NewFeedURL() string { return p.newFeedURL }

// SetType sets the podcast type (episodic or serial).
func (p *Podcast) SetType(kind PodcastType) error {
	if err := validate.OneOf("type", string(kind), podcastTypeValues()); err != nil {
		return err
	}
	p.kind = kind
	return nil
}

// Type returns the podcast type, empty when unset.
func (p *Podcast) Type() PodcastType { return p.kind }

// AddCategory appends one category with optional subcategories. The
// main label must be non-blank after trimming; blank subcategory
// labels are dropped while the order of the rest is preserved.
func (p *Podcast) AddCategory(name string, subcategories ...string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewValidation("category", "category name must not be empty")
	}
	p.categories = append(p.categories, NewCategory(name, subcategories...))
	return nil
}

// Categories returns the category tree in insertion order.
func (p *Podcast) Categories() []Category { return p.categories }

// SetCategories replaces the category collection. Each entry goes
// through AddCategory, so bulk and incremental assignment share the
// same validation; a failure midway leaves the already-added entries
// in place.
func (p *Podcast) SetCategories(categories []Category) error {
	p.categories = nil
	for _, category := range categories {
		subs := make([]string, 0, len(category.Children))
		for _, child := range category.Children {
			subs = append(subs, child.Name)
		}
		if err := p.AddCategory(category.Name, subs...); err != nil {
			return err
		}
	}
	return nil
}

// AddEpisode validates and appends one episode. Checks run in order:
// a serial podcast requires an episode number, episode numbers must be
// unique, and non-empty guids must be unique. The collection is
// append-only and never reordered.
func (p *Podcast) AddEpisode(episode *Episode) error {
	if episode == nil {
		return errors.NewValidation("episode", "episode must not be nil")
	}

	if p.kind == PodcastTypeSerial && episode.EpisodeNumber() == 0 {
		return errors.NewValidation("episodeNumber",
			"episodes of a serial podcast must have an episode number")
	}

	for _, existing := range p.episodes {
		if episode.EpisodeNumber() != 0 && existing.EpisodeNumber() == episode.EpisodeNumber() {
			return errors.NewValidation("episodeNumber",
				"episode number %d is already used", episode.EpisodeNumber())
		}
	}

	// Empty guids never conflict; only a non-empty guid collision is
	// rejected.
	for _, existing := range p.episodes {
		if episode.GUID() != "" && existing.GUID() == episode.GUID() {
			return errors.NewValidation("guid",
				"guid '%s' is already used", episode.GUID())
		}
	}

	p.episodes = append(p.episodes, episode)
	return nil
}

// Episodes returns the episode collection in insertion order.
func (p *Podcast) Episodes() []*Episode { return p.episodes }

// SetEpisodes replaces the episode collection. Each entry goes through
// AddEpisode, so bulk and incremental assignment share the same
// validation and ordering; a failure midway leaves the already-added
// episodes in place.
func (p *Podcast) SetEpisodes(episodes []*Episode) error {
	p.episodes = nil
	for _, episode := range episodes {
		if err := p.AddEpisode(episode); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDataIntegrity asserts that every field required for a legal
// channel element is present and that both collections hold at least
// one entry. It is side-effect-free and runs before any serialization
// output is produced.
func (p *Podcast) ValidateDataIntegrity() error {
	if err := validate.Required("title", p.title); err != nil {
		return err
	}
	if err := validate.Required("description", p.description); err != nil {
		return err
	}
	if err := validate.Required("imageUrl", p.imageURL); err != nil {
		return err
	}
	if err := validate.Required("language", p.language); err != nil {
		return err
	}
	if err := validate.Required("website", p.website); err != nil {
		return err
	}
	if err := validate.MinCount("categories", len(p.categories), 1); err != nil {
		return err
	}
	return validate.MinCount("episodes", len(p.episodes), 1)
}

// Render checks data integrity, walks the object graph in its fixed
// field order and hands the resulting node tree to the writer. The
// integrity check is complete before the first write, so no partial
// output is ever produced.
func (p *Podcast) Render(w render.Writer) (string, error) {
	if err := p.ValidateDataIntegrity(); err != nil {
		return "", err
	}
	for i, episode := range p.episodes {
		if err := episode.ValidateDataIntegrity(); err != nil {
			return "", errors.WrapError(err, fmt.Sprintf("episode %d", i+1))
		}
	}

	doc := render.Document{
		RootName: "rss",
		RootAttr: map[string]string{"version": "2.0"},
		Namespaces: map[string]string{
			render.NSITunes:  "itunes",
			render.NSContent: "content",
		},
		Children: []render.Node{
			{Name: "channel", Value: p.channelNodes()},
		},
	}

	return w.WriteDocument(doc)
}

// channelNodes walks the fixed channel field order and emits one node
// per populated field. The order is part of the contract.
func (p *Podcast) channelNodes() []render.Node {
	w := render.NewFieldWriter()

	w.WriteField("title", p.title, nil)
	w.WriteField("link", p.website, nil)
	w.WriteField("language", p.language, nil)
	w.WriteField(render.Name(render.NSITunes, "author"), p.author, nil)
	w.WriteField("copyright", p.copyright, nil)
	if p.descriptionIsHTML {
		w.WriteHTMLField("description", p.description, nil)
	} else {
		w.WriteField("description", p.description, nil)
	}
	w.WriteField(render.Name(render.NSITunes, "type"), string(p.kind), nil)
	w.WriteField(render.Name(render.NSITunes, "owner"), []render.Node{
		{Name: render.Name(render.NSITunes, "name"), Value: p.contactName},
		{Name: render.Name(render.NSITunes, "email"), Value: p.contactEmail},
	}, nil)
	w.WriteField(render.Name(render.NSITunes, "image"), nil, map[string]string{"href": p.imageURL})
	for _, category := range p.categories {
		node := category.node()
		w.WriteField(node.Name, node.Value, node.Attr)
	}
	w.WriteField(render.Name(render.NSITunes, "explicit"), boolString(p.explicit), nil)
	w.WriteField(render.Name(render.NSITunes, "new-feed-url"), p.newFeedURL, nil)
	if p.shouldBeRemoved {
		w.WriteField(render.Name(render.NSITunes, "block"), "Yes", nil)
	}
	if p.isArchived {
		w.WriteField(render.Name(render.NSITunes, "complete"), "Yes", nil)
	}
	for _, episode := range p.episodes {
		w.WriteField("item", episode.itemNodes(), nil)
	}

	return w.Nodes()
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
