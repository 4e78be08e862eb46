// ABOUTME: Closed value sets for podcast type, episode type and media formats
// ABOUTME: Carries the fixed extension to MIME type correspondence table

package domain

// PodcastType describes how a show is meant to be consumed
type PodcastType string

const (
	PodcastTypeEpisodic = PodcastType("episodic")
	PodcastTypeSerial   = PodcastType("serial")
)

// EpisodeType describes the role of an installment within a show
type EpisodeType string

const (
	EpisodeTypeFull    = EpisodeType("full")
	EpisodeTypeTrailer = EpisodeType("trailer")
	EpisodeTypeBonus   = EpisodeType("bonus")
)

// FileExtension is the path extension of a media enclosure
type FileExtension string

const (
	ExtensionM4A = FileExtension("m4a")
	ExtensionMP3 = FileExtension("mp3")
	ExtensionMOV = FileExtension("mov")
	ExtensionMP4 = FileExtension("mp4")
	ExtensionM4V = FileExtension("m4v")
	ExtensionPDF = FileExtension("pdf")
)

// MimeType is the declared media type of an enclosure
type MimeType string

const (
	MimeTypeM4A = MimeType("audio/x-m4a")
	MimeTypeMP3 = MimeType("audio/mpeg")
	MimeTypeMOV = MimeType("video/quicktime")
	MimeTypeMP4 = MimeType("video/mp4")
	MimeTypeM4V = MimeType("video/x-m4v")
	MimeTypePDF = MimeType("application/pdf")
)

// MimeTypeByExtension maps every legal file extension to exactly one
// MIME type. ExtensionByMimeType is its inverse.
var MimeTypeByExtension = map[FileExtension]MimeType{
	ExtensionM4A: MimeTypeM4A,
	ExtensionMP3: MimeTypeMP3,
	ExtensionMOV: MimeTypeMOV,
	ExtensionMP4: MimeTypeMP4,
	ExtensionM4V: MimeTypeM4V,
	ExtensionPDF: MimeTypePDF,
}

// ExtensionByMimeType is the inverse of MimeTypeByExtension.
var ExtensionByMimeType = map[MimeType]FileExtension{
	MimeTypeM4A: ExtensionM4A,
	MimeTypeMP3: ExtensionMP3,
	MimeTypeMOV: ExtensionMOV,
	MimeTypeMP4: ExtensionMP4,
	MimeTypeM4V: ExtensionM4V,
	MimeTypePDF: ExtensionPDF,
}

func podcastTypeValues() []string {
	return []string{string(PodcastTypeEpisodic), string(PodcastTypeSerial)}
}

func episodeTypeValues() []string {
	return []string{string(EpisodeTypeFull), string(EpisodeTypeTrailer), string(EpisodeTypeBonus)}
}

func fileExtensionValues() []string {
	return []string{
		string(ExtensionM4A), string(ExtensionMP3), string(ExtensionMOV),
		string(ExtensionMP4), string(ExtensionM4V), string(ExtensionPDF),
	}
}

func mimeTypeValues() []string {
	return []string{
		string(MimeTypeM4A), string(MimeTypeMP3), string(MimeTypeMOV),
		string(MimeTypeMP4), string(MimeTypeM4V), string(MimeTypePDF),
	}
}
