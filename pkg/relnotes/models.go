package relnotes

// Platform is the bucket a highlight belongs to.
type Platform string

const (
	PlatformAll     Platform = "all"
	PlatformMobile  Platform = "mobile"
	PlatformDesktop Platform = "desktop"
)

// Valid reports whether p is one of the three known buckets.
func (p Platform) Valid() bool {
	switch p {
	case PlatformAll, PlatformMobile, PlatformDesktop:
		return true
	}
	return false
}

// Emoji returns the glyph fixed to the platform.
func (p Platform) Emoji() string {
	switch p {
	case PlatformAll:
		return "📍"
	case PlatformMobile:
		return "📱"
	case PlatformDesktop:
		return "💻"
	}
	return ""
}

// Label returns the display name fixed to the platform.
func (p Platform) Label() string {
	switch p {
	case PlatformAll:
		return "All Platforms"
	case PlatformMobile:
		return "Mobile"
	case PlatformDesktop:
		return "Desktop"
	}
	return ""
}

// ReleaseNote is one categorized, user-facing highlight. Emoji and Label
// are fully determined by Platform; Normalize enforces the pairing no
// matter what the model returned.
type ReleaseNote struct {
	Platform Platform `json:"platform"`
	Emoji    string   `json:"emoji"`
	Label    string   `json:"label"`
	Content  string   `json:"content"`
}

// Normalize forces the emoji/label pairing from the platform.
func (n *ReleaseNote) Normalize() {
	n.Emoji = n.Platform.Emoji()
	n.Label = n.Platform.Label()
}

// GenerateRequest is the body of POST /api/generate-notes.
type GenerateRequest struct {
	RawNotes  string `json:"rawNotes"`
	BannerURL string `json:"bannerUrl,omitempty"`
}

// GenerateResponse carries the extracted notes and the rendered email.
type GenerateResponse struct {
	Notes []ReleaseNote `json:"notes"`
	HTML  string        `json:"html"`
}
