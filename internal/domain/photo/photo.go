package photo

import (
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
)

// DefaultCaption is used when a photo is created without a caption.
const DefaultCaption = "Untitled"

// Photo is the aggregate root for portfolio images.
type Photo struct {
	id             uuid.UUID
	imageURL       string
	caption        string
	category       Category
	isHighlight    bool
	isPackageCover bool
	createdAt      time.Time
}

// NewPhoto creates a new portfolio photo.
func NewPhoto(imageURL, caption string, category Category, isHighlight, isPackageCover bool) (*Photo, error) {
	if imageURL == "" {
		return nil, domain.NewValidationError("image URL is required")
	}

	caption = strings.TrimSpace(caption)
	if caption == "" {
		caption = DefaultCaption
	}
	if !category.IsValid() {
		category = CategoryOther
	}

	return &Photo{
		id:             uuid.New(),
		imageURL:       imageURL,
		caption:        caption,
		category:       category,
		isHighlight:    isHighlight,
		isPackageCover: isPackageCover,
		createdAt:      time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Photo from persistence.
func Reconstruct(id uuid.UUID, imageURL, caption string, category Category, isHighlight, isPackageCover bool, createdAt time.Time) *Photo {
	return &Photo{
		id:             id,
		imageURL:       imageURL,
		caption:        caption,
		category:       category,
		isHighlight:    isHighlight,
		isPackageCover: isPackageCover,
		createdAt:      createdAt,
	}
}

// Getters.
func (p *Photo) ID() uuid.UUID { return p.id }
func (p *Photo) ImageURL() string { return p.imageURL }
func (p *Photo) Caption() string { return p.caption }
func (p *Photo) Category() Category { return p.category }
func (p *Photo) IsHighlight() bool { return p.isHighlight }
func (p *Photo) IsPackageCover() bool { return p.isPackageCover }
func (p *Photo) CreatedAt() time.Time { return p.createdAt }

// ObjectName returns the object store key backing the photo: the last path
// segment of its public URL, without any query string.
func (p *Photo) ObjectName() string {
	return ObjectNameFromURL(p.imageURL)
}

// ObjectNameFromURL extracts the object key from a public object URL.
func ObjectNameFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		if name, err := url.PathUnescape(path.Base(u.Path)); err == nil {
			return name
		}
		return path.Base(u.Path)
	}
	return path.Base(raw)
}
