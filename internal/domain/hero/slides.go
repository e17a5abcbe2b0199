package hero

import (
	"context"
	"errors"
	"fmt"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
)

// MaxSlots is the number of hero slideshow slots.
const MaxSlots = 3

// Slides is the ordered hero slideshow configuration. An empty string marks an empty slot.
type Slides struct {
	slots []string
}

// NewSlides builds a configuration from persisted slots, dropping anything past MaxSlots.
func NewSlides(slots []string) *Slides {
	if len(slots) > MaxSlots {
		slots = slots[:MaxSlots]
	}
	out := make([]string, len(slots))
	copy(out, slots)
	return &Slides{slots: out}
}

// Slots returns a copy of the slot list.
func (s *Slides) Slots() []string {
	out := make([]string, len(s.slots))
	copy(out, s.slots)
	return out
}

// Active returns the non-empty slots in order.
func (s *Slides) Active() []string {
	out := make([]string, 0, len(s.slots))
	for _, ref := range s.slots {
		if ref != "" {
			out = append(out, ref)
		}
	}
	return out
}

// Set assigns ref to slot index, padding earlier slots with empty placeholders.
func (s *Slides) Set(index int, ref string) error {
	if err := checkIndex(index); err != nil {
		return err
	}
	for len(s.slots) <= index {
		s.slots = append(s.slots, "")
	}
	s.slots[index] = ref
	return nil
}

// Clear empties slot index.
func (s *Slides) Clear(index int) error {
	return s.Set(index, "")
}

func checkIndex(index int) error {
	if index < 0 || index >= MaxSlots {
		return domain.NewValidationError(fmt.Sprintf("hero slot must be between 0 and %d", MaxSlots-1))
	}
	return nil
}

// ErrUndecodable reports a stored slot list that cannot be decoded. Callers may
// treat it as empty and overwrite it.
var ErrUndecodable = errors.New("hero images are not decodable")

// Repository persists the slot list as a whole.
type Repository interface {
	// Load returns the stored slots; a missing entry yields an empty list and a
	// corrupt one an error wrapping ErrUndecodable.
	Load(ctx context.Context) ([]string, error)

	// Save replaces the stored slots atomically.
	Save(ctx context.Context, slots []string) error
}
