package photo

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
)

func TestNewPhoto(t *testing.T) {
	p, err := NewPhoto("https://cdn.example.com/portfolio/1700.jpg", "  ", CategoryWedding, false, true)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, p.ID())
	assert.Equal(t, DefaultCaption, p.Caption())
	assert.Equal(t, CategoryWedding, p.Category())
	assert.False(t, p.IsHighlight())
	assert.True(t, p.IsPackageCover())
	assert.WithinDuration(t, time.Now(), p.CreatedAt(), time.Minute)
}

func TestNewPhoto_RequiresImageURL(t *testing.T) {
	_, err := NewPhoto("", "caption", CategoryPortrait, false, false)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestNewPhoto_UnknownCategoryBecomesOther(t *testing.T) {
	p, err := NewPhoto("https://cdn.example.com/a.jpg", "Golden hour", Category("Astro"), true, false)
	require.NoError(t, err)
	assert.Equal(t, CategoryOther, p.Category())
	assert.Equal(t, "Golden hour", p.Caption())
}

func TestObjectNameFromURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://cdn.example.com/portfolio/1700000000.jpg", "1700000000.jpg"},
		{"http://localhost:9000/portfolio/hero-17.png?X-Amz=1", "hero-17.png"},
		{"https://cdn.example.com/portfolio/my%20shot.jpg", "my shot.jpg"},
		{"1700.jpg", "1700.jpg"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectNameFromURL(tt.raw))
		})
	}
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryWedding, ParseCategory("wedding"))
	assert.Equal(t, CategoryEditorial, ParseCategory(" EDITORIAL "))
	assert.Equal(t, CategoryOther, ParseCategory(""))
	assert.Equal(t, CategoryOther, ParseCategory("Food"))
	assert.Equal(t, CategoryOther, ParseCategory("All"))
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"", CategoryAll, true},
		{"all", CategoryAll, true},
		{"Portrait", CategoryPortrait, true},
		{" other ", CategoryOther, true},
		{"Food", CategoryOther, false},
	}
	for _, tt := range tests {
		got, ok := ParseFilter(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}

func TestCategory_IsValid(t *testing.T) {
	for _, c := range KnownCategories() {
		assert.True(t, c.IsValid(), c)
	}
	assert.True(t, CategoryOther.IsValid())
	assert.False(t, CategoryAll.IsValid())
	assert.False(t, Category("").IsValid())
}
