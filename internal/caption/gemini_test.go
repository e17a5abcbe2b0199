package caption

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
)

type fakeModels struct {
	text     string
	err      error
	model    string
	contents []*genai.Content
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}},
		}},
	}, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 7 {
		img.Set(x, h/2, color.NRGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestGeminiGenerator_Generate(t *testing.T) {
	models := &fakeModels{text: "  \"Soft light settles over a quiet vow.\"\n"}
	g := &GeminiGenerator{models: models, model: "gemini-2.5-flash-image", logger: zap.NewNop()}

	caption, err := g.Generate(context.Background(), pngBytes(t, 2048, 1024), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "Soft light settles over a quiet vow.", caption)
	assert.Equal(t, "gemini-2.5-flash-image", models.model)

	require.Len(t, models.contents, 1)
	parts := models.contents[0].Parts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[0].InlineData)
	assert.Equal(t, "image/jpeg", parts[0].InlineData.MIMEType)
	assert.Equal(t, Prompt, parts[1].Text)

	sent, err := imaging.Decode(bytes.NewReader(parts[0].InlineData.Data))
	require.NoError(t, err)
	assert.Equal(t, MaxEdge, sent.Bounds().Dx())
	assert.Equal(t, MaxEdge/2, sent.Bounds().Dy())
}

func TestGeminiGenerator_SmallImageNotUpscaled(t *testing.T) {
	models := &fakeModels{text: "Still."}
	g := &GeminiGenerator{models: models, model: "m", logger: zap.NewNop()}

	_, err := g.Generate(context.Background(), pngBytes(t, 300, 200), "image/png")
	require.NoError(t, err)

	sent, err := imaging.Decode(bytes.NewReader(models.contents[0].Parts[0].InlineData.Data))
	require.NoError(t, err)
	assert.Equal(t, 300, sent.Bounds().Dx())
}

func TestGeminiGenerator_UndecodableImageSentAsUploaded(t *testing.T) {
	models := &fakeModels{text: "Petals in the rain."}
	g := &GeminiGenerator{models: models, model: "m", logger: zap.NewNop()}
	raw := []byte("RIFF....WEBPVP8 ")

	caption, err := g.Generate(context.Background(), raw, "image/webp")
	require.NoError(t, err)
	assert.Equal(t, "Petals in the rain.", caption)

	require.Len(t, models.contents, 1)
	inline := models.contents[0].Parts[0].InlineData
	require.NotNil(t, inline)
	assert.Equal(t, "image/webp", inline.MIMEType)
	assert.Equal(t, raw, inline.Data)
}

func TestGeminiGenerator_RejectsUnusableInput(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		mimeType string
	}{
		{"not an image type", []byte("not an image"), "application/octet-stream"},
		{"missing type", []byte("not an image"), ""},
		{"too large to forward", make([]byte, MaxInlineBytes+1), "image/heic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			models := &fakeModels{text: "x"}
			g := &GeminiGenerator{models: models, model: "m", logger: zap.NewNop()}

			_, err := g.Generate(context.Background(), tt.data, tt.mimeType)
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindValidation))
			assert.Nil(t, models.contents, "no request is sent")
		})
	}
}

func TestGeminiGenerator_CollaboratorFailures(t *testing.T) {
	tests := []struct {
		name   string
		models *fakeModels
	}{
		{"api error", &fakeModels{err: assert.AnError}},
		{"empty text", &fakeModels{text: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &GeminiGenerator{models: tt.models, model: "m", logger: zap.NewNop()}

			_, err := g.Generate(context.Background(), pngBytes(t, 64, 64), "image/png")
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindCollaborator))
		})
	}
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Generate(context.Background(), nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDisabled)
	assert.True(t, domain.IsKind(err, domain.KindCollaborator))
}
