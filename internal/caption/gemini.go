package caption

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
)

// Prompt is the fixed instruction sent with every image.
const Prompt = "Write a short, artistic, sophisticated one-sentence caption for this photography portfolio image. Do not include quotes."

const (
	// MaxEdge bounds the longest side of the image sent to the model.
	MaxEdge = 1024
	// MaxInlineBytes bounds images forwarded unchanged when they cannot be decoded here.
	MaxInlineBytes = 20 << 20
	jpegQuality    = 85
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("caption generation is not configured")

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator writes portfolio captions with a Gemini model.
type GeminiGenerator struct {
	models contentGenerator
	model  string
	logger *zap.Logger
}

// NewGeminiGenerator creates a generator backed by the Gemini API.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiGenerator{models: client.Models, model: model, logger: logger}, nil
}

// Generate returns a one-sentence caption for the image.
func (g *GeminiGenerator) Generate(ctx context.Context, data []byte, mimeType string) (string, error) {
	prepared, preparedType, err := prepareImage(data)
	if err != nil {
		// WebP, HEIC and friends go to the model as uploaded.
		if !strings.HasPrefix(mimeType, "image/") || len(data) > MaxInlineBytes {
			return "", domain.NewValidationError("file is not a supported image")
		}
		g.logger.Debug("sending image without resizing", zap.String("mime_type", mimeType), zap.Error(err))
		prepared, preparedType = data, mimeType
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(prepared, preparedType),
			genai.NewPartFromText(Prompt),
		}, genai.RoleUser),
	}

	resp, err := g.models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		g.logger.Warn("caption generation failed", zap.String("model", g.model), zap.Error(err))
		return "", domain.NewCollaboratorError("could not generate caption", err)
	}

	text := cleanCaption(resp.Text())
	if text == "" {
		return "", domain.NewCollaboratorError("could not generate caption", errors.New("empty response"))
	}

	g.logger.Debug("caption generated",
		zap.String("model", g.model),
		zap.String("source_type", mimeType),
		zap.Int("bytes_sent", len(prepared)),
	)
	return text, nil
}

// prepareImage decodes the image, applies EXIF orientation, and downsizes it to
// MaxEdge as JPEG.
func prepareImage(data []byte) ([]byte, string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", err
	}

	if b := img.Bounds(); b.Dx() > MaxEdge || b.Dy() > MaxEdge {
		img = imaging.Fit(img, MaxEdge, MaxEdge, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flatten(img), imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "image/jpeg", nil
}

// flatten paints transparent images over white so JPEG output has no black background.
func flatten(img image.Image) image.Image {
	bg := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), image.White.C)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

func cleanCaption(s string) string {
	return strings.Trim(strings.TrimSpace(s), "\"'“”‘’ \n")
}

// Disabled is the generator used when no API key is configured.
type Disabled struct{}

// Generate always fails with a collaborator error.
func (Disabled) Generate(context.Context, []byte, string) (string, error) {
	return "", domain.NewCollaboratorError("could not generate caption", ErrDisabled)
}
