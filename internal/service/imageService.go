package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/shopstudio/bg-removal-service/internal/entity"
)

// RemoveBackground sends the image to the external provider and returns the
// processed image still base64-encoded. The credential guard runs before any
// network call: a missing API key is a deployment fault, not a provider one.
func (s *imageService) RemoveBackground(ctx context.Context, source entity.ImageSource) (string, error) {
	if s.apiKey == "" {
		return "", entity.ErrNotConfigured
	}

	var (
		result string
		err    error
	)

	switch src := source.(type) {
	case entity.RawBytes:
		encoded := base64.StdEncoding.EncodeToString(src.Data)
		result, err = s.provider.SubmitEncoded(ctx, encoded)
	case entity.ReferenceURL:
		result, err = s.provider.SubmitURL(ctx, src.URL)
	default:
		return "", fmt.Errorf("unknown image source %T", source)
	}

	if err != nil {
		return "", &entity.ProviderError{Message: err.Error()}
	}

	return result, nil
}
