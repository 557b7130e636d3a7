package service

import (
	"context"

	"github.com/shopstudio/bg-removal-service/internal/entity"
	"github.com/shopstudio/bg-removal-service/internal/pkg/removebg"
)

type ImageService interface {
	RemoveBackground(ctx context.Context, source entity.ImageSource) (string, error)
}

type imageService struct {
	provider removebg.Provider
	apiKey   string
}

func NewImageService(provider removebg.Provider, apiKey string) ImageService {
	return &imageService{
		provider: provider,
		apiKey:   apiKey,
	}
}
