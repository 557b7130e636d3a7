package transport

import (
	"github.com/shopstudio/bg-removal-service/internal/service"
)

type ImageHandler struct {
	service service.ImageService
}

func NewImageHandler(service service.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}
