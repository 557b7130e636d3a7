package transport

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopstudio/bg-removal-service/internal/entity"
	"github.com/sirupsen/logrus"
)

// RemoveBackground is the direct-upload endpoint: the processed image comes
// back as raw PNG bytes.
func (h *ImageHandler) RemoveBackground(c *gin.Context) {
	data, filename, ok := readImageFile(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	result, err := h.service.RemoveBackground(c.Request.Context(), entity.RawBytes{Data: data, Filename: filename})
	if err != nil {
		if errors.Is(err, entity.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Background removal service not configured"})
			return
		}
		logrus.WithError(err).Error("background removal failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process image"})
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(result)
	if err != nil {
		logrus.WithError(err).Error("provider returned undecodable image data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process image"})
		return
	}

	c.Header("Content-Length", strconv.Itoa(len(decoded)))
	c.Data(http.StatusOK, "image/png", decoded)
}

// ProcessImage is the catalog-aware endpoint: the client either uploads a
// file or picks an existing product image by URL. When both arrive, the
// uploaded file wins. The processed image stays base64-encoded in the JSON
// envelope so the storefront can render it without a second request.
func (h *ImageHandler) ProcessImage(c *gin.Context) {
	var (
		source       entity.ImageSource
		originalName string
	)

	if data, filename, ok := readImageFile(c); ok {
		source = entity.RawBytes{Data: data, Filename: filename}
		originalName = filename
	} else if imageURL := strings.TrimSpace(c.PostForm("imageUrl")); imageURL != "" {
		source = entity.ReferenceURL{URL: imageURL}
		originalName = entity.StoreProductImageName
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	result, err := h.service.RemoveBackground(c.Request.Context(), source)
	if err != nil {
		if errors.Is(err, entity.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Background removal service not configured (missing API key)."})
			return
		}
		logrus.WithError(err).Error("background removal failed")

		var provErr *entity.ProviderError
		message := "Failed to process image"
		if errors.As(err, &provErr) {
			message = "Failed to process image: " + provErr.Message
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, entity.ProcessImageResponse{
		Success:              true,
		ProcessedImageBase64: result,
		OriginalName:         originalName,
	})
}

// readImageFile pulls the "image" form file out of the multipart body.
// A missing or empty file is not an error here, just an absent source.
func readImageFile(c *gin.Context) ([]byte, string, bool) {
	file, err := c.FormFile("image")
	if err != nil || file.Size == 0 {
		return nil, "", false
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", false
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil || len(data) == 0 {
		return nil, "", false
	}

	return data, file.Filename, true
}
