package entity

// StoreProductImageName is the display name used when the client selected
// a catalog image by URL instead of uploading a file.
const StoreProductImageName = "Store Product Image"

// ImageSource is the single image input of a request: either the raw bytes
// of an uploaded file or a URL pointing at an existing catalog image.
// Exactly one variant exists per request; when a client sends both, the
// uploaded file wins and the URL is ignored.
type ImageSource interface {
	isImageSource()
}

// RawBytes is an uploaded image file.
type RawBytes struct {
	Data     []byte
	Filename string
}

// ReferenceURL points at an already hosted image.
type ReferenceURL struct {
	URL string
}

func (RawBytes) isImageSource()     {}
func (ReferenceURL) isImageSource() {}

// ProcessImageResponse is the catalog endpoint success envelope. The image
// stays base64-encoded so the UI can render it without another round trip.
type ProcessImageResponse struct {
	Success              bool   `json:"success"`
	ProcessedImageBase64 string `json:"processedImageBase64"`
	OriginalName         string `json:"originalName"`
}

// Session identifies the authenticated caller for the duration of one request.
type Session struct {
	UserID string `json:"user_id"`
}
