package removebg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Provider exposes the two call shapes of the external background-removal
// API behind one interface so handlers and tests never touch the network
// layer directly.
type Provider interface {
	SubmitEncoded(ctx context.Context, imageB64 string) (string, error)
	SubmitURL(ctx context.Context, imageURL string) (string, error)
}

type client struct {
	apiURL      string
	apiKey      string
	size        string
	subjectType string
	httpClient  *http.Client
}

type removeRequest struct {
	ImageFileB64 string `json:"image_file_b64,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	Size         string `json:"size"`
	Type         string `json:"type"`
}

type removeResponse struct {
	Data struct {
		ResultB64 string `json:"result_b64"`
	} `json:"data"`
}

type errorResponse struct {
	Errors []struct {
		Title string `json:"title"`
	} `json:"errors"`
}

func NewClient(apiURL, apiKey, size, subjectType string) Provider {
	return &client{
		apiURL:      apiURL,
		apiKey:      apiKey,
		size:        size,
		subjectType: subjectType,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *client) SubmitEncoded(ctx context.Context, imageB64 string) (string, error) {
	return c.submit(ctx, removeRequest{
		ImageFileB64: imageB64,
		Size:         c.size,
		Type:         c.subjectType,
	})
}

func (c *client) SubmitURL(ctx context.Context, imageURL string) (string, error) {
	return c.submit(ctx, removeRequest{
		ImageURL: imageURL,
		Size:     c.size,
		Type:     c.subjectType,
	})
}

// submit performs a single blocking round trip to the provider. No retries:
// one failed attempt fails the whole request.
func (c *client) submit(ctx context.Context, reqBody removeRequest) (string, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/removebg", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("provider returned status %d: %s", resp.StatusCode, extractErrorTitle(body, resp.Status))
	}

	var result removeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("malformed provider response: %w", err)
	}
	if result.Data.ResultB64 == "" {
		return "", fmt.Errorf("provider response contains no image data")
	}

	return result.Data.ResultB64, nil
}

// extractErrorTitle pulls the first error title out of the provider's error
// body, falling back to the HTTP status line.
func extractErrorTitle(body []byte, fallback string) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && len(errResp.Errors) > 0 && errResp.Errors[0].Title != "" {
		return errResp.Errors[0].Title
	}
	return fallback
}
