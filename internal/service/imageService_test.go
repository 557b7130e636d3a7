package service

import (
	"context"
	"encoding/base64"
	"errors"
	"math/rand"
	"testing"

	"github.com/shopstudio/bg-removal-service/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProvider struct {
	encodedCalls int
	urlCalls     int
	lastEncoded  string
	lastURL      string
	result       string
	err          error
}

func (p *recordingProvider) SubmitEncoded(ctx context.Context, imageB64 string) (string, error) {
	p.encodedCalls++
	p.lastEncoded = imageB64
	return p.result, p.err
}

func (p *recordingProvider) SubmitURL(ctx context.Context, imageURL string) (string, error) {
	p.urlCalls++
	p.lastURL = imageURL
	return p.result, p.err
}

func TestRemoveBackground_MissingAPIKey(t *testing.T) {
	provider := &recordingProvider{result: "aGVsbG8="}
	svc := NewImageService(provider, "")

	_, err := svc.RemoveBackground(context.Background(), entity.RawBytes{Data: []byte("img")})

	assert.ErrorIs(t, err, entity.ErrNotConfigured)
	assert.Equal(t, 0, provider.encodedCalls)
	assert.Equal(t, 0, provider.urlCalls)
}

func TestRemoveBackground_VariantDispatch(t *testing.T) {
	tests := []struct {
		name         string
		source       entity.ImageSource
		wantEncoded  int
		wantURL      int
		checkPayload func(t *testing.T, p *recordingProvider)
	}{
		{
			name:        "raw bytes go through the encoded call",
			source:      entity.RawBytes{Data: []byte("raw image bytes"), Filename: "a.png"},
			wantEncoded: 1,
			wantURL:     0,
			checkPayload: func(t *testing.T, p *recordingProvider) {
				assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("raw image bytes")), p.lastEncoded)
			},
		},
		{
			name:        "reference url goes through the url call",
			source:      entity.ReferenceURL{URL: "https://store/img.jpg"},
			wantEncoded: 0,
			wantURL:     1,
			checkPayload: func(t *testing.T, p *recordingProvider) {
				assert.Equal(t, "https://store/img.jpg", p.lastURL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &recordingProvider{result: "cHJvY2Vzc2Vk"}
			svc := NewImageService(provider, "test-key")

			result, err := svc.RemoveBackground(context.Background(), tt.source)

			require.NoError(t, err)
			assert.Equal(t, "cHJvY2Vzc2Vk", result)
			assert.Equal(t, tt.wantEncoded, provider.encodedCalls)
			assert.Equal(t, tt.wantURL, provider.urlCalls)
			tt.checkPayload(t, provider)
		})
	}
}

func TestRemoveBackground_ProviderFailureIsWrapped(t *testing.T) {
	provider := &recordingProvider{err: errors.New("insufficient credits")}
	svc := NewImageService(provider, "test-key")

	_, err := svc.RemoveBackground(context.Background(), entity.ReferenceURL{URL: "https://store/img.jpg"})

	var provErr *entity.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "insufficient credits", provErr.Message)
}

// TestEncodeRoundTrip проверяет, что кодирование байтов для транспорта
// обратимо для любого содержимого, включая пустое
func TestEncodeRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	large := make([]byte, 10*1024)
	_, err := rnd.Read(large)
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload []byte
	}{
		{name: "empty payload", payload: []byte{}},
		{name: "single byte", payload: []byte{0x00}},
		{name: "binary with all byte values", payload: allBytes()},
		{name: "10KB random payload", payload: large},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &recordingProvider{result: "cHJvY2Vzc2Vk"}
			svc := NewImageService(provider, "test-key")

			_, err := svc.RemoveBackground(context.Background(), entity.RawBytes{Data: tt.payload})
			require.NoError(t, err)

			decoded, err := base64.StdEncoding.DecodeString(provider.lastEncoded)
			require.NoError(t, err)
			assert.Equal(t, tt.payload, decoded)
		})
	}
}

func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
