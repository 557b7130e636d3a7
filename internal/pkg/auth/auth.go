package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopstudio/bg-removal-service/internal/entity"
)

// Validator checks a caller-supplied session token against the auth
// collaborator. Handlers never see tokens, only the resulting session.
type Validator interface {
	ValidateSession(ctx context.Context, token string) (*entity.Session, error)
}

type httpValidator struct {
	validateURL string
	httpClient  *http.Client
}

func NewHTTPValidator(validateURL string) Validator {
	return &httpValidator{
		validateURL: validateURL,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (v *httpValidator) ValidateSession(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, entity.ErrUnauthorized
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.validateURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, entity.ErrUnauthorized
	}

	var session entity.Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, entity.ErrUnauthorized
	}

	return &session, nil
}
