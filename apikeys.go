package late

import (
	"context"
	"time"
)

// APIKey is an API key of the account. The secret is only returned once, on
// creation.
type APIKey struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	KeyPreview string     `json:"keyPreview"`
	Key        string     `json:"key,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// CreateAPIKeyRequest is the payload of APIKeys.Create.
type CreateAPIKeyRequest struct {
	Name          string `json:"name" validate:"required"`
	ExpiresInDays int    `json:"expiresIn,omitempty" validate:"gte=0"`
}

// APIKeyResult wraps a created API key.
type APIKeyResult struct {
	Message string `json:"message,omitempty"`
	APIKey  APIKey `json:"apiKey"`
}

// APIKeysService manages API keys.
type APIKeysService struct {
	client *Client
}

// List returns the account's API keys, without secrets.
func (s *APIKeysService) List(ctx context.Context) ([]APIKey, error) {
	out, err := doGet[struct {
		APIKeys []APIKey `json:"apiKeys"`
	}](ctx, s.client, newCall("apiKeys.list", "/v1/api-keys", "/v1/api-keys"))
	if err != nil {
		return nil, err
	}
	return out.APIKeys, nil
}

// Create creates an API key.
func (s *APIKeysService) Create(ctx context.Context, req *CreateAPIKeyRequest) (*APIKeyResult, error) {
	const op = "apiKeys.create"
	if req == nil {
		req = &CreateAPIKeyRequest{}
	}
	if err := checkBody(op, req); err != nil {
		return nil, err
	}
	return doPost[APIKeyResult](ctx, s.client, newCall(op, "/v1/api-keys", "/v1/api-keys"), req)
}

// Delete revokes an API key.
func (s *APIKeysService) Delete(ctx context.Context, keyID string) (*DeleteResponse, error) {
	const op = "apiKeys.delete"
	if err := checkID(op, "keyId", keyID); err != nil {
		return nil, err
	}
	return doDelete[DeleteResponse](ctx, s.client,
		newCall(op, "/v1/api-keys/{keyId}", "/v1/api-keys/"+seg(keyID)))
}
