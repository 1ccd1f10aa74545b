package late

import (
	"context"
	"time"
)

// Profile groups the accounts of one brand or client.
type Profile struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateProfileRequest is the payload of Profiles.Create.
type CreateProfileRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// UpdateProfileRequest is the payload of Profiles.Update.
type UpdateProfileRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	IsDefault   *bool  `json:"isDefault,omitempty"`
}

// ProfileResult wraps a single profile.
type ProfileResult struct {
	Message string  `json:"message,omitempty"`
	Profile Profile `json:"profile"`
}

// ProfilesService manages profiles.
type ProfilesService struct {
	client *Client
}

// List returns every profile.
func (s *ProfilesService) List(ctx context.Context) ([]Profile, error) {
	out, err := doGet[struct {
		Profiles []Profile `json:"profiles"`
	}](ctx, s.client, newCall("profiles.list", "/v1/profiles", "/v1/profiles"))
	if err != nil {
		return nil, err
	}
	return out.Profiles, nil
}

// Create creates a profile.
func (s *ProfilesService) Create(ctx context.Context, req *CreateProfileRequest) (*ProfileResult, error) {
	const op = "profiles.create"
	if req == nil {
		req = &CreateProfileRequest{}
	}
	if err := checkBody(op, req); err != nil {
		return nil, err
	}
	return doPost[ProfileResult](ctx, s.client, newCall(op, "/v1/profiles", "/v1/profiles"), req)
}

// Get returns a profile.
func (s *ProfilesService) Get(ctx context.Context, profileID string) (*ProfileResult, error) {
	const op = "profiles.get"
	if err := checkID(op, "profileId", profileID); err != nil {
		return nil, err
	}
	return doGet[ProfileResult](ctx, s.client,
		newCall(op, "/v1/profiles/{profileId}", "/v1/profiles/"+seg(profileID)))
}

// Update changes a profile.
func (s *ProfilesService) Update(ctx context.Context, profileID string, req *UpdateProfileRequest) (*ProfileResult, error) {
	const op = "profiles.update"
	if err := checkID(op, "profileId", profileID); err != nil {
		return nil, err
	}
	if req == nil {
		req = &UpdateProfileRequest{}
	}
	if err := checkBody(op, req); err != nil {
		return nil, err
	}
	return doPut[ProfileResult](ctx, s.client,
		newCall(op, "/v1/profiles/{profileId}", "/v1/profiles/"+seg(profileID)), req)
}

// Delete deletes a profile.
func (s *ProfilesService) Delete(ctx context.Context, profileID string) (*DeleteResponse, error) {
	const op = "profiles.delete"
	if err := checkID(op, "profileId", profileID); err != nil {
		return nil, err
	}
	return doDelete[DeleteResponse](ctx, s.client,
		newCall(op, "/v1/profiles/{profileId}", "/v1/profiles/"+seg(profileID)))
}
