package late

import (
	"context"
	"time"
)

// AccountGroup is a named set of accounts posted to together.
type AccountGroup struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	AccountIDs []string  `json:"accountIds"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AccountGroupRequest is the payload of AccountGroups.Create and Update.
type AccountGroupRequest struct {
	Name       string   `json:"name" validate:"required"`
	AccountIDs []string `json:"accountIds" validate:"required,min=1"`
}

// AccountGroupResult wraps a single account group.
type AccountGroupResult struct {
	Message string       `json:"message,omitempty"`
	Group   AccountGroup `json:"group"`
}

// AccountGroupsService manages account groups.
type AccountGroupsService struct {
	client *Client
}

// List returns every account group.
func (s *AccountGroupsService) List(ctx context.Context) ([]AccountGroup, error) {
	out, err := doGet[struct {
		Groups []AccountGroup `json:"groups"`
	}](ctx, s.client, newCall("accountGroups.list", "/v1/account-groups", "/v1/account-groups"))
	if err != nil {
		return nil, err
	}
	return out.Groups, nil
}

// Create creates an account group.
func (s *AccountGroupsService) Create(ctx context.Context, req *AccountGroupRequest) (*AccountGroupResult, error) {
	const op = "accountGroups.create"
	if req == nil {
		req = &AccountGroupRequest{}
	}
	if err := checkBody(op, req); err != nil {
		return nil, err
	}
	return doPost[AccountGroupResult](ctx, s.client, newCall(op, "/v1/account-groups", "/v1/account-groups"), req)
}

// Update renames a group or replaces its accounts.
func (s *AccountGroupsService) Update(ctx context.Context, groupID string, req *AccountGroupRequest) (*AccountGroupResult, error) {
	const op = "accountGroups.update"
	if err := checkID(op, "groupId", groupID); err != nil {
		return nil, err
	}
	if req == nil {
		req = &AccountGroupRequest{}
	}
	if err := checkBody(op, req); err != nil {
		return nil, err
	}
	return doPut[AccountGroupResult](ctx, s.client,
		newCall(op, "/v1/account-groups/{groupId}", "/v1/account-groups/"+seg(groupID)), req)
}

// Delete deletes an account group. The accounts stay connected.
func (s *AccountGroupsService) Delete(ctx context.Context, groupID string) (*DeleteResponse, error) {
	const op = "accountGroups.delete"
	if err := checkID(op, "groupId", groupID); err != nil {
		return nil, err
	}
	return doDelete[DeleteResponse](ctx, s.client,
		newCall(op, "/v1/account-groups/{groupId}", "/v1/account-groups/"+seg(groupID)))
}
