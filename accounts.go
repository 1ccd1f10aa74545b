package late

import (
	"context"
	"time"

	"github.com/kbukum/late-go/httpclient"
)

// Account is a connected social media account.
type Account struct {
	ID              string         `json:"_id"`
	Platform        string         `json:"platform"`
	ProfileID       string         `json:"profileId"`
	Username        string         `json:"username"`
	DisplayName     string         `json:"displayName,omitempty"`
	ProfilePicture  string         `json:"profilePicture,omitempty"`
	IsActive        bool           `json:"isActive"`
	FollowersCount  int            `json:"followersCount,omitempty"`
	PlatformData    map[string]any `json:"platformSpecificData,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// ListAccountsParams filters Accounts.List.
type ListAccountsParams struct {
	ProfileID string
	Platform  string
}

// UpdateAccountRequest is the payload of Accounts.Update.
type UpdateAccountRequest struct {
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// AccountResult wraps a single account.
type AccountResult struct {
	Message string  `json:"message,omitempty"`
	Account Account `json:"account"`
}

// FollowerStatsParams filters Accounts.GetFollowerStats.
type FollowerStatsParams struct {
	AccountIDs  []string
	ProfileID   string
	FromDate    string
	ToDate      string
	Granularity string
}

// FollowerStats is the follower history of each requested account.
type FollowerStats struct {
	Accounts []AccountFollowers `json:"accounts"`
}

// AccountFollowers is the follower history of one account.
type AccountFollowers struct {
	AccountID    string          `json:"_id"`
	Platform     string          `json:"platform"`
	Username     string          `json:"username"`
	CurrentCount int             `json:"currentFollowers"`
	Growth       int             `json:"growth"`
	History      []FollowerPoint `json:"history,omitempty"`
}

// FollowerPoint is a follower count on a date.
type FollowerPoint struct {
	Date      string `json:"date"`
	Followers int    `json:"followers"`
}

// AccountHealth reports whether an account can still publish.
type AccountHealth struct {
	AccountID   string   `json:"accountId"`
	Platform    string   `json:"platform"`
	Username    string   `json:"username"`
	Status      string   `json:"status"`
	CanPost     bool     `json:"canPost"`
	TokenExpiry string   `json:"tokenExpiresAt,omitempty"`
	Issues      []string `json:"issues,omitempty"`
}

// AccountsHealth is the health of every account.
type AccountsHealth struct {
	Summary  HealthSummary   `json:"summary"`
	Accounts []AccountHealth `json:"accounts"`
}

// HealthSummary counts accounts by health status.
type HealthSummary struct {
	Total          int `json:"total"`
	Healthy        int `json:"healthy"`
	Warning        int `json:"warning"`
	Error          int `json:"error"`
	NeedsReconnect int `json:"needsReconnect"`
}

// AccountsService manages connected social accounts.
type AccountsService struct {
	client *Client
}

// List returns the connected accounts.
func (s *AccountsService) List(ctx context.Context, params *ListAccountsParams) ([]Account, error) {
	var p ListAccountsParams
	if params != nil {
		p = *params
	}
	out, err := doGet[struct {
		Accounts []Account `json:"accounts"`
	}](ctx, s.client, newCall("accounts.list", "/v1/accounts", "/v1/accounts",
		httpclient.WithQueryParam("profileId", p.ProfileID),
		httpclient.WithQueryParam("platform", p.Platform),
	))
	if err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

// Update changes an account's display settings.
func (s *AccountsService) Update(ctx context.Context, accountID string, req *UpdateAccountRequest) (*AccountResult, error) {
	const op = "accounts.update"
	if err := checkID(op, "accountId", accountID); err != nil {
		return nil, err
	}
	if req == nil {
		req = &UpdateAccountRequest{}
	}
	return doPut[AccountResult](ctx, s.client,
		newCall(op, "/v1/accounts/{accountId}", "/v1/accounts/"+seg(accountID)), req)
}

// Delete disconnects an account.
func (s *AccountsService) Delete(ctx context.Context, accountID string) (*DeleteResponse, error) {
	const op = "accounts.delete"
	if err := checkID(op, "accountId", accountID); err != nil {
		return nil, err
	}
	return doDelete[DeleteResponse](ctx, s.client,
		newCall(op, "/v1/accounts/{accountId}", "/v1/accounts/"+seg(accountID)))
}

// GetFollowerStats returns follower history for the selected accounts.
func (s *AccountsService) GetFollowerStats(ctx context.Context, params *FollowerStatsParams) (*FollowerStats, error) {
	var p FollowerStatsParams
	if params != nil {
		p = *params
	}
	return doGet[FollowerStats](ctx, s.client, newCall("accounts.getFollowerStats",
		"/v1/accounts/follower-stats", "/v1/accounts/follower-stats",
		httpclient.WithQueryParam("accountIds", joinIDs(p.AccountIDs)),
		httpclient.WithQueryParam("profileId", p.ProfileID),
		httpclient.WithQueryParam("fromDate", p.FromDate),
		httpclient.WithQueryParam("toDate", p.ToDate),
		httpclient.WithQueryParam("granularity", p.Granularity),
	))
}

// GetAllHealth returns the health of every account.
func (s *AccountsService) GetAllHealth(ctx context.Context) (*AccountsHealth, error) {
	return doGet[AccountsHealth](ctx, s.client,
		newCall("accounts.getAllHealth", "/v1/accounts/health", "/v1/accounts/health"))
}

// GetHealth returns the health of one account.
func (s *AccountsService) GetHealth(ctx context.Context, accountID string) (*AccountHealth, error) {
	const op = "accounts.getHealth"
	if err := checkID(op, "accountId", accountID); err != nil {
		return nil, err
	}
	return doGet[AccountHealth](ctx, s.client,
		newCall(op, "/v1/accounts/{accountId}/health", "/v1/accounts/"+seg(accountID)+"/health"))
}
