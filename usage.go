package late

import "context"

// UsageStats is the plan usage of the account.
type UsageStats struct {
	PlanName      string      `json:"planName"`
	BillingPeriod string      `json:"billingPeriod"`
	Limits        UsageCounts `json:"limits"`
	Usage         UsageCounts `json:"usage"`
}

// UsageCounts counts resources against the plan. A negative limit means
// unlimited.
type UsageCounts struct {
	Uploads  int `json:"uploads"`
	Profiles int `json:"profiles"`
}

// UsageService reports plan usage.
type UsageService struct {
	client *Client
}

// GetStats returns the account's usage and plan limits.
func (s *UsageService) GetStats(ctx context.Context) (*UsageStats, error) {
	return doGet[UsageStats](ctx, s.client, newCall("usage.getStats", "/v1/usage-stats", "/v1/usage-stats"))
}
