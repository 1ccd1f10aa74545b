// Package late is a Go client for the Late social media scheduling API.
//
// Create a client with an API key, either explicitly or from the
// LATE_API_KEY environment variable:
//
//	client, err := late.NewFromEnv()
//	if err != nil {
//		log.Fatal(err) // late.ErrMissingAPIKey when LATE_API_KEY is unset
//	}
//
//	post, err := client.Posts.Create(ctx, &late.CreatePostRequest{
//		Content:    "Hello from Go",
//		Platforms:  []late.PlatformTarget{{Platform: "twitter", AccountID: accountID}},
//		PublishNow: true,
//	})
//
// Failed calls return one of three error variants, all sharing *APIError:
//
//	var rl *late.RateLimitError
//	var ve *late.ValidationError
//	switch {
//	case errors.As(err, &rl):
//		wait, _ := rl.SecondsUntilReset()
//	case errors.As(err, &ve):
//		for field, msgs := range ve.Fields { ... }
//	case late.IsNotFound(err):
//	}
//
// Transport failures (timeouts, refused connections) are *httpclient.Error
// values instead. The client never retries; callers decide.
package late
