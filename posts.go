package late

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/kbukum/late-go/httpclient"
)

// Post statuses.
const (
	PostStatusDraft      = "draft"
	PostStatusScheduled  = "scheduled"
	PostStatusPublishing = "publishing"
	PostStatusPublished  = "published"
	PostStatusFailed     = "failed"
	PostStatusPartial    = "partial"
)

// Post is a scheduled or published social media post.
type Post struct {
	ID           string           `json:"_id"`
	Content      string           `json:"content"`
	Status       string           `json:"status"`
	ScheduledFor *time.Time       `json:"scheduledFor,omitempty"`
	Timezone     string           `json:"timezone,omitempty"`
	Platforms    []PlatformTarget `json:"platforms"`
	MediaItems   []MediaItem      `json:"mediaItems,omitempty"`
	Tags         []string         `json:"tags,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// PlatformTarget is one account a post is published to.
type PlatformTarget struct {
	Platform             string         `json:"platform" validate:"required"`
	AccountID            string         `json:"accountId" validate:"required"`
	CustomContent        string         `json:"customContent,omitempty"`
	PlatformSpecificData map[string]any `json:"platformSpecificData,omitempty"`
	Status               string         `json:"status,omitempty"`
	PlatformPostURL      string         `json:"platformPostUrl,omitempty"`
	ErrorMessage         string         `json:"errorMessage,omitempty"`
}

// MediaItem is an image or video attached to a post.
type MediaItem struct {
	Type string `json:"type" validate:"required,oneof=image video gif document"`
	URL  string `json:"url" validate:"required,url"`
}

// ListPostsParams filters Posts.List. Zero values are omitted.
type ListPostsParams struct {
	Page      int
	Limit     int
	Status    string
	Platform  string
	ProfileID string
	DateFrom  string
	DateTo    string
}

// PostsPage is a page of posts.
type PostsPage struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

// CreatePostRequest is the payload of Posts.Create.
type CreatePostRequest struct {
	Content           string           `json:"content,omitempty" validate:"required_without=MediaItems"`
	Platforms         []PlatformTarget `json:"platforms" validate:"required,min=1,dive"`
	ScheduledFor      *time.Time       `json:"scheduledFor,omitempty"`
	PublishNow        bool             `json:"publishNow,omitempty"`
	IsDraft           bool             `json:"isDraft,omitempty"`
	Timezone          string           `json:"timezone,omitempty"`
	MediaItems        []MediaItem      `json:"mediaItems,omitempty" validate:"omitempty,dive"`
	Tags              []string         `json:"tags,omitempty"`
	QueuedFromProfile string           `json:"queuedFromProfile,omitempty"`
}

// UpdatePostRequest is the payload of Posts.Update. Empty fields are left
// unchanged.
type UpdatePostRequest struct {
	Content      string           `json:"content,omitempty"`
	Platforms    []PlatformTarget `json:"platforms,omitempty" validate:"omitempty,dive"`
	ScheduledFor *time.Time       `json:"scheduledFor,omitempty"`
	Timezone     string           `json:"timezone,omitempty"`
	MediaItems   []MediaItem      `json:"mediaItems,omitempty" validate:"omitempty,dive"`
	Tags         []string         `json:"tags,omitempty"`
}

// PostResult is the response of calls that return a single post.
type PostResult struct {
	Message string `json:"message,omitempty"`
	Post    Post   `json:"post"`
}

// PostLog is one publishing attempt of a post on a platform.
type PostLog struct {
	ID         string    `json:"_id"`
	PostID     string    `json:"postId"`
	Platform   string    `json:"platform"`
	Action     string    `json:"action"`
	Status     string    `json:"status"`
	StatusCode int       `json:"statusCode,omitempty"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BulkUploadResult reports the outcome of a CSV bulk upload.
type BulkUploadResult struct {
	Success bool              `json:"success"`
	Created int               `json:"created"`
	Errors  []BulkUploadError `json:"errors,omitempty"`
}

// BulkUploadError describes a rejected CSV row.
type BulkUploadError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// PostsService creates, schedules, and manages posts.
type PostsService struct {
	client *Client
}

// List returns a page of posts.
func (s *PostsService) List(ctx context.Context, params *ListPostsParams) (*PostsPage, error) {
	var p ListPostsParams
	if params != nil {
		p = *params
	}
	return doGet[PostsPage](ctx, s.client, newCall("posts.list", "/v1/posts", "/v1/posts",
		intParam("page", p.Page),
		intParam("limit", p.Limit),
		httpclient.WithQueryParam("status", p.Status),
		httpclient.WithQueryParam("platform", p.Platform),
		httpclient.WithQueryParam("profileId", p.ProfileID),
		httpclient.WithQueryParam("dateFrom", p.DateFrom),
		httpclient.WithQueryParam("dateTo", p.DateTo),
	))
}

// Create creates a post, publishing it now, scheduling it, or saving a draft.
func (s *PostsService) Create(ctx context.Context, req *CreatePostRequest) (*PostResult, error) {
	const op = "posts.create"
	if req == nil {
		req = &CreatePostRequest{}
	}
	if err := checkBody(op, req); err != nil {
		return nil, err
	}
	return doPost[PostResult](ctx, s.client, newCall(op, "/v1/posts", "/v1/posts"), req)
}

// Get returns a post.
func (s *PostsService) Get(ctx context.Context, postID string) (*PostResult, error) {
	const op = "posts.get"
	if err := checkID(op, "postId", postID); err != nil {
		return nil, err
	}
	return doGet[PostResult](ctx, s.client, newCall(op, "/v1/posts/{postId}", "/v1/posts/"+seg(postID)))
}

// Update changes a post that has not been published yet.
func (s *PostsService) Update(ctx context.Context, postID string, req *UpdatePostRequest) (*PostResult, error) {
	const op = "posts.update"
	if err := checkID(op, "postId", postID); err != nil {
		return nil, err
	}
	if req == nil {
		req = &UpdatePostRequest{}
	}
	if err := checkBody(op, req); err != nil {
		return nil, err
	}
	return doPut[PostResult](ctx, s.client, newCall(op, "/v1/posts/{postId}", "/v1/posts/"+seg(postID)), req)
}

// Delete deletes a post.
func (s *PostsService) Delete(ctx context.Context, postID string) (*DeleteResponse, error) {
	const op = "posts.delete"
	if err := checkID(op, "postId", postID); err != nil {
		return nil, err
	}
	return doDelete[DeleteResponse](ctx, s.client, newCall(op, "/v1/posts/{postId}", "/v1/posts/"+seg(postID)))
}

// Retry republishes a post that failed on one or more platforms.
func (s *PostsService) Retry(ctx context.Context, postID string) (*PostResult, error) {
	const op = "posts.retry"
	if err := checkID(op, "postId", postID); err != nil {
		return nil, err
	}
	return doPost[PostResult](ctx, s.client, newCall(op, "/v1/posts/{postId}/retry", "/v1/posts/"+seg(postID)+"/retry"), nil)
}

// GetLogs returns the publishing attempts of a post.
func (s *PostsService) GetLogs(ctx context.Context, postID string) ([]PostLog, error) {
	const op = "posts.getLogs"
	if err := checkID(op, "postId", postID); err != nil {
		return nil, err
	}
	out, err := doGet[struct {
		Logs []PostLog `json:"logs"`
	}](ctx, s.client, newCall(op, "/v1/posts/{postId}/logs", "/v1/posts/"+seg(postID)+"/logs"))
	if err != nil {
		return nil, err
	}
	return out.Logs, nil
}

// BulkUpload creates posts from a CSV file. With dryRun the rows are only
// validated.
func (s *PostsService) BulkUpload(ctx context.Context, filename string, csv io.Reader, dryRun bool) (*BulkUploadResult, error) {
	const op = "posts.bulkUpload"
	if err := checkID(op, "file", filename); err != nil {
		return nil, err
	}
	k := newCall(op, "/v1/posts/bulk-upload", "/v1/posts/bulk-upload",
		httpclient.WithQueryParam("dryRun", strconv.FormatBool(dryRun)))
	body := &httpclient.MultipartBody{
		Files: []httpclient.FileField{{
			FieldName:   "file",
			FileName:    filename,
			ContentType: "text/csv",
			Reader:      csv,
		}},
	}
	return doPost[BulkUploadResult](ctx, s.client, k, body)
}
