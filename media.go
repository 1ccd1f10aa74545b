package late

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kbukum/late-go/httpclient"
	"github.com/kbukum/late-go/validation"
)

// PresignRequest is the payload of Media.GetPresignedURL.
type PresignRequest struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
	Size        int64  `json:"size,omitempty" validate:"gte=0"`
}

// PresignedURL is a short-lived upload target.
type PresignedURL struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	Key       string `json:"key"`
	Type      string `json:"type"`
}

// MediaService uploads images and videos.
type MediaService struct {
	client *Client
}

// GetPresignedURL returns an upload URL for a file. The file is then sent
// with a PUT to UploadURL and referenced in posts by PublicURL.
func (s *MediaService) GetPresignedURL(ctx context.Context, req *PresignRequest) (*PresignedURL, error) {
	const op = "media.getPresignedUrl"
	if req == nil {
		req = &PresignRequest{}
	}
	if err := checkBody(op, req); err != nil {
		return nil, err
	}
	return doPost[PresignedURL](ctx, s.client, newCall(op, "/v1/media/presign", "/v1/media/presign"), req)
}

// Upload presigns a file and PUTs its content to the storage URL. The
// storage request carries no Late credentials.
func (s *MediaService) Upload(ctx context.Context, req *PresignRequest, content io.Reader) (*MediaItem, error) {
	const op = "media.upload"
	if err := validation.New().Check(content != nil, "content", "is required").Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	target, err := s.GetPresignedURL(ctx, req)
	if err != nil {
		return nil, err
	}
	_, err = s.client.http.Do(ctx, httpclient.Request{
		Method:        http.MethodPut,
		Path:          target.UploadURL,
		Route:         "media.upload",
		Headers:       map[string]string{"Content-Type": req.ContentType},
		Body:          content,
		ContentLength: req.Size,
		Auth:          httpclient.NoAuth(),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &MediaItem{Type: mediaType(target.Type, req.ContentType), URL: target.PublicURL}, nil
}

// mediaType prefers the type the API reported and falls back to the MIME
// family.
func mediaType(reported, contentType string) string {
	if reported != "" {
		return reported
	}
	switch {
	case contentType == "image/gif":
		return "gif"
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return "document"
	}
}
