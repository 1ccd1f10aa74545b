// Package validation checks SDK inputs before they leave the process.
//
// It supports both struct tag validation (using the validator library) and
// a small builder for hand-written checks. Both report failures as a
// *Error mapping each field to its violation messages, the same shape the
// Late API uses for its own validation failures.
//
// # Struct Tag Validation
//
//	type CreatePostRequest struct {
//	    Content   string     `json:"content" validate:"required"`
//	    Platforms []Platform `json:"platforms" validate:"required,min=1,dive"`
//	}
//	err := validation.Validate(req)
//
// # Programmatic Validation
//
//	err := validation.New().
//	    Required("postId", id).
//	    Check(count >= 0, "count", "must not be negative").
//	    Err()
package validation
