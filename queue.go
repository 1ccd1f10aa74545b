package late

import (
	"context"
	"fmt"
	"time"

	"github.com/kbukum/late-go/httpclient"
	"github.com/kbukum/late-go/validation"
)

// QueueSlot is a recurring weekly publishing time of a profile's queue.
type QueueSlot struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"gte=0,lte=6"`
	Time      string `json:"time" validate:"required"`
}

// QueueSchedule is a profile's queue configuration.
type QueueSchedule struct {
	ID        string      `json:"_id,omitempty"`
	ProfileID string      `json:"profileId"`
	Name      string      `json:"name,omitempty"`
	Timezone  string      `json:"timezone"`
	Slots     []QueueSlot `json:"slots"`
	Active    bool        `json:"active"`
	IsDefault bool        `json:"isDefault,omitempty"`
}

// QueueSlots is the response of Queue.ListSlots.
type QueueSlots struct {
	Exists    bool            `json:"exists"`
	Schedule  *QueueSchedule  `json:"schedule,omitempty"`
	Schedules []QueueSchedule `json:"schedules,omitempty"`
	NextSlots []time.Time     `json:"nextSlots,omitempty"`
}

// QueueSlotRequest is the payload of Queue.CreateSlot and Queue.UpdateSlot.
type QueueSlotRequest struct {
	ProfileID string      `json:"profileId" validate:"required"`
	QueueID   string      `json:"queueId,omitempty"`
	Name      string      `json:"name,omitempty"`
	Timezone  string      `json:"timezone" validate:"required"`
	Slots     []QueueSlot `json:"slots" validate:"required,min=1,dive"`
	Active    *bool       `json:"active,omitempty"`
}

// QueueScheduleResult wraps a single queue schedule.
type QueueScheduleResult struct {
	Success  bool          `json:"success"`
	Schedule QueueSchedule `json:"schedule"`
}

// QueuePreview lists upcoming queue slots.
type QueuePreview struct {
	ProfileID string      `json:"profileId"`
	Count     int         `json:"count"`
	Slots     []time.Time `json:"slots"`
}

// NextSlot is the next free queue slot of a profile.
type NextSlot struct {
	ProfileID string    `json:"profileId"`
	NextSlot  time.Time `json:"nextSlot"`
	Timezone  string    `json:"timezone"`
	QueueID   string    `json:"queueId,omitempty"`
}

// QueueService manages publishing queues.
type QueueService struct {
	client *Client
}

// ListSlots returns the queue schedules of a profile.
func (s *QueueService) ListSlots(ctx context.Context, profileID string) (*QueueSlots, error) {
	const op = "queue.listSlots"
	if err := checkID(op, "profileId", profileID); err != nil {
		return nil, err
	}
	return doGet[QueueSlots](ctx, s.client, newCall(op, "/v1/queue/slots", "/v1/queue/slots",
		httpclient.WithQueryParam("profileId", profileID)))
}

// CreateSlot creates a queue schedule.
func (s *QueueService) CreateSlot(ctx context.Context, req *QueueSlotRequest) (*QueueScheduleResult, error) {
	const op = "queue.createSlot"
	if req == nil {
		req = &QueueSlotRequest{}
	}
	if err := checkBody(op, req); err != nil {
		return nil, err
	}
	return doPost[QueueScheduleResult](ctx, s.client, newCall(op, "/v1/queue/slots", "/v1/queue/slots"), req)
}

// UpdateSlot replaces a queue schedule.
func (s *QueueService) UpdateSlot(ctx context.Context, req *QueueSlotRequest) (*QueueScheduleResult, error) {
	const op = "queue.updateSlot"
	if req == nil {
		req = &QueueSlotRequest{}
	}
	if err := checkBody(op, req); err != nil {
		return nil, err
	}
	return doPut[QueueScheduleResult](ctx, s.client, newCall(op, "/v1/queue/slots", "/v1/queue/slots"), req)
}

// DeleteSlot deletes a queue schedule. An empty queueID selects the
// profile's default queue.
func (s *QueueService) DeleteSlot(ctx context.Context, profileID, queueID string) (*DeleteResponse, error) {
	const op = "queue.deleteSlot"
	if err := checkID(op, "profileId", profileID); err != nil {
		return nil, err
	}
	return doDelete[DeleteResponse](ctx, s.client, newCall(op, "/v1/queue/slots", "/v1/queue/slots",
		httpclient.WithQueryParam("profileId", profileID),
		httpclient.WithQueryParam("queueId", queueID)))
}

// Preview returns the next count slots of a profile's queue.
func (s *QueueService) Preview(ctx context.Context, profileID string, count int) (*QueuePreview, error) {
	const op = "queue.preview"
	err := validation.New().
		Required("profileId", profileID).
		Check(count >= 0, "count", "must not be negative").
		Err()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return doGet[QueuePreview](ctx, s.client, newCall(op, "/v1/queue/preview", "/v1/queue/preview",
		httpclient.WithQueryParam("profileId", profileID),
		intParam("count", count)))
}

// GetNextSlot returns the next free slot of a profile's queue.
func (s *QueueService) GetNextSlot(ctx context.Context, profileID string) (*NextSlot, error) {
	const op = "queue.getNextSlot"
	if err := checkID(op, "profileId", profileID); err != nil {
		return nil, err
	}
	return doGet[NextSlot](ctx, s.client, newCall(op, "/v1/queue/next-slot", "/v1/queue/next-slot",
		httpclient.WithQueryParam("profileId", profileID)))
}
