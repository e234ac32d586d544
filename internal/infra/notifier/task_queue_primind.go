//go:build !gcloud

package notifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

const (
	reminderIDHeader = "X-Reminder-Id"
	courseIDHeader   = "X-Course-Id"
	slotHeader       = "X-Timetable-Slot"
)

// errRejected marks a 4xx answer other than 429; resending the same task
// cannot change it.
var errRejected = errors.New("reminder task rejected by Primind Tasks")

type PrimindTasksClient struct {
	endpoint   string
	httpClient *http.Client
	maxRetries int
	backoff    time.Duration
}

func NewPrimindTasksClient(baseURL, queueName string, maxRetries int) *PrimindTasksClient {
	if maxRetries <= 0 {
		maxRetries = 3
	}

	endpoint := baseURL + "/tasks"
	if queueName != "" && queueName != "default" {
		endpoint += "/" + queueName
	}

	return &PrimindTasksClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		maxRetries: maxRetries,
		backoff:    100 * time.Millisecond,
	}
}

// primindTaskName names the task after the reminder so the queue can
// drop a duplicate created by a retry.
func primindTaskName(reminderID string) string {
	return "reminder-" + reminderID
}

func newPrimindTaskRequest(task *ReminderTask) ([]byte, error) {
	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reminder task: %w", err)
	}

	req := PrimindTaskRequest{
		Task: PrimindTask{
			Name: primindTaskName(task.ReminderID),
			HTTPRequest: PrimindHTTPRequest{
				Body: base64.StdEncoding.EncodeToString(payload),
				Headers: map[string]string{
					"Content-Type":   "application/json",
					reminderIDHeader: task.ReminderID,
					courseIDHeader:   task.CourseID,
					slotHeader:       strconv.Itoa(task.Weekday) + "-" + strconv.Itoa(task.Section),
				},
			},
		},
	}
	if !task.ScheduleAt.IsZero() {
		req.Task.ScheduleTime = task.ScheduleAt.UTC().Format(time.RFC3339)
	}

	return json.Marshal(req)
}

func (c *PrimindTasksClient) RegisterReminder(ctx context.Context, task *ReminderTask) (*TaskResponse, error) {
	body, err := newPrimindTaskRequest(task)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		resp, err := c.post(ctx, body)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if errors.Is(err, errRejected) || attempt == c.maxRetries {
			break
		}

		wait := c.backoff << (attempt - 1)
		slog.DebugContext(ctx, "retrying reminder task registration",
			slog.String("reminder_id", task.ReminderID),
			slog.Int("attempt", attempt+1),
			slog.Duration("backoff", wait),
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	slog.ErrorContext(ctx, "reminder task registration failed",
		slog.String("reminder_id", task.ReminderID),
		slog.String("course_name", task.CourseName),
		slog.String("error", lastErr.Error()),
	)
	return nil, fmt.Errorf("failed to register reminder %s: %w", task.ReminderID, lastErr)
}

func (c *PrimindTasksClient) post(ctx context.Context, body []byte) (*TaskResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError && resp.StatusCode != http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status %d", errRejected, resp.StatusCode)
	default:
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var primindResp PrimindTaskResponse
	if err := json.NewDecoder(resp.Body).Decode(&primindResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	scheduleTime, _ := time.Parse(time.RFC3339, primindResp.ScheduleTime)
	createTime, _ := time.Parse(time.RFC3339, primindResp.CreateTime)

	return &TaskResponse{
		Name:         primindResp.Name,
		ScheduleTime: scheduleTime,
		CreateTime:   createTime,
	}, nil
}

func (c *PrimindTasksClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
