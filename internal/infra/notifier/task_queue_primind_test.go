//go:build !gcloud

package notifier

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestPrimindTasksClient_RegisterReminder(t *testing.T) {
	t.Run("posts encoded task to named queue", func(t *testing.T) {
		var gotPath string
		var gotReq PrimindTaskRequest
		var gotTask ReminderTask

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path

			if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
				t.Errorf("failed to decode request: %v", err)
			}
			body, err := base64.StdEncoding.DecodeString(gotReq.Task.HTTPRequest.Body)
			if err != nil {
				t.Errorf("failed to decode body: %v", err)
			}
			if err := json.Unmarshal(body, &gotTask); err != nil {
				t.Errorf("failed to unmarshal task: %v", err)
			}

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(PrimindTaskResponse{
				Name:       "tasks/abc",
				CreateTime: "2024-06-10T09:00:01Z",
			})
		}))
		defer server.Close()

		reminder := testReminder()
		client := NewPrimindTasksClient(server.URL, "reminders", 1)
		resp, err := client.RegisterReminder(context.Background(), NewReminderTask(reminder))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotPath != "/tasks/reminders" {
			t.Errorf("path = %q, want /tasks/reminders", gotPath)
		}
		if gotTask.CourseName != "Calculus" {
			t.Errorf("CourseName = %q, want Calculus", gotTask.CourseName)
		}
		if gotReq.Task.Name != "reminder-"+reminder.ID {
			t.Errorf("task name = %q, want reminder-%s", gotReq.Task.Name, reminder.ID)
		}
		if gotReq.Task.ScheduleTime != "2024-06-10T09:00:00Z" {
			t.Errorf("ScheduleTime = %q, want 2024-06-10T09:00:00Z", gotReq.Task.ScheduleTime)
		}
		wantHeaders := map[string]string{
			"Content-Type":     "application/json",
			"X-Reminder-Id":    reminder.ID,
			"X-Course-Id":      "c1",
			"X-Timetable-Slot": "1-1",
		}
		for k, want := range wantHeaders {
			if got := gotReq.Task.HTTPRequest.Headers[k]; got != want {
				t.Errorf("header %s = %q, want %q", k, got, want)
			}
		}
		if resp.Name != "tasks/abc" {
			t.Errorf("Name = %q, want tasks/abc", resp.Name)
		}
		if !resp.CreateTime.Equal(time.Date(2024, 6, 10, 9, 0, 1, 0, time.UTC)) {
			t.Errorf("CreateTime = %v", resp.CreateTime)
		}
	})

	t.Run("default queue uses base path", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_ = json.NewEncoder(w).Encode(PrimindTaskResponse{Name: "tasks/1"})
		}))
		defer server.Close()

		client := NewPrimindTasksClient(server.URL, "default", 1)
		if _, err := client.RegisterReminder(context.Background(), NewReminderTask(testReminder())); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/tasks" {
			t.Errorf("path = %q, want /tasks", gotPath)
		}
	})

	t.Run("retries until success", func(t *testing.T) {
		var attempts atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if attempts.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_ = json.NewEncoder(w).Encode(PrimindTaskResponse{Name: "tasks/1"})
		}))
		defer server.Close()

		client := NewPrimindTasksClient(server.URL, "default", 3)
		client.backoff = time.Millisecond

		if _, err := client.RegisterReminder(context.Background(), NewReminderTask(testReminder())); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := attempts.Load(); got != 3 {
			t.Errorf("attempts = %d, want 3", got)
		}
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		var attempts atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewPrimindTasksClient(server.URL, "default", 2)
		client.backoff = time.Millisecond

		if _, err := client.RegisterReminder(context.Background(), NewReminderTask(testReminder())); err == nil {
			t.Fatal("expected error")
		}
		if got := attempts.Load(); got != 2 {
			t.Errorf("attempts = %d, want 2", got)
		}
	})
	t.Run("rejected task is not retried", func(t *testing.T) {
		var attempts atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := NewPrimindTasksClient(server.URL, "default", 3)
		client.backoff = time.Millisecond

		_, err := client.RegisterReminder(context.Background(), NewReminderTask(testReminder()))
		if !errors.Is(err, errRejected) {
			t.Fatalf("err = %v, want errRejected", err)
		}
		if got := attempts.Load(); got != 1 {
			t.Errorf("attempts = %d, want 1", got)
		}
	})

	t.Run("too many requests is retried", func(t *testing.T) {
		var attempts atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if attempts.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_ = json.NewEncoder(w).Encode(PrimindTaskResponse{Name: "tasks/1"})
		}))
		defer server.Close()

		client := NewPrimindTasksClient(server.URL, "default", 3)
		client.backoff = time.Millisecond

		if _, err := client.RegisterReminder(context.Background(), NewReminderTask(testReminder())); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := attempts.Load(); got != 2 {
			t.Errorf("attempts = %d, want 2", got)
		}
	})
}
