package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-timetable/internal/service/slot"
	"github.com/KasumiMercury/primind-timetable/internal/service/urgency"
	"github.com/KasumiMercury/primind-timetable/internal/session"
)

// 2024-06-10 is a Monday.
var testNow = time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

func newTestRouter(t *testing.T) (*gin.Engine, *session.Session) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sess := session.New(slot.NewResolver(), urgency.NewCalculator())
	clock := func() time.Time { return testNow }

	router := gin.New()
	api := router.Group("/api/v1")
	NewTimetableHandler(sess, time.UTC, clock).Register(api)
	NewHomeworkHandler(sess, time.UTC, clock).Register(api)

	return router, sess
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantType string) {
	t.Helper()

	if w.Code != wantStatus {
		t.Fatalf("status = %d, want %d; body = %s", w.Code, wantStatus, w.Body.String())
	}
	resp := decode[ErrorResponse](t, w)
	if resp.Error != wantType {
		t.Errorf("error = %q, want %q", resp.Error, wantType)
	}
	if resp.Message == "" {
		t.Error("expected non-empty message")
	}
}
