package handler

import (
	"net/http"
	"testing"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
)

func TestTimetableHandler_AddCourse(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantType   string
	}{
		{
			name:       "valid course",
			body:       map[string]any{"weekday": 1, "section": 1, "name": "Calculus", "room": "Room 101"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "weekday out of range",
			body:       map[string]any{"weekday": 8, "section": 1, "name": "Calculus"},
			wantStatus: http.StatusBadRequest,
			wantType:   errTypeValidation,
		},
		{
			name:       "section out of range",
			body:       map[string]any{"weekday": 1, "section": 13, "name": "Calculus"},
			wantStatus: http.StatusBadRequest,
			wantType:   errTypeValidation,
		},
		{
			name:       "missing name",
			body:       map[string]any{"weekday": 1, "section": 1},
			wantStatus: http.StatusBadRequest,
			wantType:   errTypeValidation,
		},
		{
			name:       "blank name rejected by domain",
			body:       map[string]any{"weekday": 1, "section": 1, "name": "   "},
			wantStatus: http.StatusBadRequest,
			wantType:   errTypeValidation,
		},
		{
			name:       "bad color",
			body:       map[string]any{"weekday": 1, "section": 1, "name": "Calculus", "color": "blue"},
			wantStatus: http.StatusBadRequest,
			wantType:   errTypeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, sess := newTestRouter(t)

			w := doJSON(t, router, http.MethodPost, "/api/v1/courses", tt.body)

			if tt.wantType != "" {
				assertError(t, w, tt.wantStatus, tt.wantType)
				if n := len(sess.Courses()); n != 0 {
					t.Errorf("rejected add left %d courses", n)
				}
				return
			}

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body = %s", w.Code, tt.wantStatus, w.Body.String())
			}
			course := decode[domain.Course](t, w)
			if course.ID == "" {
				t.Error("expected course ID")
			}
			if course.Color != domain.DefaultColor {
				t.Errorf("Color = %q, want default", course.Color)
			}
		})
	}
}

func TestTimetableHandler_EditAndRemoveCourse(t *testing.T) {
	router, sess := newTestRouter(t)

	course, err := sess.AddCourse(1, 1, "Calculus", "Room 101", "")
	if err != nil {
		t.Fatalf("failed to add course: %v", err)
	}

	w := doJSON(t, router, http.MethodPut, "/api/v1/courses/"+course.ID,
		map[string]any{"weekday": 2, "section": 3, "name": "Linear Algebra", "room": "Room 202"})
	if w.Code != http.StatusOK {
		t.Fatalf("edit status = %d; body = %s", w.Code, w.Body.String())
	}
	edited := decode[domain.Course](t, w)
	if edited.ID != course.ID || edited.Name != "Linear Algebra" || edited.Weekday != 2 {
		t.Errorf("edited = %+v", edited)
	}

	w = doJSON(t, router, http.MethodPut, "/api/v1/courses/missing",
		map[string]any{"weekday": 1, "section": 1, "name": "X"})
	assertError(t, w, http.StatusNotFound, errTypeNotFound)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/courses/"+course.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d; body = %s", w.Code, w.Body.String())
	}
	if n := len(sess.Courses()); n != 0 {
		t.Errorf("courses after delete = %d, want 0", n)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/v1/courses/"+course.ID, nil)
	assertError(t, w, http.StatusNotFound, errTypeNotFound)
}

func TestTimetableHandler_RemoveCourseAtIsDisplayOnly(t *testing.T) {
	router, sess := newTestRouter(t)

	if _, err := sess.AddCourse(1, 1, "Calculus", "Room 101", ""); err != nil {
		t.Fatalf("failed to add course: %v", err)
	}

	w := doJSON(t, router, http.MethodDelete, "/api/v1/timetable/1/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body = %s", w.Code, w.Body.String())
	}
	if resp := decode[map[string]bool](t, w); !resp["cleared"] {
		t.Error("expected cleared = true")
	}

	if sess.Timetable()[0][0] != nil {
		t.Error("expected grid cell to be cleared")
	}
	if len(sess.Courses()) != 1 {
		t.Error("expected course to remain in the collection")
	}

	w = doJSON(t, router, http.MethodDelete, "/api/v1/timetable/0/1", nil)
	assertError(t, w, http.StatusBadRequest, errTypeValidation)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/timetable/mon/1", nil)
	assertError(t, w, http.StatusBadRequest, errTypeValidation)
}

func TestTimetableHandler_Queries(t *testing.T) {
	router, sess := newTestRouter(t)

	if _, err := sess.AddCourse(1, 1, "Calculus", "Room 101", ""); err != nil {
		t.Fatalf("failed to add course: %v", err)
	}
	if _, err := sess.AddCourse(1, 3, "Physics", "Lab 2", ""); err != nil {
		t.Fatalf("failed to add course: %v", err)
	}

	t.Run("grid", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/timetable", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		resp := decode[struct {
			Days []dayRow `json:"days"`
		}](t, w)
		if len(resp.Days) != domain.DaysPerWeek {
			t.Fatalf("len(days) = %d, want 7", len(resp.Days))
		}
		if resp.Days[0].Name != "Monday" {
			t.Errorf("day name = %q, want Monday", resp.Days[0].Name)
		}
		if c := resp.Days[0].Sections[0]; c == nil || c.Name != "Calculus" {
			t.Errorf("Monday section 1 = %+v, want Calculus", c)
		}
		if resp.Days[0].Sections[1] != nil {
			t.Error("Monday section 2 should be empty")
		}
	})

	t.Run("current course at fixed clock", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/timetable/current", nil)
		resp := decode[struct {
			Course *domain.Course `json:"course"`
		}](t, w)
		if resp.Course == nil || resp.Course.Name != "Calculus" {
			t.Errorf("current = %+v, want Calculus", resp.Course)
		}
	})

	t.Run("current course with at override", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/timetable/current?at=2024-06-10T11:00:00Z", nil)
		resp := decode[struct {
			Course *domain.Course `json:"course"`
		}](t, w)
		if resp.Course != nil {
			t.Errorf("current = %+v, want none", resp.Course)
		}
	})

	t.Run("invalid at", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/timetable/next?at=tomorrow", nil)
		assertError(t, w, http.StatusBadRequest, errTypeValidation)
	})

	t.Run("next course", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/timetable/next", nil)
		resp := decode[struct {
			Course *domain.Course `json:"course"`
		}](t, w)
		if resp.Course == nil || resp.Course.Name != "Physics" {
			t.Errorf("next = %+v, want Physics", resp.Course)
		}
	})

	t.Run("courses by day", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/timetable/1", nil)
		resp := decode[struct {
			Courses []*domain.Course `json:"courses"`
		}](t, w)
		if len(resp.Courses) != 2 || resp.Courses[0].Section != 1 || resp.Courses[1].Section != 3 {
			t.Errorf("courses = %+v, want sections 1 and 3", resp.Courses)
		}

		w = doJSON(t, router, http.MethodGet, "/api/v1/timetable/9", nil)
		assertError(t, w, http.StatusBadRequest, errTypeValidation)
	})

	t.Run("list courses", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/courses", nil)
		resp := decode[struct {
			Courses []*domain.Course `json:"courses"`
		}](t, w)
		if len(resp.Courses) != 2 {
			t.Errorf("len(courses) = %d, want 2", len(resp.Courses))
		}
	})
}
