package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
	"github.com/KasumiMercury/primind-timetable/internal/session"
)

type courseRequest struct {
	Weekday int    `json:"weekday" binding:"required,min=1,max=7"`
	Section int    `json:"section" binding:"required,min=1,max=12"`
	Name    string `json:"name" binding:"required"`
	Room    string `json:"room"`
	Color   string `json:"color" binding:"omitempty,hexcolor"`
}

type dayRow struct {
	Weekday  domain.Weekday                        `json:"weekday"`
	Name     string                                `json:"name"`
	Sections [domain.SectionsPerDay]*domain.Course `json:"sections"`
}

type TimetableHandler struct {
	session  *session.Session
	location *time.Location
	clock    func() time.Time
}

func NewTimetableHandler(sess *session.Session, location *time.Location, clock func() time.Time) *TimetableHandler {
	if location == nil {
		location = time.Local
	}
	if clock == nil {
		clock = time.Now
	}
	return &TimetableHandler{
		session:  sess,
		location: location,
		clock:    clock,
	}
}

func (h *TimetableHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/courses", h.ListCourses)
	rg.POST("/courses", h.AddCourse)
	rg.PUT("/courses/:id", h.EditCourse)
	rg.DELETE("/courses/:id", h.RemoveCourse)

	rg.GET("/timetable", h.GetTimetable)
	rg.GET("/timetable/current", h.GetCurrentCourse)
	rg.GET("/timetable/next", h.GetNextCourse)
	rg.GET("/timetable/:weekday", h.GetDay)
	rg.DELETE("/timetable/:weekday/:section", h.RemoveCourseAt)
}

func (h *TimetableHandler) ListCourses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"courses": h.session.Courses()})
}

func (h *TimetableHandler) AddCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	course, err := h.session.AddCourse(domain.Weekday(req.Weekday), domain.Section(req.Section), req.Name, req.Room, req.Color)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, course)
}

func (h *TimetableHandler) EditCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	course, err := h.session.EditCourse(c.Param("id"), domain.Weekday(req.Weekday), domain.Section(req.Section), req.Name, req.Room, req.Color)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *TimetableHandler) RemoveCourse(c *gin.Context) {
	if err := h.session.RemoveCourse(c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveCourseAt clears a grid cell. The course itself stays in the
// collection and keeps producing reminders.
func (h *TimetableHandler) RemoveCourseAt(c *gin.Context) {
	weekday, ok := intParam(c, "weekday")
	if !ok {
		return
	}
	section, ok := intParam(c, "section")
	if !ok {
		return
	}

	cleared, err := h.session.RemoveCourseAt(domain.Weekday(weekday), domain.Section(section))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cleared": cleared})
}

func (h *TimetableHandler) GetTimetable(c *gin.Context) {
	grid := h.session.Timetable()

	days := make([]dayRow, 0, domain.DaysPerWeek)
	for i, sections := range grid {
		weekday := domain.Weekday(i + 1)
		days = append(days, dayRow{
			Weekday:  weekday,
			Name:     weekday.String(),
			Sections: sections,
		})
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

func (h *TimetableHandler) GetDay(c *gin.Context) {
	weekday, ok := intParam(c, "weekday")
	if !ok {
		return
	}
	if !domain.Weekday(weekday).IsValid() {
		respondDomainError(c, domain.NewValidationError("weekday", "must be between 1 and 7"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weekday": weekday,
		"courses": h.session.CoursesByDay(domain.Weekday(weekday)),
	})
}

func (h *TimetableHandler) GetCurrentCourse(c *gin.Context) {
	at, ok := h.at(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"at":     at,
		"course": h.session.CurrentCourse(at),
	})
}

func (h *TimetableHandler) GetNextCourse(c *gin.Context) {
	at, ok := h.at(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"at":     at,
		"course": h.session.NextCourse(at),
	})
}

// at resolves the optional "at" query into wall-clock time in the
// configured zone.
func (h *TimetableHandler) at(c *gin.Context) (time.Time, bool) {
	raw := c.Query("at")
	if raw == "" {
		return h.clock().In(h.location), true
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, errTypeValidation, "invalid at time format, expected RFC3339")
		return time.Time{}, false
	}
	return parsed.In(h.location), true
}

func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, errTypeValidation, name+": must be an integer")
		return 0, false
	}
	return v, true
}
