package handler

import (
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-timetable/internal/session"
)

type homeworkRequest struct {
	Name   string     `json:"name" binding:"required"`
	Course string     `json:"course" binding:"required"`
	Due    civil.Date `json:"due"`
}

type toggleRequest struct {
	Done *bool `json:"done" binding:"required"`
}

type HomeworkHandler struct {
	session  *session.Session
	location *time.Location
	clock    func() time.Time
}

func NewHomeworkHandler(sess *session.Session, location *time.Location, clock func() time.Time) *HomeworkHandler {
	if location == nil {
		location = time.Local
	}
	if clock == nil {
		clock = time.Now
	}
	return &HomeworkHandler{
		session:  sess,
		location: location,
		clock:    clock,
	}
}

func (h *HomeworkHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/homeworks", h.SortedView)
	rg.POST("/homeworks", h.AddHomework)
	rg.PATCH("/homeworks/view/:index", h.ToggleDoneAt)
	rg.DELETE("/homeworks/view/:index", h.DeleteAt)
	rg.PATCH("/homeworks/:id", h.ToggleDone)
	rg.DELETE("/homeworks/:id", h.Delete)
}

// SortedView returns homeworks ordered by due date with remaining days,
// label and highlight computed against "today" (query or clock).
func (h *HomeworkHandler) SortedView(c *gin.Context) {
	today := civil.DateOf(h.clock().In(h.location))
	if raw := c.Query("today"); raw != "" {
		parsed, err := civil.ParseDate(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, errTypeValidation, "today: expected YYYY-MM-DD")
			return
		}
		today = parsed
	}

	c.JSON(http.StatusOK, gin.H{
		"today":     today,
		"homeworks": h.session.SortedHomeworkView(today),
	})
}

func (h *HomeworkHandler) AddHomework(c *gin.Context) {
	var req homeworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	hw, err := h.session.AddHomework(req.Name, req.Course, req.Due)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hw)
}

func (h *HomeworkHandler) ToggleDoneAt(c *gin.Context) {
	index, ok := intParam(c, "index")
	if !ok {
		return
	}

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	hw, err := h.session.ToggleHomeworkDoneAt(index, *req.Done)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, hw)
}

func (h *HomeworkHandler) DeleteAt(c *gin.Context) {
	index, ok := intParam(c, "index")
	if !ok {
		return
	}

	hw, err := h.session.DeleteHomeworkAt(index)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, hw)
}

func (h *HomeworkHandler) ToggleDone(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	hw, err := h.session.ToggleHomeworkDone(c.Param("id"), *req.Done)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, hw)
}

func (h *HomeworkHandler) Delete(c *gin.Context) {
	if err := h.session.DeleteHomework(c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
