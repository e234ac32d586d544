package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
	"github.com/KasumiMercury/primind-timetable/internal/service/reminder"
)

type Poller interface {
	Start(ctx context.Context) error
	Stop() error
	State() reminder.State
	Interval() time.Duration
}

// RecentReminders lists reminders already delivered, newest first.
type RecentReminders interface {
	Recent(ctx context.Context, limit int) ([]*domain.Reminder, error)
}

type reminderStatus struct {
	State           reminder.State `json:"state"`
	IntervalSeconds int64          `json:"interval_seconds"`
}

type ReminderHandler struct {
	poller Poller
	recent RecentReminders
}

// NewReminderHandler creates the handler. recent may be nil when no
// reminder history sink is configured.
func NewReminderHandler(poller Poller, recent RecentReminders) *ReminderHandler {
	return &ReminderHandler{
		poller: poller,
		recent: recent,
	}
}

func (h *ReminderHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/reminder", h.Status)
	rg.POST("/reminder/start", h.Start)
	rg.POST("/reminder/stop", h.Stop)
	rg.GET("/reminder/recent", h.Recent)
}

func (h *ReminderHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.status())
}

func (h *ReminderHandler) Start(c *gin.Context) {
	if err := h.poller.Start(c.Request.Context()); err != nil {
		respondDomainError(c, err)
		return
	}

	slog.InfoContext(c.Request.Context(), "reminder poller armed by request")
	c.JSON(http.StatusOK, h.status())
}

func (h *ReminderHandler) Stop(c *gin.Context) {
	if err := h.poller.Stop(); err != nil {
		respondDomainError(c, err)
		return
	}

	slog.InfoContext(c.Request.Context(), "reminder poller disarmed by request")
	c.JSON(http.StatusOK, h.status())
}

func (h *ReminderHandler) Recent(c *gin.Context) {
	if h.recent == nil {
		c.JSON(http.StatusOK, gin.H{"reminders": []*domain.Reminder{}})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		var req struct {
			Limit int `form:"limit" binding:"min=1,max=100"`
		}
		if err := c.ShouldBindQuery(&req); err != nil {
			respondBindError(c, err)
			return
		}
		limit = req.Limit
	}

	reminders, err := h.recent.Recent(c.Request.Context(), limit)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

func (h *ReminderHandler) status() reminderStatus {
	return reminderStatus{
		State:           h.poller.State(),
		IntervalSeconds: int64(h.poller.Interval() / time.Second),
	}
}
