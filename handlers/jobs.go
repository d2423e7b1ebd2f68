package handlers

import (
	"net/http"

	"handrest/middleware"
	"handrest/models"
	"handrest/services/jobs"

	"github.com/gin-gonic/gin"
)

// JobsHandler serves the staff portal: the open-job feed and the
// accept/reject/start/complete actions.
type JobsHandler struct {
	Service jobs.JobsService
}

// NewJobsHandler creates a JobsHandler.
func NewJobsHandler(svc jobs.JobsService) *JobsHandler {
	return &JobsHandler{Service: svc}
}

// AvailableJobsHandler lists open jobs inside the staff member's coverage.
func (h *JobsHandler) AvailableJobsHandler(c *gin.Context) {
	list, err := h.Service.ListAvailableJobs(middleware.GetActor(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// MyJobsHandler lists the staff member's accepted bookings. An optional
// ?status= query narrows the listing to one status.
func (h *JobsHandler) MyJobsHandler(c *gin.Context) {
	var statuses []models.BookingStatus
	if st := c.Query("status"); st != "" {
		statuses = append(statuses, models.BookingStatus(st))
	} else {
		statuses = []models.BookingStatus{models.StatusAssigned, models.StatusInProgress}
	}
	list, err := h.Service.MyJobs(middleware.GetActor(c), statuses)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// AcceptJobHandler accepts an open job.
func (h *JobsHandler) AcceptJobHandler(c *gin.Context) {
	asg, err := h.Service.AcceptJob(middleware.GetActor(c), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, asg)
}

// RejectJobHandler declines an open job, permanently removing it from the
// staff member's feed.
func (h *JobsHandler) RejectJobHandler(c *gin.Context) {
	if err := h.Service.RejectJob(middleware.GetActor(c), c.Param("id")); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job rejected"})
}

// StartJobHandler marks an assigned job as started.
func (h *JobsHandler) StartJobHandler(c *gin.Context) {
	b, err := h.Service.StartJob(middleware.GetActor(c), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CompleteJobHandler marks an in-progress job as completed.
func (h *JobsHandler) CompleteJobHandler(c *gin.Context) {
	b, err := h.Service.CompleteJob(middleware.GetActor(c), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
