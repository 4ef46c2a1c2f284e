package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "cie-dashboard/pkg/errors"
	"cie-dashboard/pkg/response"
)

// UpcomingContent godoc
// @Summary     Upcoming studio content
// @Description Content plans with a shoot, edit or post date still ahead, soonest first.
// @Tags        Planner
// @Produce     json
// @Param       limit query int false "Max plans (default: 5, max: 50)"
// @Success     200 {object} upcomingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/studio/upcoming [GET]
func (h *handler) UpcomingContent(c *gin.Context) {
	ctx := c.Request.Context()

	var req upcomingReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()), nil)
		return
	}

	output, err := h.uc.UpcomingContent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpcomingContent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpcomingResp(output))
}

// Mentoring godoc
// @Summary     Mentoring weeks
// @Description Every mentoring week with total and working-week counts.
// @Tags        Planner
// @Produce     json
// @Success     200 {object} mentoringResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/mentoring [GET]
func (h *handler) Mentoring(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.MentoringSummary(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.MentoringSummary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMentoringResp(output))
}

// Cohorts godoc
// @Summary     Cohort projects
// @Description Every cohort with its duration in weeks and remaining meeting days.
// @Tags        Planner
// @Produce     json
// @Success     200 {object} cohortsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/cohorts [GET]
func (h *handler) Cohorts(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Cohorts(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Cohorts: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCohortsResp(output))
}
