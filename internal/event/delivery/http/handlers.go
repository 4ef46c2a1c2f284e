package http

import (
	"github.com/gin-gonic/gin"

	"cie-dashboard/internal/event"
	"cie-dashboard/pkg/response"
)

// Create godoc
// @Summary     Create an event
// @Description Adds an event to a page's calendar. Category defaults to the page's default category.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       page path string    true "Dashboard page (academic, events, mentoring, studio, cohorts)"
// @Param       body body createReq true "Event data"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Unknown page"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/pages/{page}/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List events
// @Description Returns a page's stored events ordered by date, optionally bounded by from/to.
// @Tags        Events
// @Produce     json
// @Param       page   path  string true  "Dashboard page"
// @Param       from   query string false "First date, YYYY-MM-DD"
// @Param       to     query string false "Last date, YYYY-MM-DD"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/pages/{page}/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get event detail
// @Tags        Events
// @Produce     json
// @Param       page path string true "Dashboard page"
// @Param       id   path string true "Event ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/pages/{page}/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := h.processPage(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	output, err := h.uc.Detail(ctx, page, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update an event
// @Description Partial update; omitted fields keep their stored values.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       page path string    true "Dashboard page"
// @Param       id   path string    true "Event ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/pages/{page}/events/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete an event
// @Tags        Events
// @Produce     json
// @Param       page path string true "Dashboard page"
// @Param       id   path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/pages/{page}/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := h.processPage(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	if err := h.uc.Delete(ctx, page, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Month godoc
// @Summary     Render a month grid
// @Description Returns the 6x7 Sunday-first grid for a month with events and legend. Defaults to the current month.
// @Tags        Calendar
// @Produce     json
// @Param       page  path  string true  "Dashboard page"
// @Param       year  query int    false "Year"
// @Param       month query int    false "Month, 1-12; out-of-range values roll into adjacent years"
// @Success     200 {object} monthResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown page"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/pages/{page}/calendar [GET]
func (h *handler) Month(c *gin.Context) {
	ctx := c.Request.Context()

	page, req, err := h.processMonthReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	var output event.MonthGridOutput
	if req.isSet() {
		output, err = h.uc.MonthGrid(ctx, event.MonthGridInput{Page: page, Cursor: req.cursor()})
	} else {
		output, err = h.uc.Today(ctx, page)
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.MonthGrid: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMonthResp(output))
}

// Navigate godoc
// @Summary     Move one month
// @Tags        Calendar
// @Produce     json
// @Param       page      path  string true "Dashboard page"
// @Param       year      query int    true "Year currently shown"
// @Param       month     query int    true "Month currently shown, 1-12"
// @Param       direction query string true "previous or next"
// @Success     200 {object} monthResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/pages/{page}/calendar/navigate [GET]
func (h *handler) Navigate(c *gin.Context) {
	ctx := c.Request.Context()

	page, req, dir, err := h.processNavigateReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	output, err := h.uc.Navigate(ctx, event.NavigateInput{Page: page, Cursor: req.cursor(), Direction: dir})
	if err != nil {
		h.l.Errorf(ctx, "uc.Navigate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMonthResp(output))
}

// Today godoc
// @Summary     Jump to the current month
// @Tags        Calendar
// @Produce     json
// @Param       page path string true "Dashboard page"
// @Success     200 {object} monthResp
// @Failure     404 {object} response.Resp "Unknown page"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/pages/{page}/calendar/today [GET]
func (h *handler) Today(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := h.processPage(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	output, err := h.uc.Today(ctx, page)
	if err != nil {
		h.l.Errorf(ctx, "uc.Today: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMonthResp(output))
}

// Jump godoc
// @Summary     Jump to a date
// @Description Accepts YYYY-MM-DD or a relative phrase such as "tomorrow", "next friday", "in 2 weeks".
// @Tags        Calendar
// @Produce     json
// @Param       page path  string true "Dashboard page"
// @Param       date query string true "Target date expression"
// @Success     200 {object} monthResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/pages/{page}/calendar/jump [GET]
func (h *handler) Jump(c *gin.Context) {
	ctx := c.Request.Context()

	page, req, err := h.processJumpReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	output, err := h.uc.Jump(ctx, event.JumpInput{Page: page, Expr: req.Date})
	if err != nil {
		h.l.Warnf(ctx, "uc.Jump: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMonthResp(output))
}

// Day godoc
// @Summary     Events on a date
// @Description Payload of a date click: the date and every event falling on it.
// @Tags        Calendar
// @Produce     json
// @Param       page path  string true "Dashboard page"
// @Param       date   query string true  "YYYY-MM-DD"
// @Param       policy query string false "sundays or weekends; adds the date's weekend/holiday conflict"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/pages/{page}/calendar/day [GET]
func (h *handler) Day(c *gin.Context) {
	ctx := c.Request.Context()

	page, req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	output, err := h.uc.DayDetail(ctx, event.DayDetailInput{Page: page, Date: req.Date, Policy: req.policy()})
	if err != nil {
		h.l.Errorf(ctx, "uc.DayDetail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDayResp(output))
}

// WorkingDays godoc
// @Summary     Count working days
// @Description Days in [from, to] that are neither weekends under the policy nor holidays on the page's calendar.
// @Tags        Calendar
// @Produce     json
// @Param       page   path  string true "Dashboard page"
// @Param       from   query string true "YYYY-MM-DD"
// @Param       to     query string true "YYYY-MM-DD, at most 366 days after from"
// @Param       policy query string true "sundays or weekends"
// @Success     200 {object} workdaysResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/pages/{page}/calendar/workdays [GET]
func (h *handler) WorkingDays(c *gin.Context) {
	ctx := c.Request.Context()

	page, req, err := h.processWorkdaysReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	output, err := h.uc.WorkingDays(ctx, req.toInput(page))
	if err != nil {
		h.l.Errorf(ctx, "uc.WorkingDays: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newWorkdaysResp(output))
}

// Legend godoc
// @Summary     Category legend
// @Tags        Calendar
// @Produce     json
// @Param       page path string true "Dashboard page"
// @Success     200 {object} legendListResp
// @Failure     404 {object} response.Resp "Unknown page"
// @Router      /api/v1/pages/{page}/legend [GET]
func (h *handler) Legend(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := h.processPage(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	output, err := h.uc.Legend(ctx, page)
	if err != nil {
		h.l.Errorf(ctx, "uc.Legend: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newLegendResp(output))
}

// Upcoming godoc
// @Summary     Upcoming events
// @Tags        Timeline
// @Produce     json
// @Param       page  path  string true  "Dashboard page"
// @Param       limit query int    false "Max events (default: 5, max: 50)"
// @Success     200 {object} timelineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/pages/{page}/events/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	page, req, err := h.processTimelineReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	output, err := h.uc.Upcoming(ctx, event.TimelineInput{Page: page, Limit: req.Limit})
	if err != nil {
		h.l.Errorf(ctx, "uc.Upcoming: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTimelineResp(output))
}

// Past godoc
// @Summary     Past events
// @Tags        Timeline
// @Produce     json
// @Param       page  path  string true  "Dashboard page"
// @Param       limit query int    false "Max events (default: 5, max: 50)"
// @Success     200 {object} timelineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/pages/{page}/events/past [GET]
func (h *handler) Past(c *gin.Context) {
	ctx := c.Request.Context()

	page, req, err := h.processTimelineReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	output, err := h.uc.Past(ctx, event.TimelineInput{Page: page, Limit: req.Limit})
	if err != nil {
		h.l.Errorf(ctx, "uc.Past: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTimelineResp(output))
}
