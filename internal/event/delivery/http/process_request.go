package http

import (
	"github.com/gin-gonic/gin"

	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
)

// processPage reads the :page URI param.
func (h *handler) processPage(c *gin.Context) (model.Page, error) {
	return model.ParsePage(c.Param("page"))
}

// processCreateReq binds and validates the create event request body + URI param.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	page, err := h.processPage(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Page = page
	return req, nil
}

// processListReq binds and validates the list events query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	page, err := h.processPage(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.Page = page
	return req, nil
}

// processUpdateReq binds and validates the update event request body + URI params.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	page, err := h.processPage(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Page = page
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

// processMonthReq resolves the month a calendar request is about. Without
// year and month the use case falls back to today's month; one without the
// other is rejected.
func (h *handler) processMonthReq(c *gin.Context) (model.Page, monthReq, error) {
	var req monthReq
	page, err := h.processPage(c)
	if err != nil {
		return page, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return page, req, err
	}
	if req.isPartial() {
		return page, req, errMissingMonth
	}
	return page, req, nil
}

func (h *handler) processNavigateReq(c *gin.Context) (model.Page, navigateReq, calendar.Direction, error) {
	var req navigateReq
	page, err := h.processPage(c)
	if err != nil {
		return page, req, 0, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return page, req, 0, err
	}
	if !req.isSet() {
		return page, req, 0, errMissingMonth
	}
	dir, err := calendar.ParseDirection(req.Direction)
	return page, req, dir, err
}

func (h *handler) processJumpReq(c *gin.Context) (model.Page, jumpReq, error) {
	var req jumpReq
	page, err := h.processPage(c)
	if err != nil {
		return page, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return page, req, err
	}
	return page, req, nil
}

func (h *handler) processDayReq(c *gin.Context) (model.Page, dayReq, error) {
	var req dayReq
	page, err := h.processPage(c)
	if err != nil {
		return page, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return page, req, err
	}
	return page, req, nil
}

func (h *handler) processWorkdaysReq(c *gin.Context) (model.Page, workdaysReq, error) {
	var req workdaysReq
	page, err := h.processPage(c)
	if err != nil {
		return page, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return page, req, err
	}
	return page, req, nil
}

func (h *handler) processTimelineReq(c *gin.Context) (model.Page, timelineReq, error) {
	var req timelineReq
	page, err := h.processPage(c)
	if err != nil {
		return page, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return page, req, err
	}
	return page, req, nil
}
