package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"cie-dashboard/internal/planner"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/log"
)

type stubUseCase struct {
	upcoming planner.UpcomingContentOutput
	err      error
}

func (s stubUseCase) UpcomingContent(ctx context.Context, input planner.UpcomingContentInput) (planner.UpcomingContentOutput, error) {
	return s.upcoming, s.err
}
func (s stubUseCase) MentoringSummary(ctx context.Context) (planner.MentoringSummaryOutput, error) {
	return planner.MentoringSummaryOutput{TotalWeeks: 8, WorkingWeeks: 7}, s.err
}
func (s stubUseCase) Cohorts(ctx context.Context) (planner.CohortsOutput, error) {
	return planner.CohortsOutput{}, s.err
}

func serve(uc planner.UseCase, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestUpcomingContent(t *testing.T) {
	uc := stubUseCase{upcoming: planner.UpcomingContentOutput{
		Today: calendar.MustParseDate("2024-03-10"),
		Items: []planner.UpcomingContent{{
			Plan: planner.ContentPlan{ID: "p1", Title: "Reel", ShootDate: calendar.MustParseDate("2024-03-12")},
			Next: planner.PhaseDate{Phase: "shoot", Date: calendar.MustParseDate("2024-03-12")},
		}},
	}}

	w := serve(uc, "/api/v1/planner/studio/upcoming?limit=3")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Data upcomingResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Items) != 1 || body.Data.Items[0].NextDate != "2024-03-12" || body.Data.Items[0].EditDate != "" {
		t.Fatalf("items = %+v", body.Data.Items)
	}

	if w := serve(uc, "/api/v1/planner/studio/upcoming?limit=0x"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad limit status = %d", w.Code)
	}
}

func TestMentoring(t *testing.T) {
	w := serve(stubUseCase{}, "/api/v1/planner/mentoring")
	var body struct {
		Data mentoringResp `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || body.Data.WorkingWeeks != 7 {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestUnavailable(t *testing.T) {
	w := serve(stubUseCase{err: planner.ErrPlannerUnavailable}, "/api/v1/planner/cohorts")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
