package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"duoscale/internal/dateutil"
	"duoscale/internal/domain"
	"duoscale/internal/repository"
	"duoscale/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router   *gin.Engine
	weighIns *repository.InMemoryWeighInRepository
	profiles *repository.InMemoryProfileRepository
	loc      *time.Location
}

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(string) bool { return false }

func newTestEnv(t *testing.T, limiter service.AskRateLimiter) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	loc := time.FixedZone("KST", 9*60*60)

	weighIns := repository.NewInMemoryWeighInRepository()
	members := repository.NewInMemoryMemberRepository()
	profiles := repository.NewInMemoryProfileRepository()
	members.Put("hh-1",
		domain.HouseholdMember{Person: domain.PersonMe, DisplayName: "창창"},
		domain.HouseholdMember{Person: domain.PersonPartner, DisplayName: "창희"},
	)

	fallback := service.NewFallbackAnswerer([]string{"나", "내"}, []string{"너", "상대"})
	askSvc := service.NewAskService(nil, fallback, service.NewTranscriptRegistry(), logger)
	summarySvc := service.NewSummaryService(weighIns, members, logger)

	router := NewRouter(
		logger,
		NewAskHandler(logger, askSvc, limiter),
		NewDashboardHandler(logger, summarySvc, weighIns, loc, 30),
		NewWeighInHandler(logger, weighIns, loc),
		NewGoalHandler(logger, profiles, weighIns, loc),
		nil,
	)
	return &testEnv{router: router, weighIns: weighIns, profiles: profiles, loc: loc}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// seedToday writes records relative to the handler clock so the
// today-anchored endpoints can see them.
func (e *testEnv) seedToday(t *testing.T, daysAgo int, person domain.Person, weight float64, drank bool) string {
	t.Helper()
	date, err := dateutil.AddDays(dateutil.Today(e.loc), -daysAgo)
	if err != nil {
		t.Fatalf("add days: %v", err)
	}
	rec := domain.WeighIn{Date: date, Person: person, WeightKg: weight, Drank: drank}
	if err := e.weighIns.Upsert(context.Background(), "hh-1", rec); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return date
}
