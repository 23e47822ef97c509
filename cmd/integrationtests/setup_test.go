package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/gin-gonic/gin"

	bidding "mall-bidding/internal/biddingService"
	"mall-bidding/internal/catalog"
	"mall-bidding/internal/fanout"
	"mall-bidding/internal/ledger"
	"mall-bidding/internal/push"
	"mall-bidding/internal/repository"
	"mall-bidding/internal/server"
	"mall-bidding/internal/sessions"
)

var testEpoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// TestStack holds the wired marketplace with handles on the pieces the
// tests need to reach around the HTTP surface: the fan-out service for
// agent subscriptions and the fake clock for time travel.
type TestStack struct {
	Router *gin.Engine
	Fan    *fanout.Service
	Repo   *repository.MemoryRepo
	Clock  *fakeclock.FakeClock
}

// SetupTestStack initializes the full marketplace over the in-memory
// repository, seeded with the demo agents.
func SetupTestStack(t *testing.T) *TestStack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	clk := fakeclock.NewFakeClock(testEpoch)

	for _, agent := range catalog.SeedAgents() {
		if err := repo.SaveAgent(agent); err != nil {
			t.Fatalf("failed to seed agent %s: %v", agent.AgentID, err)
		}
	}

	coins := ledger.NewCoinLedger(repo, clk)
	registry := sessions.NewRegistry(repo, coins, push.NewLogSender(), clk)
	fan := fanout.NewService(repo, clk, fanout.DeliverMatched)
	service := bidding.NewService(repo, coins, registry, fan, catalog.NewDemoMatcher(), clk)

	return &TestStack{
		Router: server.SetupRouter(service),
		Fan:    fan,
		Repo:   repo,
		Clock:  clk,
	}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// dataObject extracts the response envelope's data field as an object.
func dataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response data is not an object: %v", resp["data"])
	}
	return data
}

// dataArray extracts the response envelope's data field as an array.
func dataArray(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response data is not an array: %v", resp["data"])
	}
	return data
}
