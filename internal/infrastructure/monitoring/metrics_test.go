package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func newTestMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.NewRegistry())
}

func TestSnapshotTracksCatalog(t *testing.T) {
	m := newTestMetrics()

	m.RecordCatalogLoad(120*time.Millisecond, 42)
	m.RecordCatalogDegrade("usage")
	m.SetCatalogSize(40)

	snap := m.Snapshot()
	if snap.CatalogLoads != 1 || snap.CatalogSize != 40 || snap.CatalogDegrades != 1 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestSnapshotTracksSearchAndLaunch(t *testing.T) {
	m := newTestMetrics()

	m.RecordSearch(200 * time.Microsecond)
	m.RecordSearch(300 * time.Microsecond)
	m.RecordLaunch(true)
	m.RecordLaunch(false)

	snap := m.Snapshot()
	if snap.Searches != 2 {
		t.Errorf("searches = %d, want 2", snap.Searches)
	}
	if snap.Launches != 1 {
		t.Errorf("launches = %d, want only the successful one", snap.Launches)
	}
}

func TestSnapshotTracksRequests(t *testing.T) {
	m := newTestMetrics()

	m.RecordHTTPRequest("GET", "/drawer", "200", 10*time.Millisecond)
	m.RecordHTTPRequest("PUT", "/drawer/query", "400", 2*time.Millisecond)

	snap := m.Snapshot()
	if snap.TotalRequests != 2 || snap.TotalErrors != 1 {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.AvgRequestMs <= 0 {
		t.Errorf("avg request ms = %f, want positive", snap.AvgRequestMs)
	}
}

func TestWSConnectionGauge(t *testing.T) {
	m := newTestMetrics()

	m.IncWSConnections()
	m.IncWSConnections()
	m.DecWSConnections()

	if snap := m.Snapshot(); snap.WSConnections != 1 {
		t.Errorf("ws connections = %d, want 1", snap.WSConnections)
	}
}

func TestMiddlewareRecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestMetrics()

	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/drawer/apps/:identity/icon", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/drawer/apps/com.a/icon", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if snap := m.Snapshot(); snap.TotalRequests != 1 || snap.TotalErrors != 0 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestMiddlewareCountsErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestMetrics()

	router := gin.New()
	router.Use(Middleware(m))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if snap := m.Snapshot(); snap.TotalErrors != 1 {
		t.Errorf("snapshot = %+v, want one error", snap)
	}
}
