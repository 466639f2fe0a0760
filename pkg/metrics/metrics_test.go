package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewCollectorIsolated(t *testing.T) {
	a := NewCollector("test")
	b := NewCollector("test")

	a.RecordAPIRequest("/api/simulate", "POST", "200")

	if got := testutil.ToFloat64(a.APIRequestsTotal.WithLabelValues("/api/simulate", "POST", "200")); got != 1 {
		t.Errorf("collector a counter = %v, expected 1", got)
	}
	if got := testutil.ToFloat64(b.APIRequestsTotal.WithLabelValues("/api/simulate", "POST", "200")); got != 0 {
		t.Errorf("collector b counter = %v, expected 0", got)
	}
}

func TestRecordSimulation(t *testing.T) {
	c := NewCollector("test")

	c.RecordSimulation(Simulation{Country: "BE", Region: "Wallonie", SystemSizeKwc: 6})
	c.RecordSimulation(Simulation{Country: "BE", Region: "Wallonie", SystemSizeKwc: 6, SavingsCapped: true})
	c.RecordSimulation(Simulation{Country: "FR", SystemSizeKwc: 3, ProductionSubstituted: true})

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"Wallonie simulations", testutil.ToFloat64(c.SimulationsTotal.WithLabelValues("BE", "Wallonie")), 2},
		{"France simulations", testutil.ToFloat64(c.SimulationsTotal.WithLabelValues("FR", "")), 1},
		{"Savings capped", testutil.ToFloat64(c.SavingsCappedTotal), 1},
		{"Production substituted", testutil.ToFloat64(c.ProductionSubstitutedTotal), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}
}

func TestTimer(t *testing.T) {
	c := NewCollector("test")
	timer := c.NewTimer(c.APIRequestDuration.WithLabelValues("/api/version"))
	time.Sleep(time.Millisecond)
	if d := timer.ObserveDuration(); d <= 0 {
		t.Errorf("ObserveDuration() = %v, expected a positive duration", d)
	}

	if got := testutil.CollectAndCount(c.APIRequestDuration); got != 1 {
		t.Errorf("expected 1 histogram series, got %d", got)
	}

	untracked := &Timer{start: time.Now()}
	if d := untracked.ObserveDuration(); d < 0 {
		t.Errorf("ObserveDuration() without observer = %v", d)
	}
}

func TestHandler(t *testing.T) {
	c := NewCollector("solar_test")
	c.RecordAPIError("validation", "/api/simulate")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `solar_test_api_errors_total{endpoint="/api/simulate",error_type="validation"} 1`) {
		t.Errorf("metrics output missing error counter:\n%s", body)
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Error("metrics output missing Go runtime collector")
	}
}
