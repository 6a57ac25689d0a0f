package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the Prometheus output contains a business metric
// matching the given name, partial label pattern, and value. Uses regex to handle
// extra OTel scope labels injected by the Prometheus exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func scrapeMetrics(t *testing.T, provider *Provider) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	return w.Body.String()
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)
}

func TestBusinessMetrics_RecordOperation(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "token", "redeem", "success")
	bm.RecordOperation(ctx, "token", "redeem", "success")
	bm.RecordOperation(ctx, "admin", "login", "error")

	output := scrapeMetrics(t, provider)
	assertBizMetricLine(t, output, "test_app_operations_total",
		`domain="token".*operation="redeem".*status="success"`, "2")
	assertBizMetricLine(t, output, "test_app_operations_total",
		`domain="admin".*operation="login".*status="error"`, "1")
}

func TestBusinessMetrics_RecordDuration(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	// Should not panic and should show up in the scrape
	bm.RecordDuration(context.Background(), "token", "issue", 15*time.Millisecond, "success")

	output := scrapeMetrics(t, provider)
	assert.Contains(t, output, "test_app_operation_duration_seconds")
}

func TestNoOpBusinessMetrics(t *testing.T) {
	bm := NewNoOpBusinessMetrics()

	// Should not panic
	bm.RecordOperation(context.Background(), "token", "issue", "success")
	bm.RecordDuration(context.Background(), "token", "issue", time.Second, "success")
}
