package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickhofstede/weaviate-go/v1/observability"
)

func TestObserveOperationCountsSuccessAndError(t *testing.T) {
	m := NewMetrics(Config{})

	m.ObserveOperation(observability.OperationContext{
		Component: "connection",
		Operation: "post",
		Duration:  25 * time.Millisecond,
	})
	m.ObserveOperation(observability.OperationContext{
		Component: "connection",
		Operation: "post",
		Duration:  5 * time.Millisecond,
		Error:     errors.New("boom"),
	})

	success := m.operationsTotal.WithLabelValues("connection", "post", "success")
	failure := m.operationsTotal.WithLabelValues("connection", "post", "error")
	assert.Equal(t, 1.0, testutil.ToFloat64(success))
	assert.Equal(t, 1.0, testutil.ToFloat64(failure))
}

func TestObserveOperationTracksBatchItems(t *testing.T) {
	m := NewMetrics(Config{})

	m.ObserveOperation(observability.OperationContext{
		Component: "batch",
		Operation: "create_objects",
		Duration:  100 * time.Millisecond,
		Size:      40,
	})
	m.ObserveOperation(observability.OperationContext{
		Component: "batch",
		Operation: "create_objects",
		Duration:  120 * time.Millisecond,
		Size:      25,
	})

	items := m.batchItemsTotal.WithLabelValues("create_objects")
	assert.Equal(t, 65.0, testutil.ToFloat64(items))

	last := m.batchSize.WithLabelValues("create_objects")
	assert.Equal(t, 25.0, testutil.ToFloat64(last))
}

func TestObserveOperationSkipsItemCounterOnFailure(t *testing.T) {
	m := NewMetrics(Config{})

	m.ObserveOperation(observability.OperationContext{
		Component: "batch",
		Operation: "create_references",
		Size:      10,
		Error:     errors.New("timeout"),
	})

	items := m.batchItemsTotal.WithLabelValues("create_references")
	assert.Equal(t, 0.0, testutil.ToFloat64(items))

	// The attempt size is still visible on the gauge.
	last := m.batchSize.WithLabelValues("create_references")
	assert.Equal(t, 10.0, testutil.ToFloat64(last))
}

func TestMetricsEndpointServesRegistry(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "importer"})
	m.ObserveOperation(observability.OperationContext{
		Component: "connection",
		Operation: "get",
	})

	srv := httptest.NewServer(m.Server.Handler)
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "client_operations_total")
	assert.Contains(t, string(body), `service="importer"`)
}

func TestNamespacePrefixesMetricNames(t *testing.T) {
	m := NewMetrics(Config{Namespace: "importer"})
	m.ObserveOperation(observability.OperationContext{
		Component: "connection",
		Operation: "post",
	})

	count, err := testutil.GatherAndCount(m.Registry, "importer_client_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreateCounterRegistersCustomMetric(t *testing.T) {
	m := NewMetrics(Config{})

	counter := m.CreateCounter("documents_imported_total", "Documents imported so far", []string{"class"})
	counter.WithLabelValues("Article").Inc()
	counter.WithLabelValues("Article").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(counter.WithLabelValues("Article")))

	count, err := testutil.GatherAndCount(m.Registry, "documents_imported_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDefaultCollectorsToggle(t *testing.T) {
	enabled := NewMetrics(Config{EnableDefaultCollectors: true})
	families, err := enabled.Registry.Gather()
	require.NoError(t, err)

	var sawGoMetrics bool
	for _, fam := range families {
		if fam.GetName() == "go_goroutines" {
			sawGoMetrics = true
		}
	}
	assert.True(t, sawGoMetrics)

	disabled := NewMetrics(Config{})
	count, err := testutil.GatherAndCount(disabled.Registry, "go_goroutines")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAddressDefaulting(t *testing.T) {
	m := NewMetrics(Config{})
	assert.Equal(t, DefaultMetricsAddress, m.Server.Addr)

	m = NewMetrics(Config{Address: ":9100"})
	assert.Equal(t, ":9100", m.Server.Addr)
}
