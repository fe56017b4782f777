package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/ordenes", "200"))
	RecordAPIRequest("GET", "/api/ordenes", "200", 15*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/ordenes", "200"))
	assert.Equal(t, before+1, after)
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	assert.Equal(t, before+1, testutil.ToFloat64(APIActiveRequests))
	TrackActiveRequest(false)
	assert.Equal(t, before, testutil.ToFloat64(APIActiveRequests))
}

func TestRecordError(t *testing.T) {
	before := testutil.ToFloat64(APIErrors.WithLabelValues("CONFLICT"))
	RecordError("CONFLICT")
	assert.Equal(t, before+1, testutil.ToFloat64(APIErrors.WithLabelValues("CONFLICT")))
}
