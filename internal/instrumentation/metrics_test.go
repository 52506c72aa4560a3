package instrumentation

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperationCountsByStatus(t *testing.T) {
	before := testutil.ToFloat64(operationsTotal.WithLabelValues("test.op", StatusSuccess))

	var err error
	ObserveOperation("test.op", time.Now(), &err)

	after := testutil.ToFloat64(operationsTotal.WithLabelValues("test.op", StatusSuccess))
	assert.Equal(t, before+1, after)
}

func TestObserveOperationRecordsErrors(t *testing.T) {
	before := testutil.ToFloat64(operationsTotal.WithLabelValues("test.op", StatusError))

	err := errors.New("boom")
	ObserveOperation("test.op", time.Now(), &err)

	after := testutil.ToFloat64(operationsTotal.WithLabelValues("test.op", StatusError))
	assert.Equal(t, before+1, after)
}

func TestObserveOperationNilPointer(t *testing.T) {
	before := testutil.ToFloat64(operationsTotal.WithLabelValues("test.op", StatusSuccess))

	ObserveOperation("test.op", time.Now(), nil)

	after := testutil.ToFloat64(operationsTotal.WithLabelValues("test.op", StatusSuccess))
	assert.Equal(t, before+1, after)
}
