package auth

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAuthRequest_CountsRequests(t *testing.T) {
	authRequestsTotal.Reset()

	RecordAuthRequest("login", "success")
	RecordAuthRequest("login", "success")
	RecordAuthRequest("register", "failure")

	assert.Equal(t, 2.0, testutil.ToFloat64(authRequestsTotal.WithLabelValues("login", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(authRequestsTotal.WithLabelValues("register", "failure")))
}

func TestRecordAuthDuration_ObservesDuration(t *testing.T) {
	authDuration.Reset()

	RecordAuthDuration("login", 0.05)
	RecordAuthDuration("register", 0.1)

	assert.Equal(t, 2, testutil.CollectAndCount(authDuration))
}

func TestRecordTokenRejection(t *testing.T) {
	tokenRejections.Reset()

	RecordTokenRejection("missing")
	RecordTokenRejection("invalid")
	RecordTokenRejection("invalid")

	assert.Equal(t, 1.0, testutil.ToFloat64(tokenRejections.WithLabelValues("missing")))
	assert.Equal(t, 2.0, testutil.ToFloat64(tokenRejections.WithLabelValues("invalid")))
}

func TestRecordForbiddenAttempt_CountsAttempts(t *testing.T) {
	forbiddenAttempts.Reset()

	RecordForbiddenAttempt("author", "DELETE")
	RecordForbiddenAttempt("author", "DELETE")
	RecordForbiddenAttempt("editor", "DELETE")

	assert.Equal(t, 2.0, testutil.ToFloat64(forbiddenAttempts.WithLabelValues("author", "DELETE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(forbiddenAttempts.WithLabelValues("editor", "DELETE")))
}
