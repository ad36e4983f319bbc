package status

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

func TestStatusHandler_Get(t *testing.T) {
	handler := NewHandler()
	logData := logging.NewLogData(logging.SetupLogging())

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()

	err := handler.Handler(rec, req, logData)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatusHandler_MethodNotGet(t *testing.T) {
	handler := NewHandler()
	logData := logging.NewLogData(logging.SetupLogging())

	req := httptest.NewRequest(http.MethodPost, "/status", nil)
	rec := httptest.NewRecorder()

	err := handler.Handler(rec, req, logData)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
