package cmd_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ordertracker/cmd"
	"ordertracker/internal/adapters/out/twilio"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func memoryConfig() cmd.Config {
	return cmd.Config{
		StoreDriver:      cmd.StoreDriverMemory,
		TwilioAccountSID: "AC00000000000000000000000000000000",
		TwilioAuthToken:  "token",
		TwilioFrom:       "+14155238886",
		TwilioChannel:    twilio.ChannelWhatsApp,
		OperatorAddress:  "+15550000",
		SweepSchedule:    "0 9 * * *",
		SweepLocation:    time.UTC,
	}
}

func TestCompositionRoot_MemoryDriverServesHTTP(t *testing.T) {
	root, err := cmd.NewCompositionRoot(t.Context(), memoryConfig(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close(t.Context()) })

	e := root.CreateHTTPServer()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCompositionRoot_RequiresSender(t *testing.T) {
	cfg := memoryConfig()
	cfg.TwilioFrom = ""

	_, err := cmd.NewCompositionRoot(t.Context(), cfg, zap.NewNop())

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCompositionRoot_CreateJobManager(t *testing.T) {
	root, err := cmd.NewCompositionRoot(t.Context(), memoryConfig(), zap.NewNop())
	require.NoError(t, err)

	manager, err := root.CreateJobManager()
	require.NoError(t, err)
	assert.NotNil(t, manager)

	cfg := memoryConfig()
	cfg.SweepSchedule = "not a schedule"
	root, err = cmd.NewCompositionRoot(t.Context(), cfg, zap.NewNop())
	require.NoError(t, err)
	_, err = root.CreateJobManager()
	require.Error(t, err)
}
