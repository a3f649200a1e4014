package job

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/entity"
	"workforce/backend/internal/payroll"
	"workforce/backend/internal/repository/postgres/job"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJob struct {
	settings payroll.EffectiveSettings
	userID   int
	jobID    int
}

func (s *stubJob) GetById(ctx context.Context, id int) (entity.Job, error) {
	return entity.Job{}, nil
}

func (s *stubJob) GetList(ctx context.Context, filter job.Filter) ([]job.GetListResponse, int, error) {
	return nil, 0, nil
}

func (s *stubJob) Create(ctx context.Context, request job.CreateRequest) (job.CreateResponse, error) {
	return job.CreateResponse{}, nil
}

func (s *stubJob) UpdateColumns(ctx context.Context, request job.UpdateRequest) error { return nil }

func (s *stubJob) Retire(ctx context.Context, id int) error { return nil }

func (s *stubJob) Assign(ctx context.Context, request job.AssignRequest) error { return nil }

func (s *stubJob) ResolveSettings(ctx context.Context, userID, jobID int) (payroll.EffectiveSettings, error) {
	s.userID, s.jobID = userID, jobID
	return s.settings, nil
}

func newSettingsApp(stub *stubJob) *web.App {
	app := web.NewApp(make(chan os.Signal, 1))
	controller := NewController(stub)
	app.Get("/api/v1/job/settings", controller.GetJobSettings)
	return app
}

func TestGetJobSettings(t *testing.T) {
	stub := &stubJob{settings: payroll.EffectiveSettings{
		JobID:              7,
		PayType:            entity.PayTypeHourly,
		HourlyRate:         decimal.NewFromInt(40),
		OvertimeMultiplier: decimal.NewFromFloat(1.5),
	}}
	app := newSettingsApp(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/job/settings?user_id=12&job_id=7", nil)
	app.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 12, stub.userID)
	assert.Equal(t, 7, stub.jobID)

	var body struct {
		Data   payroll.EffectiveSettings `json:"data"`
		Status bool                      `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Status)
	assert.Equal(t, 7, body.Data.JobID)
	assert.Equal(t, entity.PayTypeHourly, body.Data.PayType)
	assert.True(t, decimal.NewFromInt(40).Equal(body.Data.HourlyRate))
}

func TestGetJobSettingsMissingParams(t *testing.T) {
	app := newSettingsApp(&stubJob{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/job/settings?user_id=12", nil)
	app.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
