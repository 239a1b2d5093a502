package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSalesSummaryHandler struct {
	mock.Mock
}

func (m *MockSalesSummaryHandler) Handle(ctx context.Context, query queries.GetSalesSummaryQuery) (queries.SalesSummary, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.SalesSummary), args.Error(1)
}

type MockJob struct {
	mock.Mock
}

func (m *MockJob) Start() error {
	return m.Called().Error(0)
}

func (m *MockJob) Stop() {
	m.Called()
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, nil)), buf
}

func money(t *testing.T, f float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromFloat(f)
	require.NoError(t, err)
	return m
}

func TestSalesSummaryJob_RunLogsTotals(t *testing.T) {
	handler := new(MockSalesSummaryHandler)
	handler.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetSalesSummaryQuery")).
		Return(queries.SalesSummary{
			TotalOrders:  3,
			TotalRevenue: money(t, 84),
			ByStatus: []queries.StatusSummary{
				{Status: order.Delivered, Count: 2, Revenue: money(t, 50)},
				{Status: order.Pending, Count: 1, Revenue: money(t, 34)},
			},
		}, nil)
	logger, buf := newBufferLogger()

	NewSalesSummaryJob(handler, "", logger).Run(context.Background())

	out := buf.String()
	assert.Contains(t, out, `"msg":"Sales summary"`)
	assert.Contains(t, out, `"component":"sales_summary_job"`)
	assert.Contains(t, out, `"total_orders":3`)
	assert.Contains(t, out, `"total_revenue":"84.00"`)
	assert.Contains(t, out, `"Delivered":{"count":2,"revenue":"50.00"}`)
	handler.AssertExpectations(t)
}

func TestSalesSummaryJob_RunLogsFailure(t *testing.T) {
	handler := new(MockSalesSummaryHandler)
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(queries.SalesSummary{}, errors.New("connection reset"))
	logger, buf := newBufferLogger()

	NewSalesSummaryJob(handler, "@every 1m", logger).Run(context.Background())

	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), "connection reset")
}

func TestSalesSummaryJob_StartRejectsBadSchedule(t *testing.T) {
	logger, _ := newBufferLogger()
	job := NewSalesSummaryJob(new(MockSalesSummaryHandler), "every full moon", logger)

	require.Error(t, job.Start())
}

func TestSalesSummaryJob_StartStop(t *testing.T) {
	logger, buf := newBufferLogger()
	job := NewSalesSummaryJob(new(MockSalesSummaryHandler), "@every 1h", logger)

	require.NoError(t, job.Start())
	job.Stop()

	assert.Contains(t, buf.String(), "Sales summary job started")
	assert.Contains(t, buf.String(), "Sales summary job stopped")
}

func TestJobManager_StopsStartedJobsOnFailure(t *testing.T) {
	logger, _ := newBufferLogger()
	first := NewSalesSummaryJob(new(MockSalesSummaryHandler), "@every 1h", logger)
	failing := new(MockJob)
	failing.On("Start").Return(errors.New("boom"))

	jm := NewJobManager(first)
	jm.Add("failing", failing)

	err := jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing job")
	failing.AssertNotCalled(t, "Stop")
	assert.Empty(t, jm.started)
}

func TestJobManager_StopAllReverseOrder(t *testing.T) {
	var stopped []string
	a := new(MockJob)
	a.On("Start").Return(nil)
	a.On("Stop").Run(func(mock.Arguments) { stopped = append(stopped, "a") })
	b := new(MockJob)
	b.On("Start").Return(nil)
	b.On("Stop").Run(func(mock.Arguments) { stopped = append(stopped, "b") })

	jm := &JobManager{}
	jm.Add("a", a)
	jm.Add("b", b)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Equal(t, []string{"b", "a"}, stopped)
}
