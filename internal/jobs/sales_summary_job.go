package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultSalesSummarySchedule runs the report at the top of every hour.
const DefaultSalesSummarySchedule = "@hourly"

const salesSummaryTimeout = 30 * time.Second

// SalesSummaryHandler computes the sales summary. queries.GetSalesSummaryQueryHandler satisfies it.
type SalesSummaryHandler interface {
	Handle(ctx context.Context, query queries.GetSalesSummaryQuery) (queries.SalesSummary, error)
}

// SalesSummaryJob periodically logs order counts and revenue per status.
// It only reads; nothing it computes is stored.
type SalesSummaryJob struct {
	handler  SalesSummaryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSalesSummaryJob creates the job. An empty schedule falls back to DefaultSalesSummarySchedule.
func NewSalesSummaryJob(handler SalesSummaryHandler, schedule string, logger *slog.Logger) *SalesSummaryJob {
	if schedule == "" {
		schedule = DefaultSalesSummarySchedule
	}
	return &SalesSummaryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "sales_summary_job"),
	}
}

// Start registers the report on the configured schedule and starts the scheduler.
func (j *SalesSummaryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), salesSummaryTimeout)
		defer cancel()
		j.Run(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sales summary job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *SalesSummaryJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, queries.NewGetSalesSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Sales summary job failed", "error", err)
		return
	}

	attrs := make([]any, 0, len(summary.ByStatus)+2)
	attrs = append(attrs,
		slog.Int("total_orders", summary.TotalOrders),
		slog.String("total_revenue", summary.TotalRevenue.String()),
	)
	for _, s := range summary.ByStatus {
		attrs = append(attrs, slog.Group(s.Status.String(),
			slog.Int("count", s.Count),
			slog.String("revenue", s.Revenue.String()),
		))
	}
	j.logger.InfoContext(ctx, "Sales summary", attrs...)
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *SalesSummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Sales summary job stopped")
}
