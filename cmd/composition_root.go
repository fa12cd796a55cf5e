package cmd

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	adapterhttp "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/backend"
	"orderdesk/internal/core/application/querycache"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/jobs"
	"orderdesk/internal/pkg/metrics"
)

const defaultSweepSchedule = "@every 5m"

// CompositionRoot wires the backend store client, the query cache and the
// use case handlers together.
type CompositionRoot struct {
	logger *slog.Logger
	store  ports.OrderStore
	cache  *querycache.Cache

	sweepSchedule string
}

// NewCompositionRoot builds the object graph from config. Metrics register on
// the default prometheus registry.
func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	store, err := backend.NewClient(
		config.BackendBaseURL,
		ports.StaticCredential(config.BackendAccessToken),
		logger,
		metrics.NewBackendMetrics(prometheus.DefaultRegisterer),
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	cache := querycache.New(store, logger, metrics.NewCacheMetrics(prometheus.DefaultRegisterer))

	sweepSchedule := config.DetailSweepSchedule
	if sweepSchedule == "" {
		sweepSchedule = defaultSweepSchedule
	}

	return CompositionRoot{
		logger:        logger,
		store:         store,
		cache:         cache,
		sweepSchedule: sweepSchedule,
	}, nil
}

func (c *CompositionRoot) CreateAdvanceDeliveryStatusCommandHandler() commands.AdvanceDeliveryStatusCommandHandler {
	return commands.NewAdvanceDeliveryStatusCommandHandler(c.store, c.store, c.cache)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.store, c.store, c.cache)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.store, c.cache)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.cache)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.cache)
}

// CreateHTTPServer builds the admin API server with all handlers wired.
func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateAdvanceDeliveryStatusCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderDetailQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.cache, c.sweepSchedule, c.logger)
}
