// Package pipeline wires the five services of the fabric together
// (spec.md §4.9) and drives ingestion from the three input streams.
// Wiring happens once at construction; after that every call into a
// Connector's Subscribe runs synchronously through the listener chain
// with no channel, goroutine, or lock anywhere (spec.md §5).
package pipeline

import (
	"io"
	"log/slog"

	"treasurysoa/internal/domain"
	"treasurysoa/internal/fracprice"
	"treasurysoa/internal/infra"
	"treasurysoa/internal/service"
)

// Pipeline owns every service/connector/listener in the fabric and is
// the sole entry point ingest code should drive.
type Pipeline struct {
	Pricing        *service.PricingService
	PricingConn    *service.PricingConnector
	MarketData     *service.MarketDataService
	MarketDataConn *service.MarketDataConnector
	AlgoExecution  *service.AlgoExecutionService
	Execution      *service.ExecutionService
	Inquiry        *service.InquiryService
	InquiryConn    *service.InquiryConnector

	logger  *slog.Logger
	metrics *infra.Metrics
}

// New constructs a fully wired Pipeline. idGen drives both the algo
// execution order IDs and the inquiry-adjacent ID needs the fabric may
// grow; it is shared rather than duplicated because the underlying LCG
// is itself the source of uniqueness, and two independent generators
// seeded from the same millisecond clock tick would collide.
func New(cfg *infra.Config, idGen *fracprice.IDGenerator, logger *slog.Logger, metrics *infra.Metrics) *Pipeline {
	pricingSvc := service.NewPricingService()
	marketDataSvc := service.NewMarketDataServiceWithDepth(cfg.MarketData.BookDepth)
	algoExecutionSvc := service.NewAlgoExecutionServiceWithThreshold(idGen, cfg.AlgoExecution.SpreadThreshold)
	executionSvc := service.NewExecutionService()
	inquirySvc := service.NewInquiryService(idGen)

	marketDataSvc.AddListener(service.NewAlgoExecutionToMarketDataListener(algoExecutionSvc))
	algoExecutionSvc.AddListener(loggingAlgoExecutionListener{
		next:    service.NewExecutionToAlgoExecutionListener(executionSvc),
		logger:  logger,
		metrics: metrics,
	})
	inquirySvc.AddListener(inquiryCompletionListener{logger: logger, metrics: metrics})

	pricingConn := service.NewPricingConnector(pricingSvc)
	marketDataConn := service.NewMarketDataConnector(marketDataSvc)
	inquiryConn := service.NewInquiryConnector(inquirySvc)
	pricingConn.OnIngested = metrics.RecordEventIngested
	marketDataConn.OnIngested = metrics.RecordEventIngested
	inquiryConn.OnIngested = metrics.RecordEventIngested

	return &Pipeline{
		Pricing:        pricingSvc,
		PricingConn:    pricingConn,
		MarketData:     marketDataSvc,
		MarketDataConn: marketDataConn,
		AlgoExecution:  algoExecutionSvc,
		Execution:      executionSvc,
		Inquiry:        inquirySvc,
		InquiryConn:    inquiryConn,
		logger:         logger,
		metrics:        metrics,
	}
}

// IngestPrices drains r as a stream of "productId,bid,offer" records.
func (p *Pipeline) IngestPrices(r io.Reader) error {
	return p.PricingConn.SubscribeStream(r, p.onParseError)
}

// IngestMarketData drains r as a stream of
// "productId,price,quantity,side" records.
func (p *Pipeline) IngestMarketData(r io.Reader) error {
	return p.MarketDataConn.SubscribeStream(r, p.onParseError)
}

// IngestInquiries drains r as a stream of
// "inquiryId,productId,side,quantity,price,state" records.
func (p *Pipeline) IngestInquiries(r io.Reader) error {
	return p.InquiryConn.SubscribeStream(r, p.onParseError)
}

func (p *Pipeline) onParseError(err error) {
	p.metrics.RecordParseErrorSkipped()
	p.logger.Warn("skipped malformed record", "error", err)
}

// loggingAlgoExecutionListener wraps ExecutionToAlgoExecutionListener to
// log and count every algo execution as it crosses into ExecutionService.
type loggingAlgoExecutionListener struct {
	next    *service.ExecutionToAlgoExecutionListener
	logger  *slog.Logger
	metrics *infra.Metrics
}

func (l loggingAlgoExecutionListener) ProcessAdd(data domain.AlgoExecution) {
	l.metrics.RecordAlgoExecutionEmitted()
	l.logger.Info("algo execution emitted",
		"order_id", data.Order.OrderID,
		"product_id", data.Order.Product.ProductID(),
		"side", data.Order.Side.String(),
		"venue", domain.RouteMarket(data.Order).String(),
	)
	l.next.ProcessAdd(data)
}

func (l loggingAlgoExecutionListener) ProcessRemove(domain.AlgoExecution) {}
func (l loggingAlgoExecutionListener) ProcessUpdate(domain.AlgoExecution) {}

// inquiryCompletionListener counts and logs inquiries as they reach DONE.
type inquiryCompletionListener struct {
	logger  *slog.Logger
	metrics *infra.Metrics
}

func (l inquiryCompletionListener) ProcessAdd(data domain.Inquiry) {
	if data.State != domain.Done {
		return
	}
	l.metrics.RecordInquiryCompleted()
	l.logger.Info("inquiry completed", "inquiry_id", data.InquiryID, "product_id", data.Product.ProductID())
}

func (l inquiryCompletionListener) ProcessRemove(domain.Inquiry) {}
func (l inquiryCompletionListener) ProcessUpdate(domain.Inquiry) {}
