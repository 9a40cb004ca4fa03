package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"treasurysoa/internal/fracprice"
	"treasurysoa/internal/infra"
	"treasurysoa/internal/pipeline"
)

var (
	pricesFlag          string
	marketDataFlag      string
	inquiriesFlag       string
	bookDepthFlag       int
	spreadThresholdFlag string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Ingest the configured price, market data, and inquiry streams",
	Long: `run opens the three files named under streams: in the config
file, feeds each through the fabric in turn, and logs the resulting
metrics snapshot at info level. Flags take precedence over the config file.`,
	RunE: runFabric,
}

func init() {
	runCmd.Flags().StringVar(&pricesFlag, "prices", "", "override streams.prices")
	runCmd.Flags().StringVar(&marketDataFlag, "marketdata", "", "override streams.market_data")
	runCmd.Flags().StringVar(&inquiriesFlag, "inquiries", "", "override streams.inquiries")
	runCmd.Flags().IntVar(&bookDepthFlag, "depth", 0, "override market_data.book_depth")
	runCmd.Flags().StringVar(&spreadThresholdFlag, "spread-threshold", "", "override algo_execution.spread_threshold")
}

func runFabric(cmd *cobra.Command, args []string) error {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := infra.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyFlagOverrides(cfg); err != nil {
		return fmt.Errorf("apply flag overrides: %w", err)
	}
	logger := infra.NewLogger(cfg)

	metrics := &infra.Metrics{}
	idGen := fracprice.NewIDGenerator()
	p := pipeline.New(cfg, idGen, logger, metrics)

	if err := ingestFile(cfg.Streams.Prices, p.IngestPrices); err != nil {
		return fmt.Errorf("ingest prices: %w", err)
	}
	if err := ingestFile(cfg.Streams.MarketData, p.IngestMarketData); err != nil {
		return fmt.Errorf("ingest market data: %w", err)
	}
	if err := ingestFile(cfg.Streams.Inquiries, p.IngestInquiries); err != nil {
		return fmt.Errorf("ingest inquiries: %w", err)
	}

	snap := metrics.Snapshot()
	logger.Info("run complete",
		"events_ingested", snap.EventsIngested,
		"algo_executions_emitted", snap.AlgoExecutionsEmitted,
		"inquiries_completed", snap.InquiriesCompleted,
		"parse_errors_skipped", snap.ParseErrorsSkipped,
	)
	return nil
}

// applyFlagOverrides layers run's own flags on top of the loaded config,
// re-validating afterward since a flag can introduce the same invalid
// states Validate already guards against.
func applyFlagOverrides(cfg *infra.Config) error {
	if pricesFlag != "" {
		cfg.Streams.Prices = pricesFlag
	}
	if marketDataFlag != "" {
		cfg.Streams.MarketData = marketDataFlag
	}
	if inquiriesFlag != "" {
		cfg.Streams.Inquiries = inquiriesFlag
	}
	if bookDepthFlag != 0 {
		cfg.MarketData.BookDepth = bookDepthFlag
	}
	if spreadThresholdFlag != "" {
		threshold, err := decimal.NewFromString(spreadThresholdFlag)
		if err != nil {
			return fmt.Errorf("parse spread threshold: %w", err)
		}
		cfg.AlgoExecution.SpreadThreshold = threshold
	}
	return cfg.Validate()
}

func ingestFile(path string, ingest func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ingest(f)
}
