package rank

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/yacchi/textrank/internal/rank"

var (
	instrumentsOnce sync.Once
	iterationHist   metric.Int64Histogram
	nodeHist        metric.Int64Histogram
)

// initInstruments はグローバル MeterProvider から計測器を作成する
// プロバイダ未設定時は no-op になる
func initInstruments() {
	meter := otel.Meter(instrumentationName)
	var err error
	iterationHist, err = meter.Int64Histogram(
		"textrank.pagerank.iterations",
		metric.WithDescription("PageRank iterations per ranking run"),
	)
	if err != nil {
		otel.Handle(err)
	}
	nodeHist, err = meter.Int64Histogram(
		"textrank.graph.nodes",
		metric.WithDescription("Graph nodes per ranking run"),
	)
	if err != nil {
		otel.Handle(err)
	}
}

func recordRun(ctx context.Context, g *Graph, res *Result) {
	instrumentsOnce.Do(initInstruments)
	attrs := metric.WithAttributes(attribute.Bool("converged", res.Converged))
	if iterationHist != nil {
		iterationHist.Record(ctx, int64(res.Iterations), attrs)
	}
	if nodeHist != nil {
		nodeHist.Record(ctx, int64(g.Len()), attrs)
	}
}
