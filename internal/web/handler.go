package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"IntradayScope/internal/collector"
	"IntradayScope/internal/model"
	"IntradayScope/internal/notifier"
	"IntradayScope/internal/strategy"
)

// Analyzer runs the engine for one symbol.
type Analyzer interface {
	Analyze(ctx context.Context, symbol string) (*model.Analysis, error)
}

// Scanner re-runs the universe scan on demand.
type Scanner interface {
	RunScanNow() []model.ScanResult
}

// BoardReader exposes the latest scan.
type BoardReader interface {
	Latest() ([]model.ScanResult, time.Time)
}

// Handler serves the page and the JSON API.
type Handler struct {
	analyzer Analyzer
	scanner  Scanner
	board    BoardReader
	symbols  []string
}

// NewHandler creates a Handler over the given symbol universe.
func NewHandler(analyzer Analyzer, scanner Scanner, board BoardReader, symbols []string) *Handler {
	return &Handler{analyzer: analyzer, scanner: scanner, board: board, symbols: symbols}
}

func (h *Handler) known(symbol string) bool {
	for _, s := range h.symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

// statusFor maps an analysis error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errUnknownSymbol):
		return http.StatusNotFound
	case errors.Is(err, strategy.ErrMalformedSeries):
		return http.StatusUnprocessableEntity
	case errors.Is(err, collector.ErrProviderUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Symbols returns the configured universe.
//
// GET /api/symbols
func (h *Handler) Symbols(c *gin.Context) {
	c.JSON(http.StatusOK, SymbolsResponse{Symbols: h.symbols})
}

// Analysis runs the engine for one symbol and returns the result as JSON.
// Unavailable indicators are null.
//
// GET /api/analysis/:symbol
func (h *Handler) Analysis(c *gin.Context) {
	a, err := h.analyze(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

// Scan returns the latest scan, or runs a new one with ?refresh=1 or when
// nothing has been scanned yet.
//
// GET /api/scan
func (h *Handler) Scan(c *gin.Context) {
	results, at := h.board.Latest()
	if c.Query("refresh") == "1" || at.IsZero() {
		h.scanner.RunScanNow()
		results, at = h.board.Latest()
	}
	c.JSON(http.StatusOK, toScanResponse(results, at))
}

// Health reports liveness.
//
// GET /healthz
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type pageData struct {
	Symbols  []string
	Selected string
	Analysis *model.Analysis
	Error    string
	RSI      string
	MACD     string
	Signal   string
	Chart    chart
}

// Page renders the single-page UI. The selected symbol is analyzed when the
// form is submitted with ?symbol=.
//
// GET /
func (h *Handler) Page(c *gin.Context) {
	data := pageData{Symbols: h.symbols}
	if len(h.symbols) > 0 {
		data.Selected = h.symbols[0]
	}

	status := http.StatusOK
	if symbol, ok := c.GetQuery("symbol"); ok {
		data.Selected = symbol
		a, err := h.analyze(c.Request.Context(), symbol)
		if err != nil {
			status = statusFor(err)
			data.Error = err.Error()
		} else {
			data.Analysis = a
			data.RSI = notifier.FormatValue(a.Snapshot.RSI)
			data.MACD = notifier.FormatValue(a.Snapshot.MACD)
			data.Signal = notifier.FormatValue(a.Snapshot.Signal)
			data.Chart = buildChart(a.Closes, chartWidth, chartHeight)
		}
	}
	c.HTML(status, "index.html", data)
}

var errUnknownSymbol = errors.New("unknown symbol")

func (h *Handler) analyze(ctx context.Context, symbol string) (*model.Analysis, error) {
	if !h.known(symbol) {
		return nil, fmt.Errorf("%w: %s", errUnknownSymbol, symbol)
	}
	return h.analyzer.Analyze(ctx, symbol)
}
