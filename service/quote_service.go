package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"enchanted-stage-quote/models"
	"enchanted-stage-quote/store"
	"enchanted-stage-quote/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// QuoteService builds quote summaries, renders the printable quote, and
// handles submission
type QuoteService struct {
	store   *store.QuoteStore
	baseURL string // Base URL for the render endpoint (e.g., "http://localhost:8080")
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(quoteStore *store.QuoteStore, baseURL string) *QuoteService {
	return &QuoteService{
		store:   quoteStore,
		baseURL: baseURL,
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// BuildSummary assembles the presentation-facing view of the current quote.
// Lines are sorted by item id so the summary is stable across reads.
func (s *QuoteService) BuildSummary() models.QuoteSummary {
	items := s.store.SelectedItemsArray()
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	lines := make([]models.QuoteLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.QuoteLine{
			ItemID:             item.ID,
			Name:               item.Name,
			Quantity:           item.Quantity,
			UnitPrice:          item.Price,
			LineTotal:          item.LineTotal(),
			UnitPriceFormatted: utils.FormatUSD(item.Price),
			LineTotalFormatted: utils.FormatUSD(item.LineTotal()),
		})
	}

	subtotal := s.store.Subtotal()
	return models.QuoteSummary{
		Lines:             lines,
		TotalItemCount:    s.store.TotalItemCount(),
		Subtotal:          subtotal,
		SubtotalFormatted: utils.FormatUSD(subtotal),
		CustomerInfo:      s.store.CustomerInfo(),
	}
}

// Submit records the submitted customer info and returns a human-facing
// acknowledgment. There is no downstream wire format: the acknowledgment
// echoes the accepted selection totals.
func (s *QuoteService) Submit(ctx context.Context, req models.SubmitQuoteRequest) models.SubmitQuoteResponse {
	s.store.SetCustomerInfo(req.CustomerInfo)

	subtotal := s.store.Subtotal()
	confirmation := fmt.Sprintf("AK-%s", time.Now().Format("20060102-150405"))

	log.Printf("✅ Quote submitted: confirmation=%s items=%d subtotal=%s",
		confirmation, s.store.TotalItemCount(), utils.FormatUSD(subtotal))

	return models.SubmitQuoteResponse{
		ConfirmationCode:  confirmation,
		ItemCount:         s.store.TotalItemCount(),
		Subtotal:          subtotal,
		SubtotalFormatted: utils.FormatUSD(subtotal),
		Message:           "Thank you! Your quote request has been received.",
	}
}

// RenderQuoteHTML renders the printable quote HTML template
func (s *QuoteService) RenderQuoteHTML() (string, error) {
	summary := s.BuildSummary()

	templateData := struct {
		Summary     models.QuoteSummary
		GeneratedAt string
	}{
		Summary:     summary,
		GeneratedAt: time.Now().Format("January 2, 2006"),
	}

	templatePath := filepath.Join("templates", "quote.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GeneratePDF generates a PDF of the current quote using chromedp against
// the render endpoint
func (s *QuoteService) GeneratePDF(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/quote/render", s.baseURL)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(time.Second), // Wait for fonts/layout
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // 210mm in inches
				WithPaperHeight(11.69). // 297mm in inches
				WithMarginTop(0).       // No margins, padding is in CSS
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
