// Package insights provides the assistant features the dashboard
// surfaces: chat replies, generated report payloads and receipt
// extraction. The demo implementation returns canned results; the
// Generator interface exists so a real model can be plugged in without
// touching the store or the HTTP layer.
package insights

import (
	"context"
	"sync/atomic"
	"time"
)

// Generator produces assistant content for the dashboard.
type Generator interface {
	ChatReply(ctx context.Context, message string) (string, error)
	ReportData(ctx context.Context, reportType, period string) (map[string]any, error)
	ExtractReceipt(ctx context.Context, filename string) (*ReceiptExtraction, error)
}

// ReceiptExtraction is the structured result of processing an uploaded receipt.
type ReceiptExtraction struct {
	Filename      string         `json:"filename"`
	Vendor        string         `json:"vendor"`
	Amount        string         `json:"amount"`
	Category      string         `json:"category"`
	ExtractedData map[string]any `json:"extractedData"`
}

type stubGenerator struct {
	now  func() time.Time
	next atomic.Int64
}

// NewStubGenerator returns the canned demo generator.
func NewStubGenerator() Generator {
	return &stubGenerator{now: time.Now}
}

var chatReplies = []string{
	"I can help you with that! Let me analyze your financial data.",
	"Based on your recent transactions, I recommend reviewing your expense categories.",
	"Your cash flow looks healthy. Would you like me to generate a detailed report?",
	"I notice some unusual patterns in your data. Let me flag those for review.",
}

// ChatReply rotates through the canned responses regardless of input.
// One generator instance serves every request goroutine, so the cursor
// advances atomically.
func (g *stubGenerator) ChatReply(_ context.Context, _ string) (string, error) {
	n := g.next.Add(1) - 1
	return chatReplies[int(n)%len(chatReplies)], nil
}

func (g *stubGenerator) ReportData(_ context.Context, reportType, period string) (map[string]any, error) {
	return map[string]any{
		"type":        reportType,
		"period":      period,
		"generatedAt": g.now().UTC().Format(time.RFC3339),
		"summary": map[string]any{
			"totalRevenue":  "110000",
			"totalExpenses": "78000",
			"netProfit":     "32000",
			"profitMargin":  "29.1",
		},
	}, nil
}

func (g *stubGenerator) ExtractReceipt(_ context.Context, filename string) (*ReceiptExtraction, error) {
	if filename == "" {
		filename = "receipt_123.pdf"
	}
	return &ReceiptExtraction{
		Filename: filename,
		Vendor:   "Office Depot",
		Amount:   "127.50",
		Category: "Office Supplies",
		ExtractedData: map[string]any{
			"date":  "2024-01-15",
			"items": []string{"Paper", "Pens", "Folders"},
		},
	}, nil
}
