package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enchanted-stage-quote/models"
	"enchanted-stage-quote/store"
)

func seededStore() *store.QuoteStore {
	s := store.New(store.NoopPersister{})
	s.AddItem(models.DecorItem{ID: "sofa-cream-tufted", Name: "Cream Tufted Sofa", Price: 300, MaxQuantity: 1})
	s.AddItem(models.DecorItem{ID: "lighting-pillar-candles", Name: "Pillar Candle Stands", Price: 80, MaxQuantity: 5})
	s.AddItem(models.DecorItem{ID: "lighting-pillar-candles", Name: "Pillar Candle Stands", Price: 80, MaxQuantity: 5})
	return s
}

func TestBuildSummary(t *testing.T) {
	qs := NewQuoteService(seededStore(), "http://localhost:8080")

	summary := qs.BuildSummary()

	require.Len(t, summary.Lines, 2)
	// Lines are sorted by item id for a stable summary.
	assert.Equal(t, "lighting-pillar-candles", summary.Lines[0].ItemID)
	assert.Equal(t, "sofa-cream-tufted", summary.Lines[1].ItemID)

	assert.Equal(t, 2, summary.Lines[0].Quantity)
	assert.Equal(t, int64(160), summary.Lines[0].LineTotal)
	assert.Equal(t, "$160", summary.Lines[0].LineTotalFormatted)

	assert.Equal(t, 3, summary.TotalItemCount)
	assert.Equal(t, int64(460), summary.Subtotal)
	assert.Equal(t, "$460", summary.SubtotalFormatted)
}

func TestBuildSummaryEmptyStore(t *testing.T) {
	qs := NewQuoteService(store.New(store.NoopPersister{}), "")

	summary := qs.BuildSummary()

	assert.Empty(t, summary.Lines)
	assert.Equal(t, 0, summary.TotalItemCount)
	assert.Equal(t, "$0", summary.SubtotalFormatted)
}

func TestSubmitMergesCustomerInfoAndAcknowledges(t *testing.T) {
	s := seededStore()
	qs := NewQuoteService(s, "")

	name := "Aisha"
	venue := "The Grand Hall"
	resp := qs.Submit(context.Background(), models.SubmitQuoteRequest{
		CustomerInfo: models.CustomerInfoUpdate{Name: &name, VenueName: &venue},
	})

	assert.True(t, strings.HasPrefix(resp.ConfirmationCode, "AK-"))
	assert.Equal(t, 3, resp.ItemCount)
	assert.Equal(t, int64(460), resp.Subtotal)
	assert.NotEmpty(t, resp.Message)

	info := s.CustomerInfo()
	assert.Equal(t, "Aisha", info.Name)
	assert.Equal(t, "The Grand Hall", info.VenueName)
}
