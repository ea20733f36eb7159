package signals

import (
	"testing"

	"github.com/ppiankov/dossier/internal/model"
)

func TestDetector_Detect(t *testing.T) {
	tests := []struct {
		name string
		tx   model.TransactionRecord
		want []model.SignalKind
	}{
		{
			"vc round",
			model.TransactionRecord{ID: "TX1", Amount: model.Float(1500000), Currency: "USD", Source: "VC investment round"},
			[]model.SignalKind{model.SignalLiquidityEvent},
		},
		{
			"small eur payment",
			model.TransactionRecord{Amount: model.Float(500), Currency: "EUR", Raw: "amount=500, currency=EUR"},
			[]model.SignalKind{model.SignalFXExposure},
		},
		{
			"large non-usd private equity",
			model.TransactionRecord{Amount: model.Float(-2000000), Currency: "gbp", Source: "Private Equity distribution"},
			[]model.SignalKind{model.SignalLiquidityEvent, model.SignalFXExposure},
		},
		{
			"exactly threshold",
			model.TransactionRecord{Amount: model.Float(1000000), Currency: "USD", Source: "Venture capital"},
			nil,
		},
		{
			"large but not investment",
			model.TransactionRecord{Amount: model.Float(5000000), Currency: "USD", Source: "Customer payment"},
			nil,
		},
		{
			"plural investments",
			model.TransactionRecord{Amount: model.Float(2500000), Currency: "USD", Source: "Series B investments from Acme Ventures"},
			[]model.SignalKind{model.SignalLiquidityEvent},
		},
		{
			"plural ventures",
			model.TransactionRecord{Amount: model.Float(2500000), Currency: "USD", Source: "Northwind Ventures capital call"},
			[]model.SignalKind{model.SignalLiquidityEvent},
		},
		{
			"hyphenated private equity",
			model.TransactionRecord{Amount: model.Float(2500000), Currency: "USD", Source: "private-equity recapitalization"},
			[]model.SignalKind{model.SignalLiquidityEvent},
		},
		{
			"vc inside a word",
			model.TransactionRecord{Amount: model.Float(2500000), Currency: "USD", Source: "HVAC maintenance contract"},
			nil,
		},
		{
			"word boundary",
			model.TransactionRecord{Amount: model.Float(5000000), Currency: "USD", Source: "Pepsico open account"},
			nil,
		},
		{
			"no currency",
			model.TransactionRecord{Amount: model.Float(10), Source: "misc"},
			nil,
		},
		{
			"nil amount",
			model.TransactionRecord{Currency: "USD", Source: "PE fund"},
			nil,
		},
	}

	d := NewDetector(1000000)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Detect([]model.TransactionRecord{tt.tx})
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d signals, got %d: %+v", len(tt.want), len(got), got)
			}
			for i, kind := range tt.want {
				if got[i].Signal != kind {
					t.Errorf("Signal %d: expected %s, got %s", i, kind, got[i].Signal)
				}
				if got[i].Confidence != model.SignalHigh {
					t.Errorf("Expected HIGH confidence, got %s", got[i].Confidence)
				}
			}
		})
	}
}

func TestDetector_ProductsAndTriggers(t *testing.T) {
	txs := []model.TransactionRecord{
		{ID: "TX1", Amount: model.Float(1500000), Currency: "USD", Source: "VC investment round"},
		{Fields: map[string]string{"transaction_id": "T2"}, Amount: model.Float(500), Currency: "EUR"},
		{Amount: model.Float(700), Currency: "EUR", Raw: "amount=700, currency=EUR"},
		{Amount: model.Float(700), Currency: "EUR", Raw: "amount=700, currency=EUR"},
	}

	got := NewDetector(1000000).Detect(txs)
	if len(got) != 4 {
		t.Fatalf("Expected 4 signals (no dedupe), got %d", len(got))
	}
	if got[0].RecommendedProduct != ProductLiquidity || got[0].TriggerTransaction != "TX1" {
		t.Errorf("Unexpected liquidity signal: %+v", got[0])
	}
	if got[1].RecommendedProduct != ProductFXForward || got[1].TriggerTransaction != "T2" {
		t.Errorf("Unexpected FX signal: %+v", got[1])
	}
	if got[2].TriggerTransaction != "amount=700, currency=EUR" {
		t.Errorf("Expected raw line as trigger, got %s", got[2].TriggerTransaction)
	}
}
