package signals

import (
	"math"
	"regexp"
	"strings"

	"github.com/ppiankov/dossier/internal/model"
)

// Recommended products per signal
const (
	ProductLiquidity = "Liquidity Management / Sweep Account"
	ProductFXForward = "FX Forward Contracts"
)

var liquidityRe = regexp.MustCompile(`(?i)\b(?:investments?|vc|ventures?|private[\s-]+equity|pe)\b`)

// Detector finds cross-sell signals in normalized transactions
type Detector struct {
	liquidityMin float64
}

// NewDetector creates a detector; liquidity events need |amount| above liquidityMin
func NewDetector(liquidityMin float64) *Detector {
	return &Detector{liquidityMin: liquidityMin}
}

// Detect returns signals in transaction order. One transaction may emit both kinds.
func (d *Detector) Detect(transactions []model.TransactionRecord) []model.Signal {
	var out []model.Signal
	for _, tx := range transactions {
		if tx.Amount != nil && math.Abs(*tx.Amount) > d.liquidityMin && liquidityRe.MatchString(tx.Source) {
			out = append(out, model.Signal{
				Signal:             model.SignalLiquidityEvent,
				RecommendedProduct: ProductLiquidity,
				TriggerTransaction: tx.Trigger(),
				Confidence:         model.SignalHigh,
			})
		}

		currency := strings.ToUpper(strings.TrimSpace(tx.Currency))
		if currency != "" && currency != "USD" {
			out = append(out, model.Signal{
				Signal:             model.SignalFXExposure,
				RecommendedProduct: ProductFXForward,
				TriggerTransaction: tx.Trigger(),
				Confidence:         model.SignalHigh,
			})
		}
	}
	return out
}
