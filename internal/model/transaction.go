package model

// TransactionRecord is a normalized transaction from either input shape
type TransactionRecord struct {
	ID       string            `json:"id,omitempty"`
	Date     string            `json:"date,omitempty"`
	Amount   *float64          `json:"amount"`
	Currency string            `json:"currency,omitempty"`
	Source   string            `json:"source,omitempty"`
	Raw      string            `json:"raw"`
	Fields   map[string]string `json:"fields,omitempty"` // All key=value pairs as parsed
}

// Trigger returns the identifier used to reference this transaction in a signal
func (t TransactionRecord) Trigger() string {
	if t.ID != "" {
		return t.ID
	}
	if id := t.Fields["transaction_id"]; id != "" {
		return id
	}
	return t.Raw
}

// SignalKind classifies a cross-sell signal
type SignalKind string

const (
	SignalLiquidityEvent SignalKind = "LIQUIDITY_EVENT" // Large inflow from an investment event
	SignalFXExposure     SignalKind = "FX_EXPOSURE"     // Non-USD activity
)

// SignalConfidence grades a cross-sell signal
type SignalConfidence string

const (
	SignalHigh   SignalConfidence = "HIGH"
	SignalMedium SignalConfidence = "MEDIUM"
	SignalLow    SignalConfidence = "LOW"
)

// Signal is a cross-sell opportunity detected from a transaction
type Signal struct {
	Signal             SignalKind       `json:"signal"`
	RecommendedProduct string           `json:"recommended_product"`
	TriggerTransaction string           `json:"trigger_transaction"`
	Confidence         SignalConfidence `json:"confidence"`
}
