package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/dossier/internal/model"
)

// YYYY-MM-DD <description> <ref>$<amount>[$<balance>]
var bankLineRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s+(.+?)\s+(\d{6}-\d+)\$([\d,]+(?:\.\d+)?)(?:\$([\d,]+(?:\.\d+)?))?\s*$`)

// TransactionParser normalizes transaction logs into records
type TransactionParser struct{}

// NewTransactionParser creates a transaction parser
func NewTransactionParser() *TransactionParser {
	return &TransactionParser{}
}

// Parse tries key=value lines first and falls back to bank statement lines.
// Lines matching neither shape are dropped.
func (p *TransactionParser) Parse(text string) []model.TransactionRecord {
	if records := p.parseKeyValue(text); len(records) > 0 {
		return records
	}
	return p.parseBankLines(text)
}

// parseKeyValue handles lines such as "id=TX1, amount=1200000, currency=EUR, source=VC Funding"
func (p *TransactionParser) parseKeyValue(text string) []model.TransactionRecord {
	var records []model.TransactionRecord
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := make(map[string]string)
		for _, segment := range strings.Split(line, ",") {
			key, value, ok := strings.Cut(segment, "=")
			if !ok {
				continue
			}
			key = strings.ToLower(strings.TrimSpace(key))
			if key == "" {
				continue
			}
			fields[key] = strings.TrimSpace(value)
		}

		rawAmount, ok := fields["amount"]
		if !ok {
			rawAmount, ok = fields["transaction_amount"]
		}
		if !ok {
			continue
		}

		record := model.TransactionRecord{
			ID:       fields["id"],
			Date:     fields["date"],
			Currency: strings.ToUpper(fields["currency"]),
			Source:   firstNonEmpty(fields["source"], fields["description"], fields["counterparty"]),
			Raw:      line,
			Fields:   fields,
		}
		if v, ok := ParseNumber(rawAmount); ok {
			record.Amount = model.Float(v)
		}
		records = append(records, record)
	}
	return records
}

// parseBankLines handles fixed-format statement exports
func (p *TransactionParser) parseBankLines(text string) []model.TransactionRecord {
	var records []model.TransactionRecord
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		m := bankLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		fields := map[string]string{
			"date":           m[1],
			"description":    m[2],
			"transaction_id": m[3],
			"amount":         m[4],
		}
		if m[5] != "" {
			fields["balance"] = m[5]
		}

		record := model.TransactionRecord{
			ID:       m[3],
			Date:     m[1],
			Currency: "USD",
			Source:   strings.TrimSpace(m[2]),
			Raw:      line,
			Fields:   fields,
		}
		if v, ok := ParseNumber(m[4]); ok {
			record.Amount = model.Float(v)
		}
		records = append(records, record)
	}
	return records
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
