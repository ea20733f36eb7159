package extract

import "testing"

func TestTransactionParser_KeyValue(t *testing.T) {
	text := `id=TX1, amount=1500000, currency=USD, source=VC investment round
amount=500, currency=eur, source=Supplier payment

note without fields
id=TX3, currency=GBP, source=missing amount
Transaction_Amount=$2000, Currency=CAD, Description=Wire`

	got := NewTransactionParser().Parse(text)
	if len(got) != 3 {
		t.Fatalf("Expected 3 transactions, got %d: %+v", len(got), got)
	}

	if got[0].ID != "TX1" || got[0].Currency != "USD" || got[0].Source != "VC investment round" {
		t.Errorf("Unexpected first record: %+v", got[0])
	}
	assertFloat(t, "amount", got[0].Amount, 1500000)

	if got[1].Currency != "EUR" {
		t.Errorf("Expected currency upper-cased to EUR, got %s", got[1].Currency)
	}
	if got[1].ID != "" {
		t.Errorf("Expected empty id, got %s", got[1].ID)
	}

	assertFloat(t, "transaction_amount", got[2].Amount, 2000)
	if got[2].Source != "Wire" {
		t.Errorf("Expected description as source, got %s", got[2].Source)
	}
	if got[2].Currency != "CAD" {
		t.Errorf("Expected CAD, got %s", got[2].Currency)
	}
}

func TestTransactionParser_BankStatementLines(t *testing.T) {
	text := `Date Description Ref Amount Balance
2024-03-01 ACH CREDIT NORTHSTAR VENTURES 123456-789$1,250,000.00$1,900,000.00
2024-03-02 CARD PURCHASE OFFICE DEPOT 654321-1$120.50
garbage line`

	got := NewTransactionParser().Parse(text)
	if len(got) != 2 {
		t.Fatalf("Expected 2 transactions, got %d: %+v", len(got), got)
	}

	first := got[0]
	if first.ID != "123456-789" || first.Fields["transaction_id"] != "123456-789" {
		t.Errorf("Expected ref as id and transaction_id, got %+v", first)
	}
	if first.Date != "2024-03-01" {
		t.Errorf("Expected date 2024-03-01, got %s", first.Date)
	}
	if first.Source != "ACH CREDIT NORTHSTAR VENTURES" {
		t.Errorf("Unexpected source: %s", first.Source)
	}
	if first.Currency != "USD" {
		t.Errorf("Expected USD default, got %s", first.Currency)
	}
	assertFloat(t, "amount", first.Amount, 1250000)
	if first.Fields["balance"] != "1,900,000.00" {
		t.Errorf("Expected balance field, got %q", first.Fields["balance"])
	}

	assertFloat(t, "amount", got[1].Amount, 120.5)
}

func TestTransactionParser_KeyValueWinsOverBankLines(t *testing.T) {
	text := "2024-03-01 WIRE 123456-1$10.00\namount=5, currency=USD"

	got := NewTransactionParser().Parse(text)
	if len(got) != 1 || got[0].Raw != "amount=5, currency=USD" {
		t.Errorf("Expected only the key=value record, got %+v", got)
	}
}

func TestTransactionParser_Empty(t *testing.T) {
	if got := NewTransactionParser().Parse(""); len(got) != 0 {
		t.Errorf("Expected no transactions, got %d", len(got))
	}
}
