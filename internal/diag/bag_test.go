package diag

import "testing"

func TestBagReporterCollects(t *testing.T) {
	bag := NewBag(4)
	r := BagReporter{Bag: bag}
	ReportInfo(r, LitHexFallback, "1a", "read as hexadecimal").Emit()
	ReportWarning(r, WidSubstituted, "4", "width widened").WithNote("inferred 8").Emit()

	if bag.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", bag.Len())
	}
	items := bag.Items()
	if items[0].Code != LitHexFallback || items[0].Subject != "1a" {
		t.Fatalf("first item = %+v", items[0])
	}
	if len(items[1].Notes) != 1 || items[1].Notes[0].Msg != "inferred 8" {
		t.Fatalf("second item notes = %+v", items[1].Notes)
	}
	if !bag.Has(WidSubstituted) || bag.Has(CodNotUTF8) {
		t.Fatalf("Has() mismatch")
	}
}

func TestBagRespectsLimit(t *testing.T) {
	bag := NewBag(1)
	if !bag.Add(New(SevInfo, LitHexFallback, "", "one")) {
		t.Fatalf("first Add should succeed")
	}
	if bag.Add(New(SevInfo, LitHexFallback, "", "two")) {
		t.Fatalf("second Add should be rejected")
	}
	if bag.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", bag.Len())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(4)
	b := ReportInfo(BagReporter{Bag: bag}, CodNotUTF8, "", "not text")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", bag.Len())
	}
	var nilBuilder *ReportBuilder
	nilBuilder.WithNote("ignored").Emit()
}

func TestFilterReporter(t *testing.T) {
	bag := NewBag(4)
	r := FilterReporter{Next: BagReporter{Bag: bag}, Min: SevWarning}
	r.Report(SevInfo, LitHexFallback, "1a", "dropped", nil)
	r.Report(SevWarning, WidSubstituted, "2", "kept", nil)
	if bag.Len() != 1 || bag.Items()[0].Code != WidSubstituted {
		t.Fatalf("FilterReporter kept %+v", bag.Items())
	}
	silent := FilterReporter{Next: BagReporter{Bag: bag}, Min: SevError}
	silent.Report(SevWarning, WidSubstituted, "4", "dropped", nil)
	if bag.Len() != 1 {
		t.Fatalf("SevError floor let a warning through: %+v", bag.Items())
	}
	NopReporter{}.Report(SevError, UnknownCode, "", "", nil)
}

func TestCodeString(t *testing.T) {
	cases := map[Code]string{
		LitHexFallback: "LIT1001",
		WidSubstituted: "WID2001",
		CodNotUTF8:     "COD3001",
		UnknownCode:    "E0000",
	}
	for code, id := range cases {
		if code.ID() != id {
			t.Fatalf("%d.ID() = %q, want %q", uint16(code), code.ID(), id)
		}
	}
	if Code(9999).Title() != "Unknown error" {
		t.Fatalf("unknown code title = %q", Code(9999).Title())
	}
	if LitHexFallback.String() != "[LIT1001]: Decimal parse failed, read as hexadecimal" {
		t.Fatalf("String() = %q", LitHexFallback.String())
	}
}

func TestSeverityString(t *testing.T) {
	if SevInfo.String() != "INFO" || SevWarning.String() != "WARNING" || SevError.String() != "ERROR" {
		t.Fatalf("severity strings mismatch")
	}
	if Severity(9).String() != "UNKNOWN" {
		t.Fatalf("Severity(9).String() = %q", Severity(9).String())
	}
}
