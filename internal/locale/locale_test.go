package locale

import "testing"

func TestCurrencyByCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"USD", "$"},
		{"EUR", "€"},
		{"BRL", "R$"},
		{"XXX", "$"}, // unknown falls back to USD
	}

	for _, tt := range tests {
		if got := CurrencyByCode(tt.code); got.Symbol != tt.want {
			t.Errorf("CurrencyByCode(%q).Symbol = %q, want %q", tt.code, got.Symbol, tt.want)
		}
	}
}

func TestFormatterMoney(t *testing.T) {
	tests := []struct {
		name string
		lang Language
		cur  string
		in   float64
		want string
	}{
		{"english dollars", English, "USD", 1234.5, "$1,234.50"},
		{"english zero", English, "USD", 0, "$0.00"},
		{"english euro symbol", English, "EUR", 2163.2, "€2,163.20"},
		{"german grouping", German, "EUR", 1234.5, "€1.234,50"},
		{"spanish grouping", Spanish, "EUR", 12345.5, "€12.345,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(tt.lang, CurrencyByCode(tt.cur))
			if got := f.Money(tt.in); got != tt.want {
				t.Errorf("Money(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatterQuantity(t *testing.T) {
	f := NewFormatter(English, USD)

	tests := []struct {
		in   float64
		want string
	}{
		{132, "132"},
		{1234.5, "1,234.5"},
		{6.25, "6.25"},
	}

	for _, tt := range tests {
		if got := f.Quantity(tt.in); got != tt.want {
			t.Errorf("Quantity(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLanguageTagFallsBackToEnglish(t *testing.T) {
	if got := Language("unknown").Tag(); got != English.Tag() {
		t.Errorf("unknown language tag = %v", got)
	}
}
