package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"uplcompare/pkg/contracts/domain"
)

// DecimalSeparator of the display locale, e.g. "1.234.567,89"
const DecimalSeparator = ","

// printer groups thousands with "." and separates decimals with ","
var printer = message.NewPrinter(language.Indonesian)

// Coerce interprets a cell as a finite number.
// Numbers pass through; text is trimmed and parsed with a decimal point.
// Empty cells, non-numeric text and non-finite values do not coerce.
func Coerce(v domain.Value) (float64, bool) {
	switch v.Kind {
	case domain.KindNumber:
		if !finite(v.Number) {
			return 0, false
		}
		return v.Number, true
	case domain.KindText:
		s := strings.TrimSpace(v.Text)
		// ParseFloat also takes Go literals such as "0x10" and "1_000",
		// which no cell writes as an amount.
		if s == "" || strings.ContainsAny(s, "xX_") {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || !finite(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Amount formats a value for on-screen display.
//
// Integers get thousands grouping and no decimals ("73.230"). Fractional
// values get two decimals ("1.234.567,89") unless they round to ",00",
// in which case the decimal part is dropped. Text that is not a number is
// returned unchanged; empty and non-finite values render as "".
func Amount(v domain.Value) string {
	if v.IsEmpty() {
		return ""
	}
	if v.IsNumber() && !finite(v.Number) {
		return ""
	}

	f, ok := Coerce(v)
	if !ok {
		return v.String()
	}
	if f == math.Trunc(f) {
		return printer.Sprintf("%.0f", positiveZero(f))
	}

	// Round first so values that come out at ",00" match integer output.
	intPart, frac, _ := strings.Cut(strconv.FormatFloat(f, 'f', 2, 64), ".")
	if frac == "00" {
		n, _ := strconv.ParseFloat(intPart, 64)
		return printer.Sprintf("%.0f", positiveZero(n))
	}
	return printer.Sprintf("%.2f", f)
}

func positiveZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
