// Package format holds the display conventions shared by the guide page and
// the workbook export.
//
// Amount renders prices the way procurement users read them, with "." as the
// thousands separator and "," as the decimal separator:
//
//	format.Amount(domain.Number(1234567.891)) // "1.234.567,89"
//	format.Amount(domain.Number(7000.001))    // "7.000"
//	format.Amount(domain.Text("1.4%"))        // "1.4%"
//
// Palette is the single table of highlight colors. The HTML preview renders
// it through CSS and the exporter turns the same swatches into workbook
// styles, so both outputs stay visually consistent.
package format
