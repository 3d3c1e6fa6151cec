// Package exporter builds the downloadable artifacts of the UPL comparison guide.
//
// Workbook is the Super Button: it lays the selected datasets out as the
// sheets of one xlsx workbook, in selection order, with thousands and
// percent number formats and the highlight colors of the guide page.
//
// CSVWriter writes a single dataset as CSV, either raw or formatted the way
// the page displays it, with an optional UTF-8 BOM for spreadsheet apps.
//
// DummyArchive splits a merged dataset back into the per-round input
// workbooks so users can try the comparison menu.
//
// Example usage:
//
//	wb := exporter.NewWorkbook(exporter.DefaultOptions(), logger)
//	artifact, err := wb.Export(ctx, datasets, []string{"Merge Data", "Pivot Table"})
//	if err != nil {
//		return err
//	}
//	if artifact == nil {
//		// nothing selected
//	}
package exporter
