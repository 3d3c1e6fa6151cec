package domain

// ExportRequest asks for one workbook built from the named datasets.
// Sheets lists the selected dataset kinds in the order the sheets must appear.
type ExportRequest struct {
	Datasets map[string]Dataset `json:"datasets"`
	Sheets   []string           `json:"sheets" validate:"unique,dive,required,sheetname"`
}

// SheetSelection is the Super Button selection over the built-in examples
type SheetSelection struct {
	Sheets []string `json:"sheets" validate:"unique,dive,required,sheetname"`
}

// ExportSummary describes a produced workbook without its bytes
type ExportSummary struct {
	FileName string   `json:"file_name"`
	Sheets   []string `json:"sheets"`
	Bytes    int      `json:"bytes"`
}
