package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// OfferRow is one spreadsheet or JSON offer record before resolution.
// SalesPerson carries the sheet name when the workbook has one sheet per
// salesperson and no explicit assignee column.
type OfferRow struct {
	ReferenceNumber string  `json:"offerReferenceNumber"`
	CompanyName     string  `json:"companyName"`
	ContactPerson   string  `json:"contactPersonName"`
	ContactNumber   string  `json:"contactNumber"`
	ContactEmail    string  `json:"contactEmail"`
	AssetName       string  `json:"assetName"`
	SerialNumber    string  `json:"machineSerialNumber"`
	Model           string  `json:"model"`
	ProductType     string  `json:"productType"`
	Stage           string  `json:"stage"`
	OfferValue      float64 `json:"offerValue"`
	RawOfferValue   string  `json:"-"`
	POValue         float64 `json:"poValue"`
	Probability     int     `json:"probabilityPercentage"`
	OfferMonth      string  `json:"offerMonth"`
	POExpectedMonth string  `json:"poExpectedMonth"`
	SalesPerson     string  `json:"assignedTo"`
	Zone            string  `json:"zone"`
	Remarks         string  `json:"remarks"`
	SourceSheet     string  `json:"-"`
	SourceRow       int     `json:"-"`
}

// CustomerRow is one customer record from the Customers sheet or JSON file
type CustomerRow struct {
	CompanyName string `json:"companyName"`
	Location    string `json:"location"`
	Department  string `json:"department"`
	Zone        string `json:"zone"`
}

// customersSheetName marks the one sheet holding customer master data; every
// other sheet is treated as a salesperson's offer list.
const customersSheetName = "Customers"

// offerHeaderAliases maps lower-cased header cells to canonical field names.
// The workbooks were maintained by hand, so several spellings coexist.
var offerHeaderAliases = map[string]string{
	"offer reference number": "referenceNumber",
	"offer ref":              "referenceNumber",
	"reference number":       "referenceNumber",
	"offerreferencenumber":   "referenceNumber",
	"name of the customer":   "companyName",
	"customer name":          "companyName",
	"customer":               "companyName",
	"companyname":            "companyName",
	"contact person":         "contactPerson",
	"contact person name":    "contactPerson",
	"contactpersonname":      "contactPerson",
	"contact number":         "contactNumber",
	"contact no":             "contactNumber",
	"contactnumber":          "contactNumber",
	"email":                  "contactEmail",
	"contact email":          "contactEmail",
	"asset name":             "assetName",
	"assetname":              "assetName",
	"machine serial number":  "serialNumber",
	"serial number":          "serialNumber",
	"machineserialnumber":    "serialNumber",
	"model":                  "model",
	"product type":           "productType",
	"producttype":            "productType",
	"type of product":        "productType",
	"stage":                  "stage",
	"status":                 "stage",
	"offer value":            "offerValue",
	"offervalue":             "offerValue",
	"value":                  "offerValue",
	"po value":               "poValue",
	"povalue":                "poValue",
	"probability":            "probability",
	"probability %":          "probability",
	"offer month":            "offerMonth",
	"offermonth":             "offerMonth",
	"po expected month":      "poExpectedMonth",
	"poexpectedmonth":        "poExpectedMonth",
	"expected po month":      "poExpectedMonth",
	"zone":                   "zone",
	"remarks":                "remarks",
	"remark":                 "remarks",
}

var customerHeaderAliases = map[string]string{
	"name of the customer": "companyName",
	"customer name":        "companyName",
	"company name":         "companyName",
	"companyname":          "companyName",
	"location":             "location",
	"city":                 "location",
	"department":           "department",
	"zone":                 "zone",
}

// Workbook holds all rows parsed from one Excel file
type Workbook struct {
	Customers []CustomerRow
	Offers    []OfferRow
}

// ReadWorkbook parses an Excel file into customer and offer rows. The
// Customers sheet feeds customer rows; every other sheet is read as an offer
// list owned by the salesperson the sheet is named after.
func ReadWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return readWorkbookFile(f)
}

// ReadWorkbookFrom parses an Excel workbook from a reader, used when the
// file arrives as an upload rather than a path.
func ReadWorkbookFrom(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return readWorkbookFile(f)
}

func readWorkbookFile(f *excelize.File) (*Workbook, error) {
	wb := &Workbook{}

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		if len(rows) < 2 {
			continue
		}

		if strings.EqualFold(sheet, customersSheetName) {
			wb.Customers = append(wb.Customers, parseCustomerRows(rows)...)
			continue
		}
		wb.Offers = append(wb.Offers, parseOfferRows(sheet, rows)...)
	}

	return wb, nil
}

// headerIndex maps canonical field names to column positions for one sheet
func headerIndex(header []string, aliases map[string]string) map[string]int {
	index := make(map[string]int)
	for col, cell := range header {
		key := strings.ToLower(strings.TrimSpace(cell))
		if field, ok := aliases[key]; ok {
			if _, seen := index[field]; !seen {
				index[field] = col
			}
		}
	}
	return index
}

func cellAt(row []string, index map[string]int, field string) string {
	col, ok := index[field]
	if !ok || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func parseCustomerRows(rows [][]string) []CustomerRow {
	index := headerIndex(rows[0], customerHeaderAliases)

	var out []CustomerRow
	for _, row := range rows[1:] {
		cr := CustomerRow{
			CompanyName: cellAt(row, index, "companyName"),
			Location:    cellAt(row, index, "location"),
			Department:  cellAt(row, index, "department"),
			Zone:        cellAt(row, index, "zone"),
		}
		if cr.CompanyName == "" {
			continue
		}
		out = append(out, cr)
	}
	return out
}

func parseOfferRows(sheet string, rows [][]string) []OfferRow {
	index := headerIndex(rows[0], offerHeaderAliases)

	var out []OfferRow
	for i, row := range rows[1:] {
		or := OfferRow{
			ReferenceNumber: cellAt(row, index, "referenceNumber"),
			CompanyName:     cellAt(row, index, "companyName"),
			ContactPerson:   cellAt(row, index, "contactPerson"),
			ContactNumber:   cellAt(row, index, "contactNumber"),
			ContactEmail:    cellAt(row, index, "contactEmail"),
			AssetName:       cellAt(row, index, "assetName"),
			SerialNumber:    cellAt(row, index, "serialNumber"),
			Model:           cellAt(row, index, "model"),
			ProductType:     cellAt(row, index, "productType"),
			Stage:           cellAt(row, index, "stage"),
			RawOfferValue:   cellAt(row, index, "offerValue"),
			OfferMonth:      cellAt(row, index, "offerMonth"),
			POExpectedMonth: cellAt(row, index, "poExpectedMonth"),
			SalesPerson:     sheet,
			Zone:            cellAt(row, index, "zone"),
			Remarks:         cellAt(row, index, "remarks"),
			SourceSheet:     sheet,
			SourceRow:       i + 2,
		}
		if isEmptyOfferRow(or) {
			continue
		}
		or.OfferValue = CoerceNumeric(or.RawOfferValue)
		or.POValue = CoerceNumeric(cellAt(row, index, "poValue"))
		or.Probability = int(CoerceNumeric(cellAt(row, index, "probability")))
		out = append(out, or)
	}
	return out
}

func isEmptyOfferRow(or OfferRow) bool {
	return or.CompanyName == "" && or.ReferenceNumber == "" && or.RawOfferValue == ""
}

// ReadJSONOffers loads a pre-processed all-offers.json array
func ReadJSONOffers(path string) ([]OfferRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read offers file: %w", err)
	}
	var rows []OfferRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse offers file: %w", err)
	}
	return rows, nil
}

// ReadJSONCustomers loads a pre-processed customers.json array
func ReadJSONCustomers(path string) ([]CustomerRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read customers file: %w", err)
	}
	var rows []CustomerRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse customers file: %w", err)
	}
	return rows, nil
}
