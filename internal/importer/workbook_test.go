package importer_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kardex/offerfunnel-api/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	// one sheet per salesperson, headers in the hand-maintained spellings
	require.NoError(t, f.SetSheetName("Sheet1", "Ramesh"))
	require.NoError(t, f.SetSheetRow("Ramesh", "A1", &[]string{
		"Offer Reference Number", "Name of the Customer", "Contact Person",
		"Product Type", "Status", "Offer Value", "PO Value", "Probability",
		"Offer Month", "Zone", "Remarks",
	}))
	require.NoError(t, f.SetSheetRow("Ramesh", "A2", &[]string{
		"OF-5001", "Acme Industries", "Sunil Shetty",
		"Ccontarct", "PO received", "₹1,00,000", "", "90",
		"April", "WEST", "follow up next week",
	}))
	// blank row must be skipped
	require.NoError(t, f.SetSheetRow("Ramesh", "A3", &[]string{"", "", ""}))
	require.NoError(t, f.SetSheetRow("Ramesh", "A4", &[]string{
		"", "Globex Corporation", "",
		"Retrofit", "Proposal sent", "2,50,000.50", "", "40",
		"2025-06", "WEST", "",
	}))

	_, err := f.NewSheet("Customers")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Customers", "A1", &[]string{
		"Customer Name", "Location", "Department", "Zone",
	}))
	require.NoError(t, f.SetSheetRow("Customers", "A2", &[]string{
		"Acme Industries", "Mumbai", "Purchasing", "WEST",
	}))

	path := filepath.Join(t.TempDir(), "offers.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeTestWorkbook(t)

	wb, err := importer.ReadWorkbook(path)
	require.NoError(t, err)

	require.Len(t, wb.Customers, 1)
	assert.Equal(t, "Acme Industries", wb.Customers[0].CompanyName)
	assert.Equal(t, "Mumbai", wb.Customers[0].Location)
	assert.Equal(t, "WEST", wb.Customers[0].Zone)

	require.Len(t, wb.Offers, 2)

	first := wb.Offers[0]
	assert.Equal(t, "OF-5001", first.ReferenceNumber)
	assert.Equal(t, "Acme Industries", first.CompanyName)
	assert.Equal(t, "Sunil Shetty", first.ContactPerson)
	assert.Equal(t, "Ccontarct", first.ProductType)
	assert.Equal(t, "PO received", first.Stage)
	assert.Equal(t, 100000.0, first.OfferValue)
	assert.Equal(t, 90, first.Probability)
	assert.Equal(t, "April", first.OfferMonth)
	assert.Equal(t, "WEST", first.Zone)
	// the sheet name is the salesperson
	assert.Equal(t, "Ramesh", first.SalesPerson)
	assert.Equal(t, "Ramesh", first.SourceSheet)
	assert.Equal(t, 2, first.SourceRow)

	second := wb.Offers[1]
	assert.Equal(t, "", second.ReferenceNumber)
	assert.Equal(t, "Globex Corporation", second.CompanyName)
	assert.Equal(t, 250000.5, second.OfferValue)
	assert.Equal(t, 4, second.SourceRow)
}

func TestReadWorkbookFrom(t *testing.T) {
	path := writeTestWorkbook(t)
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	wb, err := importer.ReadWorkbookFrom(file)
	require.NoError(t, err)
	assert.Len(t, wb.Offers, 2)
}

func TestReadJSONOffers(t *testing.T) {
	rows := []importer.OfferRow{
		{
			ReferenceNumber: "OF-6001",
			CompanyName:     "Acme Industries",
			SalesPerson:     "Ramesh Kumar",
			Zone:            "WEST",
			OfferValue:      42000,
			Probability:     60,
		},
	}
	data, err := json.Marshal(rows)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "all-offers.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	parsed, err := importer.ReadJSONOffers(path)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "OF-6001", parsed[0].ReferenceNumber)
	assert.Equal(t, "Ramesh Kumar", parsed[0].SalesPerson)
	assert.Equal(t, 42000.0, parsed[0].OfferValue)

	_, err = importer.ReadJSONOffers(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReadJSONCustomers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.json")
	payload := `[{"companyName":"Globex Corporation","location":"Pune","zone":"WEST"}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	parsed, err := importer.ReadJSONCustomers(path)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "Globex Corporation", parsed[0].CompanyName)
	assert.Equal(t, "Pune", parsed[0].Location)
}
