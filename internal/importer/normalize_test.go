package importer_test

import (
	"testing"

	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/kardex/offerfunnel-api/internal/importer"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeProductType(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   domain.ProductType
		wantOK bool
	}{
		{"canonical", "new_machine", domain.ProductTypeNewMachine, true},
		{"spaced", "New Machine", domain.ProductTypeNewMachine, true},
		{"contract typo", "Ccontarct", domain.ProductTypeContract, true},
		{"amc alias", "AMC", domain.ProductTypeContract, true},
		{"mlu alias", "MLU", domain.ProductTypeMidlifeUpgrade, true},
		{"spares alias", " Spares ", domain.ProductTypeSpareParts, true},
		{"retrofit", "retrofit", domain.ProductTypeRetrofit, true},
		{"unmapped maps to other", "consulting engagement", domain.ProductTypeOther, true},
		{"empty stays unset", "", "", false},
		{"whitespace stays unset", "   ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := importer.NormalizeProductType(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertMonth(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"already formatted", "2025-04", "2025-04", true},
		{"full month name", "April", "2025-04", true},
		{"abbreviated", "sept", "2025-09", true},
		{"december", "December", "2025-12", true},
		{"empty", "", "", false},
		{"garbage", "sometime soon", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := importer.ConvertMonth(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceNumeric(t *testing.T) {
	assert.Equal(t, 100000.0, importer.CoerceNumeric("₹1,00,000"))
	assert.Equal(t, 2500.5, importer.CoerceNumeric("2500.50"))
	assert.Equal(t, 1500000.0, importer.CoerceNumeric("Rs 15,00,000/-"))
	assert.Equal(t, 0.0, importer.CoerceNumeric("TBD"))
	assert.Equal(t, 0.0, importer.CoerceNumeric(""))
}

func TestInferStage(t *testing.T) {
	tests := []struct {
		input string
		want  domain.OfferStage
	}{
		{"WON", domain.StageWon},
		{"Order booked", domain.StageOrderBooked},
		{"PO received", domain.StagePOReceived},
		{"PO received, order booked", domain.StageOrderBooked},
		{"final approval pending", domain.StageFinalApproval},
		{"under negotiation", domain.StageNegotiation},
		{"Proposal sent", domain.StageProposalSent},
		{"first meeting done", domain.StageInitial},
		{"", domain.StageInitial},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, importer.InferStage(tt.input))
		})
	}
}

func TestInferStagePOKeywordIsTokenScoped(t *testing.T) {
	// PROPOSAL contains the letters PO but must not resolve to po_received
	assert.Equal(t, domain.StageProposalSent, importer.InferStage("proposal under review"))
	assert.Equal(t, domain.StagePOReceived, importer.InferStage("awaiting PO"))
}
