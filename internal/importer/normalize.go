package importer

import (
	"strconv"
	"strings"

	"github.com/kardex/offerfunnel-api/internal/domain"
)

// productTypeAliases maps raw spreadsheet values, including known typos, to
// canonical product types. Keys are lower-cased trimmed inputs.
var productTypeAliases = map[string]domain.ProductType{
	"new machine":     domain.ProductTypeNewMachine,
	"new_machine":     domain.ProductTypeNewMachine,
	"machine":         domain.ProductTypeNewMachine,
	"contract":        domain.ProductTypeContract,
	"ccontarct":       domain.ProductTypeContract,
	"amc":             domain.ProductTypeContract,
	"midlife upgrade": domain.ProductTypeMidlifeUpgrade,
	"midlife_upgrade": domain.ProductTypeMidlifeUpgrade,
	"mlu":             domain.ProductTypeMidlifeUpgrade,
	"spare parts":     domain.ProductTypeSpareParts,
	"spare_parts":     domain.ProductTypeSpareParts,
	"spares":          domain.ProductTypeSpareParts,
	"retrofit":        domain.ProductTypeRetrofit,
	"relocation":      domain.ProductTypeRelocation,
	"other":           domain.ProductTypeOther,
}

// NormalizeProductType maps a raw spreadsheet value to a canonical product
// type. Empty input returns false, meaning the field should stay unset. Any
// non-empty value that matches no alias maps to Other, so normalization is
// total over non-empty inputs.
func NormalizeProductType(raw string) (domain.ProductType, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	if pt, ok := productTypeAliases[strings.ToLower(trimmed)]; ok {
		return pt, true
	}
	return domain.ProductTypeOther, true
}

var monthNumbers = map[string]string{
	"january":   "01",
	"jan":       "01",
	"february":  "02",
	"feb":       "02",
	"march":     "03",
	"mar":       "03",
	"april":     "04",
	"apr":       "04",
	"may":       "05",
	"june":      "06",
	"jun":       "06",
	"july":      "07",
	"jul":       "07",
	"august":    "08",
	"aug":       "08",
	"september": "09",
	"sep":       "09",
	"sept":      "09",
	"october":   "10",
	"oct":       "10",
	"november":  "11",
	"nov":       "11",
	"december":  "12",
	"dec":       "12",
}

// ConvertMonth turns a spreadsheet month cell into YYYY-MM form. Values
// already containing a hyphen pass through unchanged. Bare month names map
// into 2025, the year the source workbooks cover. Anything else is a miss.
func ConvertMonth(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	if strings.Contains(trimmed, "-") {
		return trimmed, true
	}
	if num, ok := monthNumbers[strings.ToLower(trimmed)]; ok {
		return "2025-" + num, true
	}
	return "", false
}

// CoerceNumeric parses a currency cell by stripping everything except digits
// and the decimal point, so "₹1,00,000" becomes 100000. Unparseable input
// coerces to zero rather than failing the row.
func CoerceNumeric(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// stageKeywords are checked in order, most advanced stage first, so a cell
// like "PO received, order booked" resolves to the later stage.
var stageKeywords = []struct {
	keyword string
	stage   domain.OfferStage
}{
	{"WON", domain.StageWon},
	{"ORDER", domain.StageOrderBooked},
	{"PO", domain.StagePOReceived},
	{"FINAL", domain.StageFinalApproval},
	{"NEGOTIATION", domain.StageNegotiation},
	{"PROPOSAL", domain.StageProposalSent},
}

// InferStage maps free-text status remarks to a funnel stage by keyword.
// The PO keyword matches whole tokens only, so it does not fire inside
// PROPOSAL. Unrecognized text falls back to the initial stage.
func InferStage(raw string) domain.OfferStage {
	upper := strings.ToUpper(raw)
	for _, sk := range stageKeywords {
		if sk.keyword == "PO" {
			if containsToken(upper, "PO") {
				return sk.stage
			}
			continue
		}
		if strings.Contains(upper, sk.keyword) {
			return sk.stage
		}
	}
	return domain.StageInitial
}

func containsToken(s, token string) bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return (r < 'A' || r > 'Z') && (r < '0' || r > '9')
	})
	for _, f := range fields {
		if f == token {
			return true
		}
	}
	return false
}
