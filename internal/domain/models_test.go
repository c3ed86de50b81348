package domain_test

import (
	"strings"
	"testing"

	"github.com/kardex/offerfunnel-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOfferStageOrder(t *testing.T) {
	assert.Equal(t, 0, domain.StageInitial.Order())
	assert.Equal(t, 1, domain.StageProposalSent.Order())
	assert.Equal(t, 2, domain.StageNegotiation.Order())
	assert.Equal(t, 3, domain.StageFinalApproval.Order())
	assert.Equal(t, 4, domain.StagePOReceived.Order())
	assert.Equal(t, 5, domain.StageOrderBooked.Order())

	// terminal stages share the top position
	assert.Equal(t, 6, domain.StageWon.Order())
	assert.Equal(t, 6, domain.StageLost.Order())

	assert.Equal(t, -1, domain.OfferStage("bogus").Order())
}

func TestOfferStageIsTerminal(t *testing.T) {
	assert.True(t, domain.StageWon.IsTerminal())
	assert.True(t, domain.StageLost.IsTerminal())
	assert.False(t, domain.StageOrderBooked.IsTerminal())
	assert.False(t, domain.StageInitial.IsTerminal())
}

func TestFunnelStages(t *testing.T) {
	stages := domain.FunnelStages()
	assert.Equal(t, domain.StageInitial, stages[0])
	assert.Equal(t, domain.StageWon, stages[len(stages)-1])
	assert.NotContains(t, stages, domain.StageLost)

	// funnel order is strictly increasing
	for i := 1; i < len(stages); i++ {
		assert.Greater(t, stages[i].Order(), stages[i-1].Order())
	}
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, domain.ZoneWest.IsValid())
	assert.False(t, domain.ZoneName("CENTRAL").IsValid())

	assert.True(t, domain.RoleAdmin.IsValid())
	assert.False(t, domain.UserRole("superuser").IsValid())

	assert.True(t, domain.ProductTypeMidlifeUpgrade.IsValid())
	assert.False(t, domain.ProductType("consulting").IsValid())

	assert.True(t, domain.PeriodMonthly.IsValid())
	assert.False(t, domain.TargetPeriodType("weekly").IsValid())
}

func TestNewOfferReference(t *testing.T) {
	ref := domain.NewOfferReference("OF")
	assert.True(t, strings.HasPrefix(ref, "OF-"))

	parts := strings.Split(ref, "-")
	assert.Len(t, parts, 3)
	assert.Len(t, parts[2], 6)

	// high collision resistance within one run
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		r := domain.NewOfferReference("OF")
		assert.False(t, seen[r], "duplicate reference %s", r)
		seen[r] = true
	}
}
