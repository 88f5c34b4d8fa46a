package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"luxcert-backend/internal/models"
)

func TestStatus_CanTransition(t *testing.T) {
	cases := []struct {
		from    models.Status
		to      models.Status
		allowed bool
	}{
		{models.StatusPendingPayment, models.StatusPaymentConfirmed, true},
		{models.StatusPendingPayment, models.StatusInspectionCompleted, false},
		{models.StatusPaymentConfirmed, models.StatusInspectionCompleted, true},
		{models.StatusPaymentConfirmed, models.StatusCompleted, true},
		{models.StatusPaymentConfirmed, models.StatusPendingCertification, false},
		{models.StatusInspectionCompleted, models.StatusPendingCertification, true},
		{models.StatusInspectionCompleted, models.StatusCompleted, false},
		{models.StatusPendingCertification, models.StatusCompleted, true},
		{models.StatusCompleted, models.StatusPaymentConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestStatus_CancelFromAnyNonTerminal(t *testing.T) {
	nonTerminal := []models.Status{
		models.StatusPendingPayment,
		models.StatusPaymentConfirmed,
		models.StatusInspectionCompleted,
		models.StatusPendingCertification,
	}
	for _, s := range nonTerminal {
		assert.True(t, s.CanTransition(models.StatusCancelled), "%s", s)
	}

	assert.False(t, models.StatusCompleted.CanTransition(models.StatusCancelled))
	assert.False(t, models.StatusCancelled.CanTransition(models.StatusCancelled))
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, models.StatusCompleted.IsTerminal())
	assert.True(t, models.StatusCancelled.IsTerminal())
	assert.False(t, models.StatusPaymentConfirmed.IsTerminal())
}

func TestVerificationStatus_RankIsMonotonic(t *testing.T) {
	assert.Less(t, models.VerificationRegistered.Rank(), models.VerificationAuthenticated.Rank())
	assert.Less(t, models.VerificationAuthenticated.Rank(), models.VerificationCertified.Rank())
}

func TestValidSuspectPoints(t *testing.T) {
	// An inauthentic finding can flag any component.
	assert.True(t, models.ValidSuspectPoints(models.ResultInauthenticItem, []string{"dial", "movement"}))

	// An authentic item may only carry accessory caveats.
	assert.True(t, models.ValidSuspectPoints(models.ResultAuthenticItem, []string{"bracelet", "documents"}))
	assert.False(t, models.ValidSuspectPoints(models.ResultAuthenticItem, []string{"movement"}))

	assert.False(t, models.ValidSuspectPoints(models.ResultInauthenticItem, []string{"strap_color"}))
	assert.True(t, models.ValidSuspectPoints(models.ResultInauthenticItem, nil))
}
