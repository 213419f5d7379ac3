package stats

import (
	"testing"

	"Milestone/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil)
	assert.Equal(t, Totals{}, totals)

	rates := Funnel(totals)
	assert.Equal(t, FunnelRates{}, rates)
}

func TestAggregateSumsFlowFields(t *testing.T) {
	records := []model.DailyMetric{
		{CallsMade: 10, ContactsReached: 3, ClosedDeals: 1, VolumeClosed: 250000},
		{CallsMade: 8, ContactsReached: 2, ClosedDeals: 2, VolumeClosed: 410000},
		{CallsMade: 0, ContactsReached: 0},
	}

	totals := Aggregate(records)
	assert.Equal(t, 18, totals.CallsMade)
	assert.Equal(t, 5, totals.ContactsReached)
	assert.Equal(t, 3, totals.ClosedDeals)
	assert.InDelta(t, 660000, totals.VolumeClosed, 0.001)
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := []model.DailyMetric{
		{CallsMade: 7, AppointmentsSet: 2},
		{CallsMade: 11, AppointmentsSet: 5},
		{CallsMade: 3, AppointmentsSet: 1},
	}
	b := []model.DailyMetric{a[2], a[0], a[1]}

	assert.Equal(t, Aggregate(a), Aggregate(b))
}

func TestAggregateSnapshotFieldsUseMax(t *testing.T) {
	records := []model.DailyMetric{
		{ActiveListings: 4, PendingContracts: 1},
		{ActiveListings: 9, PendingContracts: 3},
		{ActiveListings: 6, PendingContracts: 2},
	}

	totals := Aggregate(records)
	// 时点快照取峰值而不是 19 / 6
	assert.Equal(t, 9, totals.ActiveListings)
	assert.Equal(t, 3, totals.PendingContracts)
}

func TestRate(t *testing.T) {
	assert.Equal(t, 0.0, Rate(0, 0))
	assert.Equal(t, 0.0, Rate(5, 0))
	assert.Equal(t, 50.0, Rate(5, 10))
	assert.Equal(t, 33.3, Rate(1, 3))
	assert.Equal(t, 27.8, Rate(5, 18))
}

func TestFunnelOrder(t *testing.T) {
	totals := Totals{
		CallsMade:            100,
		ContactsReached:      30,
		AppointmentsSet:      15,
		AppointmentsAttended: 12,
		ListingPresentations: 6,
		ListingsTaken:        3,
	}

	rates := Funnel(totals)
	assert.Equal(t, 30.0, rates.CallsToContacts)
	assert.Equal(t, 50.0, rates.ContactsToAppointments)
	assert.Equal(t, 80.0, rates.AppointmentsToAttended)
	assert.Equal(t, 50.0, rates.AttendedToPresentations)
	assert.Equal(t, 50.0, rates.PresentationsToListings)
}
