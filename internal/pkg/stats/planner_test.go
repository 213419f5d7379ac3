package stats

import (
	"testing"

	"Milestone/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDealsNeeded(t *testing.T) {
	assert.Equal(t, 30, DealsNeeded(150000, 5000))
	// 差一块钱也要多成交一单
	assert.Equal(t, 31, DealsNeeded(150001, 5000))
	assert.Equal(t, 0, DealsNeeded(150000, 0))
	assert.Equal(t, 0, DealsNeeded(0, 5000))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 100.0, Progress(120, 100))
	assert.Equal(t, 0.0, Progress(0, 100))
	assert.Equal(t, 0.0, Progress(50, 0))
	assert.Equal(t, 50.0, Progress(50, 100))
}

func TestDailyPace(t *testing.T) {
	assert.Equal(t, 1, DailyPace(250))
	assert.Equal(t, 1, DailyPace(100))
	assert.Equal(t, 0, DailyPace(0))
	assert.Equal(t, 2, DailyPace(251))
}

func TestResolveTargetSourceExplicitWins(t *testing.T) {
	explicit := &model.DailyTarget{CallsMadeTarget: 25, ContactsReachedTarget: 8}
	annual := &model.Goal{DealsNeeded: 500}

	src := ResolveTargetSource(explicit, annual)
	assert.Equal(t, TargetSourceExplicit, src.Source)

	targets := src.Targets()
	assert.Equal(t, 25, targets.CallsMade)
	assert.Equal(t, 8, targets.ContactsReached)
	assert.Equal(t, 0, targets.ClosedDeals)
}

func TestResolveTargetSourceDerived(t *testing.T) {
	src := ResolveTargetSource(nil, &model.Goal{DealsNeeded: 500})
	assert.Equal(t, TargetSourceDerived, src.Source)

	targets := src.Targets()
	assert.Equal(t, 2, targets.ClosedDeals)
	assert.Equal(t, 0, targets.CallsMade)
}

func TestResolveTargetSourceNothing(t *testing.T) {
	src := ResolveTargetSource(nil, nil)
	assert.Equal(t, TargetSourceDerived, src.Source)
	assert.Equal(t, DailyTargets{}, src.Targets())
}
