package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int             { return &v }
func strPtr(v string) *string       { return &v }
func floatPtr(v float64) *float64   { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func TestAlliancePatchApplyMergesOnlyPresentFields(t *testing.T) {
	a := &Alliance{
		ID:      1234,
		Name:    "Arrgh",
		Acronym: "ARR",
		Score:   50000,
		Color:   "aqua",
	}

	a.Apply(AlliancePatch{
		Score: floatPtr(51000),
		Color: strPtr("black"),
	})

	assert.Equal(t, 1234, a.ID)
	assert.Equal(t, "Arrgh", a.Name)
	assert.Equal(t, "ARR", a.Acronym)
	assert.Equal(t, float64(51000), a.Score)
	assert.Equal(t, "black", a.Color)
}

func TestAlliancePatchMaterialize(t *testing.T) {
	a := AlliancePatch{
		ID:   intPtr(7),
		Name: strPtr("The Syndicate"),
	}.Materialize()

	assert.Equal(t, 7, a.ID)
	assert.Equal(t, "The Syndicate", a.Name)
	assert.Zero(t, a.Score)
	assert.Empty(t, a.Color)
}

func TestPricesApplyReplacesOnlyPresentResources(t *testing.T) {
	p := &Prices{
		Coal: ResourcePrice{Average: 100, HighestBuy: 110, LowestSell: 95},
		Oil:  ResourcePrice{Average: 200},
		Food: ResourcePrice{Average: 80},
	}

	p.Apply(PricesPatch{
		Coal: &ResourcePrice{Average: 150, HighestBuy: 160, LowestSell: 140},
	})

	assert.Equal(t, float64(150), p.Coal.Average)
	assert.Equal(t, float64(160), p.Coal.HighestBuy)
	assert.Equal(t, float64(200), p.Oil.Average)
	assert.Equal(t, float64(80), p.Food.Average)
}

func TestTreatyApplyStops(t *testing.T) {
	started := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	stopped := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	tr := &Treaty{FromID: 1, ToID: 2, Type: "MDP", Started: started}
	assert.True(t, tr.Active())

	tr.Apply(TreatyPatch{Stopped: timePtr(stopped)})

	assert.False(t, tr.Active())
	assert.Equal(t, stopped, *tr.Stopped)
	assert.Equal(t, started, tr.Started)
}

func TestTreasureApply(t *testing.T) {
	tr := &Treasure{Name: "Ares' Spear", Color: "red", Bonus: 4, NationID: 100}

	tr.Apply(TreasurePatch{NationID: intPtr(200)})

	assert.Equal(t, "Ares' Spear", tr.Name)
	assert.Equal(t, "red", tr.Color)
	assert.Equal(t, 4, tr.Bonus)
	assert.Equal(t, 200, tr.NationID)
}

func TestUserMatchesID(t *testing.T) {
	u := &User{UserID: 100001, NationID: 42}

	assert.True(t, u.MatchesID(100001))
	assert.True(t, u.MatchesID(42))
	assert.False(t, u.MatchesID(7))
}

func TestAllianceAutoRoleMatches(t *testing.T) {
	a := &AllianceAutoRole{RoleID: 5, GuildID: 9, AllianceID: 1}

	assert.True(t, a.Matches(&AllianceAutoRole{RoleID: 5, AllianceID: 1}))
	assert.False(t, a.Matches(&AllianceAutoRole{RoleID: 5, AllianceID: 2}))
}

func TestEventEnums(t *testing.T) {
	assert.True(t, EventCategoryAlliance.IsValid())
	assert.True(t, EventTypeDelete.IsValid())
	assert.False(t, EventCategory("WAR").IsValid())
	assert.False(t, EventType("ACCEPT").IsValid())
}
