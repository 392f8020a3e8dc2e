package hooks

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orbiswatch/state-mirror/pkg/cache"
	"github.com/orbiswatch/state-mirror/pkg/domain"
	"github.com/orbiswatch/state-mirror/pkg/errors"
	"github.com/orbiswatch/state-mirror/pkg/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// hydratedCache bootstraps a cache from canned store contents so the
// snapshot-backed kinds (treasures, prices) have live entries to merge
// hook events into.
func hydratedCache(t *testing.T) *cache.StateCache {
	t.Helper()

	repo := repository.NewMockStateRepository()
	on := func(method string, result any) {
		repo.On(method, mock.Anything).Return(result, nil)
	}
	on("Accounts", []*domain.Account{})
	on("Alliances", []*domain.Alliance{
		{ID: 1, Name: "Rose", Color: "pink"},
		{ID: 2, Name: "Eclipse", Color: "black"},
	})
	on("AllianceAutoRoles", []*domain.AllianceAutoRole{})
	on("AllianceSettings", []*domain.AllianceSettings{})
	on("Cities", []*domain.City{{ID: 100, NationID: 6001, Name: "Hargon"}})
	on("Colors", []*domain.Color{{Name: "aqua", TurnBonus: 25}})
	on("Conditions", []*domain.Condition{})
	on("Credentials", []*domain.Credentials{})
	on("Embassies", []*domain.Embassy{})
	on("EmbassyConfigs", []*domain.EmbassyConfig{})
	on("Forums", []*domain.Forum{})
	on("Grants", []*domain.Grant{})
	on("GuildSettings", []*domain.GuildSettings{})
	on("GuildWelcomeSettings", []*domain.GuildWelcomeSettings{})
	on("MenuInterfaces", []*domain.MenuInterface{})
	on("MenuItems", []*domain.MenuItem{})
	on("Menus", []*domain.Menu{})
	on("Nations", []*domain.Nation{{ID: 6001, Name: "Mountania", AllianceID: 1}})
	on("Prices", &domain.Prices{
		Coal: domain.ResourcePrice{Average: 100, HighestBuy: 110, LowestSell: 95},
		Food: domain.ResourcePrice{Average: 80},
	})
	on("Roles", []*domain.Role{})
	on("Subscriptions", []*domain.Subscription{})
	on("Targets", []*domain.Target{})
	on("TargetReminders", []*domain.TargetReminder{})
	on("TicketConfigs", []*domain.TicketConfig{})
	on("Tickets", []*domain.Ticket{})
	on("Transactions", []*domain.Transaction{})
	on("TransactionRequests", []*domain.TransactionRequest{})
	on("Treasures", []*domain.Treasure{
		{Name: "Ares' Spear", Color: "red", NationID: 100},
		{Name: "Midas' Gold", Color: "yellow", NationID: 200},
	})
	on("Treaties", []*domain.Treaty{{FromID: 1, ToID: 2, Type: "MDP"}})
	on("Users", []*domain.User{})

	c := cache.New(testLogger())
	require.NoError(t, c.Bootstrap(context.Background(), repo))
	return c
}

func event(kind Kind, action Action, payload string) Event {
	return Event{Kind: kind, Action: action, Payload: json.RawMessage(payload)}
}

func TestApplyAllianceCreateAndUpdate(t *testing.T) {
	c := hydratedCache(t)
	d := NewDispatcher(c, testLogger())

	require.NoError(t, d.Apply(event(KindAlliance, ActionCreate,
		`{"id": 3, "name": "Grumpy Old Bastards", "score": 40000}`)))

	a := c.GetAlliance(3)
	require.NotNil(t, a)
	assert.Equal(t, "Grumpy Old Bastards", a.Name)
	assert.Equal(t, float64(40000), a.Score)

	// A partial update must leave absent fields untouched.
	require.NoError(t, d.Apply(event(KindAlliance, ActionUpdate,
		`{"id": 3, "score": 41000}`)))

	a = c.GetAlliance(3)
	assert.Equal(t, float64(41000), a.Score)
	assert.Equal(t, "Grumpy Old Bastards", a.Name)
}

func TestApplyAllianceDeleteIsIdempotent(t *testing.T) {
	c := hydratedCache(t)
	d := NewDispatcher(c, testLogger())

	require.NoError(t, d.Apply(event(KindAlliance, ActionDelete, `{"id": 2}`)))
	assert.Nil(t, c.GetAlliance(2))

	// Deleting the same alliance again is a no-op, not an error.
	require.NoError(t, d.Apply(event(KindAlliance, ActionDelete, `{"id": 2}`)))
}

func TestApplyDeleteWithoutIdentityFails(t *testing.T) {
	c := hydratedCache(t)
	d := NewDispatcher(c, testLogger())

	err := d.Apply(event(KindNation, ActionDelete, `{"name": "Mountania"}`))
	require.Error(t, err)

	var se *errors.StateError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, errors.ErrCodeInvalidPayload, se.Code)
}

func TestApplyCityLifecycle(t *testing.T) {
	c := hydratedCache(t)
	d := NewDispatcher(c, testLogger())

	require.NoError(t, d.Apply(event(KindCity, ActionUpdate,
		`{"id": 100, "infrastructure": 2500.5}`)))
	assert.Equal(t, 2500.5, c.GetCity(100).Infrastructure)
	assert.Equal(t, "Hargon", c.GetCity(100).Name)

	require.NoError(t, d.Apply(event(KindCity, ActionDelete, `{"id": 100}`)))
	assert.Nil(t, c.GetCity(100))
}

func TestApplyColorUpsertOnly(t *testing.T) {
	c := hydratedCache(t)
	d := NewDispatcher(c, testLogger())

	require.NoError(t, d.Apply(event(KindColor, ActionUpdate,
		`{"color": "aqua", "turn_bonus": 30}`)))
	assert.Equal(t, 30, c.GetColor("aqua").TurnBonus)

	err := d.Apply(event(KindColor, ActionDelete, `{"color": "aqua"}`))
	var se *errors.StateError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, errors.ErrCodeUnsupportedAction, se.Code)
	assert.NotNil(t, c.GetColor("aqua"))
}

func TestApplyPricesMergesPerResource(t *testing.T) {
	c := hydratedCache(t)
	d := NewDispatcher(c, testLogger())

	require.NoError(t, d.Apply(event(KindPrices, ActionUpdate,
		`{"coal": {"avg_price": 150, "highest_buy": 160, "lowest_sell": 140}}`)))

	p := c.GetPrices()
	require.NotNil(t, p)
	assert.Equal(t, float64(150), p.Coal.Average)
	assert.Equal(t, float64(160), p.Coal.HighestBuy)
	assert.Equal(t, float64(80), p.Food.Average, "resources absent from the event keep their price")

	err := d.Apply(event(KindPrices, ActionDelete, `{}`))
	var se *errors.StateError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, errors.ErrCodeUnsupportedAction, se.Code)
}

func TestApplyTreasureUpdateByName(t *testing.T) {
	c := hydratedCache(t)
	d := NewDispatcher(c, testLogger())

	require.NoError(t, d.Apply(event(KindTreasure, ActionUpdate,
		`{"name": "Ares' Spear", "nation_id": 6001}`)))

	tr := c.GetTreasure("Ares' Spear")
	require.NotNil(t, tr)
	assert.Equal(t, 6001, tr.NationID)
	assert.Equal(t, "red", tr.Color)

	// An event naming an unknown treasure is silently dropped.
	require.NoError(t, d.Apply(event(KindTreasure, ActionUpdate,
		`{"name": "Trident", "nation_id": 1}`)))
	assert.Len(t, c.Treasures(), 2)

	err := d.Apply(event(KindTreasure, ActionDelete, `{"name": "Ares' Spear"}`))
	var se *errors.StateError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, errors.ErrCodeUnsupportedAction, se.Code)
}

func TestApplyTreatyUpsertResolves(t *testing.T) {
	c := hydratedCache(t)
	d := NewDispatcher(c, testLogger())

	require.NoError(t, d.Apply(event(KindTreaty, ActionCreate,
		`{"from_id": 2, "to_id": 1, "treaty_type": "NAP"}`)))

	tr := c.GetTreaty(2, 1, "NAP")
	require.NotNil(t, tr)
	require.NotNil(t, tr.From)
	assert.Equal(t, "Eclipse", tr.From.Name)
	require.NotNil(t, tr.To)
	assert.Equal(t, "Rose", tr.To.Name)
}

func TestApplyTreatyDelete(t *testing.T) {
	c := hydratedCache(t)
	d := NewDispatcher(c, testLogger())

	require.NoError(t, d.Apply(event(KindTreaty, ActionDelete,
		`{"from_id": 1, "to_id": 2, "treaty_type": "MDP", "stopped": "2026-08-01T00:00:00Z"}`)))

	tr := c.GetTreaty(1, 2, "MDP")
	require.NotNil(t, tr, "a stopped treaty stays in the container until the next bootstrap")
	assert.False(t, tr.Active())
}

func TestApplyMalformedPayload(t *testing.T) {
	c := hydratedCache(t)
	d := NewDispatcher(c, testLogger())

	err := d.Apply(event(KindAlliance, ActionUpdate, `{"id": "not a number"`))
	require.Error(t, err)

	var se *errors.StateError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, errors.ErrCodeInvalidPayload, se.Code)
}

func TestApplyUnknownKindAndAction(t *testing.T) {
	c := hydratedCache(t)
	d := NewDispatcher(c, testLogger())

	err := d.Apply(event(Kind("war"), ActionCreate, `{}`))
	var se *errors.StateError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, errors.ErrCodeUnknownKind, se.Code)

	err = d.Apply(event(KindNation, Action("patch"), `{}`))
	require.ErrorAs(t, err, &se)
	assert.Equal(t, errors.ErrCodeUnsupportedAction, se.Code)
}

func TestRunAppliesUntilChannelCloses(t *testing.T) {
	c := hydratedCache(t)
	d := NewDispatcher(c, testLogger())

	events := make(chan Event, 4)
	events <- event(KindNation, ActionUpdate, `{"id": 6001, "score": 3000}`)
	// A failing event must not stop the loop.
	events <- event(KindNation, ActionUpdate, `{"id": `)
	events <- event(KindNation, ActionUpdate, `{"id": 6001, "name": "New Mountania"}`)
	close(events)

	d.Run(context.Background(), events)

	n := c.GetNation(6001)
	require.NotNil(t, n)
	assert.Equal(t, float64(3000), n.Score)
	assert.Equal(t, "New Mountania", n.Name)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	c := hydratedCache(t)
	d := NewDispatcher(c, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		d.Run(ctx, make(chan Event))
		close(done)
	}()

	<-done
}
