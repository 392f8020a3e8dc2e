package cache

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	customerrors "github.com/orbiswatch/state-mirror/pkg/errors"

	"github.com/orbiswatch/state-mirror/pkg/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestNewCacheNotReady(t *testing.T) {
	c := New(testLogger())

	if c == nil {
		t.Fatal("New() returned nil")
	}

	if c.Ready() {
		t.Error("a fresh cache must not report ready before bootstrap")
	}
}

func TestAddGetRemoveAccount(t *testing.T) {
	c := New(testLogger())
	a := &domain.Account{ID: 10, OwnerID: 500, Name: "war chest"}

	c.AddAccount(a)

	got := c.GetAccount(10)
	if got == nil {
		t.Fatal("GetAccount() returned nil for cached account")
	}
	if got.Name != "war chest" {
		t.Errorf("expected account name 'war chest', got %q", got.Name)
	}

	if err := c.RemoveAccount(a); err != nil {
		t.Fatalf("RemoveAccount() unexpected error: %v", err)
	}

	if c.GetAccount(10) != nil {
		t.Error("GetAccount() should return nil after removal")
	}
}

func TestAddOverwritesByIdentity(t *testing.T) {
	c := New(testLogger())

	c.AddCondition(&domain.Condition{ID: 1, Name: "raid"})
	c.AddCondition(&domain.Condition{ID: 1, Name: "counter"})

	conds := c.Conditions()
	if len(conds) != 1 {
		t.Fatalf("expected 1 condition after overwrite, got %d", len(conds))
	}
	if conds[0].Name != "counter" {
		t.Errorf("expected latest write to win, got %q", conds[0].Name)
	}
}

func TestRemoveMissingIsAnError(t *testing.T) {
	c := New(testLogger())

	err := c.RemoveRole(&domain.Role{ID: 99})
	if err == nil {
		t.Fatal("RemoveRole() on an empty cache must fail")
	}

	var se *customerrors.StateError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StateError, got %T", err)
	}
	if se.Code != customerrors.ErrCodeRemoveMissing {
		t.Errorf("expected code %q, got %q", customerrors.ErrCodeRemoveMissing, se.Code)
	}
}

func TestUserDualIdentityLookup(t *testing.T) {
	c := New(testLogger())
	u := &domain.User{UserID: 200012345, NationID: 6001}
	c.AddUser(u)

	t.Run("by discord id", func(t *testing.T) {
		if got := c.GetUser(200012345); got != u {
			t.Error("GetUser() by Discord ID did not find the user")
		}
	})

	t.Run("by nation id", func(t *testing.T) {
		if got := c.GetUser(6001); got != u {
			t.Error("GetUser() by nation ID did not find the user")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if got := c.GetUser(7); got != nil {
			t.Errorf("GetUser() expected nil for unknown ID, got %v", got)
		}
	})

	t.Run("remove then lookup", func(t *testing.T) {
		if err := c.RemoveUser(u); err != nil {
			t.Fatalf("RemoveUser() unexpected error: %v", err)
		}
		if c.GetUser(6001) != nil {
			t.Error("GetUser() should return nil after removal")
		}
		if err := c.RemoveUser(u); err == nil {
			t.Error("second RemoveUser() must fail")
		}
	})
}

func TestMenuInterfaceCompositeLookupAndSilentRemove(t *testing.T) {
	c := New(testLogger())
	c.AddMenuInterface(&domain.MenuInterface{MenuID: 3, MessageID: 111})
	c.AddMenuInterface(&domain.MenuInterface{MenuID: 3, MessageID: 222})

	got := c.GetMenuInterface(3, 222)
	if got == nil || got.MessageID != 222 {
		t.Fatalf("GetMenuInterface() did not match on the (menu, message) pair: %v", got)
	}

	if c.GetMenuInterface(4, 222) != nil {
		t.Error("GetMenuInterface() must require both keys to match")
	}

	// No error surface: removing an unknown message is a no-op.
	c.RemoveMenuInterface(999)
	if len(c.MenuInterfaces()) != 2 {
		t.Error("RemoveMenuInterface() of unknown message must not touch the container")
	}

	c.RemoveMenuInterface(111)
	if c.GetMenuInterface(3, 111) != nil {
		t.Error("GetMenuInterface() should return nil after removal")
	}
	if len(c.MenuInterfaces()) != 1 {
		t.Errorf("expected 1 interface left, got %d", len(c.MenuInterfaces()))
	}
}

func TestAllianceAutoRoleRemoveMatchesPair(t *testing.T) {
	c := New(testLogger())
	c.AddAllianceAutoRole(&domain.AllianceAutoRole{RoleID: 5, GuildID: 9, AllianceID: 1})
	c.AddAllianceAutoRole(&domain.AllianceAutoRole{RoleID: 5, GuildID: 9, AllianceID: 2})

	if err := c.RemoveAllianceAutoRole(&domain.AllianceAutoRole{RoleID: 5, AllianceID: 2}); err != nil {
		t.Fatalf("RemoveAllianceAutoRole() unexpected error: %v", err)
	}

	left := c.AllianceAutoRoles()
	if len(left) != 1 {
		t.Fatalf("expected 1 binding left, got %d", len(left))
	}
	if left[0].AllianceID != 1 {
		t.Errorf("removed the wrong binding, left alliance %d", left[0].AllianceID)
	}

	if err := c.RemoveAllianceAutoRole(&domain.AllianceAutoRole{RoleID: 5, AllianceID: 2}); err == nil {
		t.Error("removing an already-removed binding must fail")
	}
}

func TestGetTreasureByName(t *testing.T) {
	c := New(testLogger())
	c.treasures = []*domain.Treasure{
		{Name: "Ares' Spear", Color: "red", NationID: 100},
		{Name: "Midas' Gold", Color: "yellow", NationID: 200},
	}

	got := c.GetTreasure("Midas' Gold")
	if got == nil || got.NationID != 200 {
		t.Fatalf("GetTreasure() did not find the named treasure: %v", got)
	}

	if c.GetTreasure("Trident") != nil {
		t.Error("GetTreasure() expected nil for unknown name")
	}
}

func TestGetTreatyByTriple(t *testing.T) {
	c := New(testLogger())
	c.treaties = []*domain.Treaty{
		{FromID: 1, ToID: 2, Type: "MDP"},
		{FromID: 1, ToID: 2, Type: "NAP"},
	}

	got := c.GetTreaty(1, 2, "NAP")
	if got == nil || got.Type != "NAP" {
		t.Fatalf("GetTreaty() did not match on the full triple: %v", got)
	}

	if c.GetTreaty(2, 1, "MDP") != nil {
		t.Error("GetTreaty() must not match with endpoints swapped")
	}
}

func TestCollectionSnapshotsAreIsolated(t *testing.T) {
	c := New(testLogger())
	c.AddTarget(&domain.Target{ID: 1, NationID: 10})

	snap := c.Targets()
	c.AddTarget(&domain.Target{ID: 2, NationID: 20})

	if len(snap) != 1 {
		t.Errorf("earlier snapshot grew after a later mutation: %d entries", len(snap))
	}
	if len(c.Targets()) != 2 {
		t.Errorf("fresh snapshot expected 2 entries, got %d", len(c.Targets()))
	}
}

func TestUpsertAlliance(t *testing.T) {
	c := New(testLogger())
	id := 30
	name := "Rose"
	score := 1000.0

	t.Run("missing id", func(t *testing.T) {
		err := c.UpsertAlliance(domain.AlliancePatch{Name: &name})
		if err == nil {
			t.Fatal("UpsertAlliance() without an ID must fail")
		}
		var se *customerrors.StateError
		if !errors.As(err, &se) || se.Code != customerrors.ErrCodeInvalidPayload {
			t.Errorf("expected %q, got %v", customerrors.ErrCodeInvalidPayload, err)
		}
	})

	t.Run("insert", func(t *testing.T) {
		if err := c.UpsertAlliance(domain.AlliancePatch{ID: &id, Name: &name, Score: &score}); err != nil {
			t.Fatalf("UpsertAlliance() unexpected error: %v", err)
		}
		got := c.GetAlliance(30)
		if got == nil || got.Name != "Rose" || got.Score != 1000 {
			t.Fatalf("inserted alliance wrong: %+v", got)
		}
	})

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		newScore := 1200.0
		if err := c.UpsertAlliance(domain.AlliancePatch{ID: &id, Score: &newScore}); err != nil {
			t.Fatalf("UpsertAlliance() unexpected error: %v", err)
		}
		got := c.GetAlliance(30)
		if got.Score != 1200 {
			t.Errorf("expected merged score 1200, got %v", got.Score)
		}
		if got.Name != "Rose" {
			t.Errorf("absent field must survive the merge, got name %q", got.Name)
		}
	})
}

func TestDeleteAllianceIdempotent(t *testing.T) {
	c := New(testLogger())
	id := 40
	if err := c.UpsertAlliance(domain.AlliancePatch{ID: &id}); err != nil {
		t.Fatal(err)
	}

	c.DeleteAlliance(40)
	if c.GetAlliance(40) != nil {
		t.Error("alliance should be gone after delete")
	}

	// Deleting again must not panic or error.
	c.DeleteAlliance(40)
}

func TestDeleteAllianceLeavesTreatyReferenceStale(t *testing.T) {
	c := New(testLogger())
	a := &domain.Alliance{ID: 1, Name: "Rose"}
	c.alliances[1] = a
	c.alliances[2] = &domain.Alliance{ID: 2, Name: "Eclipse"}

	from, to := 1, 2
	if err := c.UpsertTreaty(domain.TreatyPatch{FromID: &from, ToID: &to}); err != nil {
		t.Fatal(err)
	}

	c.DeleteAlliance(1)

	tr := c.Treaties()[0]
	if tr.From != a {
		t.Error("treaty must keep its resolved reference after the alliance is deleted")
	}
}

func TestMergePrices(t *testing.T) {
	c := New(testLogger())

	t.Run("first event creates the snapshot", func(t *testing.T) {
		c.MergePrices(domain.PricesPatch{
			Coal: &domain.ResourcePrice{Average: 100},
			Food: &domain.ResourcePrice{Average: 80},
		})
		p := c.GetPrices()
		if p == nil {
			t.Fatal("GetPrices() returned nil after a merge")
		}
		if p.Coal.Average != 100 || p.Food.Average != 80 {
			t.Errorf("snapshot wrong after first merge: %+v", p)
		}
	})

	t.Run("later event merges per resource", func(t *testing.T) {
		c.MergePrices(domain.PricesPatch{
			Coal: &domain.ResourcePrice{Average: 150},
		})
		p := c.GetPrices()
		if p.Coal.Average != 150 {
			t.Errorf("expected coal 150, got %v", p.Coal.Average)
		}
		if p.Food.Average != 80 {
			t.Errorf("untouched resource must keep its price, got %v", p.Food.Average)
		}
	})
}

func TestUpdateTreasure(t *testing.T) {
	c := New(testLogger())
	c.treasures = []*domain.Treasure{
		{Name: "Ares' Spear", NationID: 100},
	}

	name := "Ares' Spear"
	nation := 200
	if err := c.UpdateTreasure(domain.TreasurePatch{Name: &name, NationID: &nation}); err != nil {
		t.Fatalf("UpdateTreasure() unexpected error: %v", err)
	}
	if got := c.GetTreasure("Ares' Spear"); got.NationID != 200 {
		t.Errorf("expected nation 200, got %d", got.NationID)
	}

	t.Run("unknown name is dropped", func(t *testing.T) {
		unknown := "Trident"
		if err := c.UpdateTreasure(domain.TreasurePatch{Name: &unknown}); err != nil {
			t.Fatalf("an event naming an unknown treasure must be a no-op, got %v", err)
		}
		if len(c.Treasures()) != 1 {
			t.Error("unknown-name event must not create a treasure")
		}
	})

	t.Run("missing name", func(t *testing.T) {
		if err := c.UpdateTreasure(domain.TreasurePatch{}); err == nil {
			t.Error("UpdateTreasure() without a name must fail")
		}
	})
}

func TestUpsertTreatyResolvesEndpoints(t *testing.T) {
	c := New(testLogger())
	c.alliances[1] = &domain.Alliance{ID: 1}

	from, to := 1, 2
	typ := "MDP"
	if err := c.UpsertTreaty(domain.TreatyPatch{FromID: &from, ToID: &to, Type: &typ}); err != nil {
		t.Fatal(err)
	}

	tr := c.GetTreaty(1, 2, "MDP")
	if tr == nil {
		t.Fatal("treaty not inserted")
	}
	if tr.From == nil || tr.From.ID != 1 {
		t.Error("cached endpoint must resolve")
	}
	if tr.To != nil {
		t.Error("uncached endpoint must resolve to nil")
	}

	t.Run("merge by triple", func(t *testing.T) {
		stopped := time.Now()
		if err := c.UpsertTreaty(domain.TreatyPatch{FromID: &from, ToID: &to, Type: &typ, Stopped: &stopped}); err != nil {
			t.Fatal(err)
		}
		if len(c.Treaties()) != 1 {
			t.Fatalf("expected merge, got %d treaties", len(c.Treaties()))
		}
		if c.GetTreaty(1, 2, "MDP").Active() {
			t.Error("merged treaty should carry the stop timestamp")
		}
	})

	t.Run("missing endpoint", func(t *testing.T) {
		if err := c.UpsertTreaty(domain.TreatyPatch{FromID: &from}); err == nil {
			t.Error("UpsertTreaty() without both endpoints must fail")
		}
	})
}
