package cache

import (
	"github.com/orbiswatch/state-mirror/pkg/domain"
	"github.com/orbiswatch/state-mirror/pkg/errors"
)

// Hook-apply operations. These back the hook dispatcher: upserts merge the
// incoming fields into the cached entity when one exists and construct a
// new one otherwise; deletes are idempotent no-ops when the identity is
// absent, unlike the strict Remove accessors.

// UpsertAlliance merges or inserts an alliance from a hook payload.
func (c *StateCache) UpsertAlliance(p domain.AlliancePatch) error {
	if p.ID == nil {
		return errors.ErrInvalidPayload("alliance", nil)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.alliances[*p.ID]; ok {
		existing.Apply(p)
		return nil
	}
	c.alliances[*p.ID] = p.Materialize()
	return nil
}

// DeleteAlliance removes the alliance if present. Treaties holding a
// resolved reference to it keep that reference; resolution is never
// repaired retroactively.
func (c *StateCache) DeleteAlliance(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.alliances, id)
}

// UpsertCity merges or inserts a city from a hook payload.
func (c *StateCache) UpsertCity(p domain.CityPatch) error {
	if p.ID == nil {
		return errors.ErrInvalidPayload("city", nil)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.cities[*p.ID]; ok {
		existing.Apply(p)
		return nil
	}
	c.cities[*p.ID] = p.Materialize()
	return nil
}

// DeleteCity removes the city if present.
func (c *StateCache) DeleteCity(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cities, id)
}

// UpsertColor merges or inserts a trade-bloc color from a hook payload.
func (c *StateCache) UpsertColor(p domain.ColorPatch) error {
	if p.Name == nil {
		return errors.ErrInvalidPayload("color", nil)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.colors[*p.Name]; ok {
		existing.Apply(p)
		return nil
	}
	c.colors[*p.Name] = p.Materialize()
	return nil
}

// UpsertNation merges or inserts a nation from a hook payload.
func (c *StateCache) UpsertNation(p domain.NationPatch) error {
	if p.ID == nil {
		return errors.ErrInvalidPayload("nation", nil)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.nations[*p.ID]; ok {
		existing.Apply(p)
		return nil
	}
	c.nations[*p.ID] = p.Materialize()
	return nil
}

// DeleteNation removes the nation if present.
func (c *StateCache) DeleteNation(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.nations, id)
}

// MergePrices folds a price event into the live snapshot. The snapshot is
// merged field by field, never replaced, so resources absent from the
// event keep their previous price.
func (c *StateCache) MergePrices(p domain.PricesPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prices == nil {
		c.prices = &domain.Prices{}
	}
	c.prices.Apply(p)
}

// UpdateTreasure merges a treasure event into the live treasure with the
// matching name. Names are unique among live treasures; an event naming
// an unknown treasure is dropped.
func (c *StateCache) UpdateTreasure(p domain.TreasurePatch) error {
	if p.Name == nil {
		return errors.ErrInvalidPayload("treasure", nil)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.treasures {
		if t.Name == *p.Name {
			t.Apply(p)
			return nil
		}
	}
	return nil
}

// UpsertTreaty re-resolves both alliance endpoints against the current
// alliance container and merges or inserts the treaty matched by its
// (from, to, type) triple. An endpoint naming an alliance not yet cached
// resolves to nil rather than failing: upstream event ordering is not
// guaranteed, so the alliance may legitimately arrive after the treaty.
func (c *StateCache) UpsertTreaty(p domain.TreatyPatch) error {
	if p.FromID == nil || p.ToID == nil {
		return errors.ErrInvalidPayload("treaty", nil)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.upsertTreatyLocked(p)
	return nil
}

// DeleteTreaty applies a treaty delete event. It first updates the first
// cached treaty whose resolved endpoints match the payload on either side
// alone, then still re-resolves and upserts the payload's treaty, exactly
// as the source system does. The one-sided match can pick the wrong
// treaty when an alliance participates in several, and the stopped entry
// stays in the container; both are known correctness gaps preserved for
// the product owner to resolve.
func (c *StateCache) DeleteTreaty(p domain.TreatyPatch) error {
	if p.FromID == nil || p.ToID == nil {
		return errors.ErrInvalidPayload("treaty", nil)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.treaties {
		if (t.From != nil && t.From.ID == *p.FromID) || (t.To != nil && t.To.ID == *p.ToID) {
			t.Apply(p)
			t.Resolve(c.alliances[t.FromID], c.alliances[t.ToID])
			break
		}
	}
	c.upsertTreatyLocked(p)
	return nil
}

// upsertTreatyLocked merges or inserts a treaty by its triple and
// re-resolves both endpoints. Caller holds the write lock.
func (c *StateCache) upsertTreatyLocked(p domain.TreatyPatch) {
	for _, t := range c.treaties {
		if t.FromID == *p.FromID && t.ToID == *p.ToID && (p.Type == nil || t.Type == *p.Type) {
			t.Apply(p)
			t.Resolve(c.alliances[t.FromID], c.alliances[t.ToID])
			return
		}
	}
	t := p.Materialize()
	t.Resolve(c.alliances[t.FromID], c.alliances[t.ToID])
	c.treaties = append(c.treaties, t)
}
