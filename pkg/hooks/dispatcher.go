package hooks

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/orbiswatch/state-mirror/pkg/cache"
	"github.com/orbiswatch/state-mirror/pkg/domain"
	"github.com/orbiswatch/state-mirror/pkg/errors"
)

// Dispatcher applies externally pushed change notifications to the cache
// after bootstrap. Events are applied strictly one at a time; no ordering
// guarantee exists between independent upstream changes, so a delete and
// a later update for the same identity may resurrect an entry when they
// arrive out of order.
type Dispatcher struct {
	cache  *cache.StateCache
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher bound to the given cache.
func NewDispatcher(c *cache.StateCache, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		cache:  c,
		logger: logger,
	}
}

// Run consumes events until the channel closes or ctx is cancelled. A
// failed event is logged and dropped; it never stops processing of
// subsequent events.
func (d *Dispatcher) Run(ctx context.Context, events <-chan Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			if err := d.Apply(e); err != nil {
				d.logger.Error("dropping hook event",
					"kind", string(e.Kind),
					"action", string(e.Action),
					"error", err,
				)
			}
		}
	}
}

// Apply applies a single event to the cache. Create and update are the
// same operation, an upsert; delete is idempotent for identity-keyed
// kinds. A malformed payload fails only this event.
func (d *Dispatcher) Apply(e Event) error {
	if !e.Action.IsValid() {
		return errors.ErrUnsupportedAction(string(e.Kind), string(e.Action))
	}
	switch e.Kind {
	case KindAlliance:
		return d.applyAlliance(e)
	case KindCity:
		return d.applyCity(e)
	case KindColor:
		return d.applyColor(e)
	case KindNation:
		return d.applyNation(e)
	case KindPrices:
		return d.applyPrices(e)
	case KindTreasure:
		return d.applyTreasure(e)
	case KindTreaty:
		return d.applyTreaty(e)
	default:
		return errors.ErrUnknownKind(string(e.Kind))
	}
}

func (d *Dispatcher) applyAlliance(e Event) error {
	var p domain.AlliancePatch
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return errors.ErrInvalidPayload("alliance", err)
	}
	if e.Action == ActionDelete {
		if p.ID == nil {
			return errors.ErrInvalidPayload("alliance", nil)
		}
		d.cache.DeleteAlliance(*p.ID)
		return nil
	}
	return d.cache.UpsertAlliance(p)
}

func (d *Dispatcher) applyCity(e Event) error {
	var p domain.CityPatch
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return errors.ErrInvalidPayload("city", err)
	}
	if e.Action == ActionDelete {
		if p.ID == nil {
			return errors.ErrInvalidPayload("city", nil)
		}
		d.cache.DeleteCity(*p.ID)
		return nil
	}
	return d.cache.UpsertCity(p)
}

// applyColor handles color events. The upstream never deletes a color;
// every event is an upsert keyed by color name.
func (d *Dispatcher) applyColor(e Event) error {
	if e.Action == ActionDelete {
		return errors.ErrUnsupportedAction("color", string(e.Action))
	}
	var p domain.ColorPatch
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return errors.ErrInvalidPayload("color", err)
	}
	return d.cache.UpsertColor(p)
}

func (d *Dispatcher) applyNation(e Event) error {
	var p domain.NationPatch
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return errors.ErrInvalidPayload("nation", err)
	}
	if e.Action == ActionDelete {
		if p.ID == nil {
			return errors.ErrInvalidPayload("nation", nil)
		}
		d.cache.DeleteNation(*p.ID)
		return nil
	}
	return d.cache.UpsertNation(p)
}

// applyPrices merges a price event into the singleton snapshot. There is
// no delete for prices.
func (d *Dispatcher) applyPrices(e Event) error {
	if e.Action == ActionDelete {
		return errors.ErrUnsupportedAction("prices", string(e.Action))
	}
	var p domain.PricesPatch
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return errors.ErrInvalidPayload("prices", err)
	}
	d.cache.MergePrices(p)
	return nil
}

// applyTreasure merges a treasure event into the live treasure of the
// same name. There is no delete for treasures; the list only changes
// wholesale at bootstrap.
func (d *Dispatcher) applyTreasure(e Event) error {
	if e.Action == ActionDelete {
		return errors.ErrUnsupportedAction("treasure", string(e.Action))
	}
	var p domain.TreasurePatch
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return errors.ErrInvalidPayload("treasure", err)
	}
	return d.cache.UpdateTreasure(p)
}

func (d *Dispatcher) applyTreaty(e Event) error {
	var p domain.TreatyPatch
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return errors.ErrInvalidPayload("treaty", err)
	}
	if e.Action == ActionDelete {
		return d.cache.DeleteTreaty(p)
	}
	return d.cache.UpsertTreaty(p)
}
