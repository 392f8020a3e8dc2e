package domain

import "time"

// ResourcePrice is the market price summary for a single resource.
type ResourcePrice struct {
	Average    float64 `json:"avg_price"`
	HighestBuy float64 `json:"highest_buy"`
	LowestSell float64 `json:"lowest_sell"`
}

// Prices is the market price snapshot, one per process. The upstream
// persists it as a single versioned row with one serialized ResourcePrice
// per resource column; bootstrap reads only the most recent row and hook
// events merge individual resource prices into the live snapshot.
type Prices struct {
	Timestamp time.Time     `json:"datetime"`
	Coal      ResourcePrice `json:"coal"`
	Oil       ResourcePrice `json:"oil"`
	Uranium   ResourcePrice `json:"uranium"`
	Iron      ResourcePrice `json:"iron"`
	Bauxite   ResourcePrice `json:"bauxite"`
	Lead      ResourcePrice `json:"lead"`
	Gasoline  ResourcePrice `json:"gasoline"`
	Munitions ResourcePrice `json:"munitions"`
	Steel     ResourcePrice `json:"steel"`
	Aluminum  ResourcePrice `json:"aluminum"`
	Food      ResourcePrice `json:"food"`
	Credits   ResourcePrice `json:"credits"`
}

// PricesPatch is the partial price snapshot carried by a hook event.
// Each present resource replaces that resource's price wholesale; the
// snapshot itself is merged, never swapped out.
type PricesPatch struct {
	Timestamp *time.Time     `json:"datetime"`
	Coal      *ResourcePrice `json:"coal"`
	Oil       *ResourcePrice `json:"oil"`
	Uranium   *ResourcePrice `json:"uranium"`
	Iron      *ResourcePrice `json:"iron"`
	Bauxite   *ResourcePrice `json:"bauxite"`
	Lead      *ResourcePrice `json:"lead"`
	Gasoline  *ResourcePrice `json:"gasoline"`
	Munitions *ResourcePrice `json:"munitions"`
	Steel     *ResourcePrice `json:"steel"`
	Aluminum  *ResourcePrice `json:"aluminum"`
	Food      *ResourcePrice `json:"food"`
	Credits   *ResourcePrice `json:"credits"`
}

// Apply merges the non-nil resource prices of the patch into the snapshot.
func (s *Prices) Apply(p PricesPatch) {
	if p.Timestamp != nil {
		s.Timestamp = *p.Timestamp
	}
	if p.Coal != nil {
		s.Coal = *p.Coal
	}
	if p.Oil != nil {
		s.Oil = *p.Oil
	}
	if p.Uranium != nil {
		s.Uranium = *p.Uranium
	}
	if p.Iron != nil {
		s.Iron = *p.Iron
	}
	if p.Bauxite != nil {
		s.Bauxite = *p.Bauxite
	}
	if p.Lead != nil {
		s.Lead = *p.Lead
	}
	if p.Gasoline != nil {
		s.Gasoline = *p.Gasoline
	}
	if p.Munitions != nil {
		s.Munitions = *p.Munitions
	}
	if p.Steel != nil {
		s.Steel = *p.Steel
	}
	if p.Aluminum != nil {
		s.Aluminum = *p.Aluminum
	}
	if p.Food != nil {
		s.Food = *p.Food
	}
	if p.Credits != nil {
		s.Credits = *p.Credits
	}
}
