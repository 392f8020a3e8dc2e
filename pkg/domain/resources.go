package domain

// Resources is a bundle of the twelve in-game resources.
// It is embedded wherever a row carries a full resource amount
// (account balances, grants, transactions) and is stored as a
// single JSONB column in the backing table.
type Resources struct {
	Money     float64 `json:"money"`
	Coal      float64 `json:"coal"`
	Oil       float64 `json:"oil"`
	Uranium   float64 `json:"uranium"`
	Iron      float64 `json:"iron"`
	Bauxite   float64 `json:"bauxite"`
	Lead      float64 `json:"lead"`
	Gasoline  float64 `json:"gasoline"`
	Munitions float64 `json:"munitions"`
	Steel     float64 `json:"steel"`
	Aluminum  float64 `json:"aluminum"`
	Food      float64 `json:"food"`
}
