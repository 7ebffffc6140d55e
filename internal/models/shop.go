package models

// ShopMachine is a terminal registered on a shop.
type ShopMachine struct {
	TID        string `json:"tid"`
	TripleCode string `json:"tripleCode,omitempty"`
}

// Shop is one point of sale: a restaurant, kiosk or machine location,
// operated directly or through a partner.
type Shop struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Location     string        `json:"location"`
	Category     string        `json:"category,omitempty"`
	PartnerName  string        `json:"partnerName,omitempty"`
	IsDirect     bool          `json:"isDirect"`
	StandardTIDs []ShopMachine `json:"standardTids"`
	HalaTIDs     []ShopMachine `json:"halaTids"`
	Notes        string        `json:"notes,omitempty"`
}

// UserAssignment scopes a collector to the shops and partners they service.
type UserAssignment struct {
	Username     string   `json:"username"`
	ShopIDs      []string `json:"shopIds"`
	PartnerNames []string `json:"partnerNames"`
}

// SystemStatus is the singleton system_status row.
type SystemStatus struct {
	ReconciliationEnabled bool     `json:"reconciliationEnabled"`
	ForcedDate            string   `json:"forcedDate,omitempty"` // when set, all submissions use this date
	GlobalMessage         string   `json:"globalMessage,omitempty"`
	ActiveSpotRequests    []string `json:"activeSpotRequests,omitempty"` // shop ids asked to report right now
}
