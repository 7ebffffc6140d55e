package models

// AppState is the typed application state reconstructed from the raw row
// cache. Collections are always non-nil so consumers never null-check;
// reports and cash reports arrive sorted newest first.
type AppState struct {
	Reports              []DailyReport                `json:"reports"`
	MachineRequests      []MachineRequest             `json:"machine_requests"`
	ShopRequests         []ShopRequest                `json:"shop_requests"`
	RenameRequests       []ShopRenameRequest          `json:"rename_requests"`
	AccountRegistrations []AccountRegistrationRequest `json:"account_registrations"`
	CashReports          []CashReport                 `json:"cash_reports"`
	Shops                []Shop                       `json:"shops"`
	Assignments          []UserAssignment             `json:"assignments"`
	Users                []User                       `json:"users"`
	Partners             []string                     `json:"partners"`
	Categories           []string                     `json:"categories"`
	Locations            []string                     `json:"locations"`
	SystemStatus         SystemStatus                 `json:"system_status"`
	RowCount             int                          `json:"row_count"`    // rows in the local cache
	Quarantined          int                          `json:"quarantined"`  // rows that failed to decode
}

// NewAppState returns a state with every collection initialized empty and
// reconciliation enabled, the default before any system_status row exists.
func NewAppState() *AppState {
	return &AppState{
		Reports:              []DailyReport{},
		MachineRequests:      []MachineRequest{},
		ShopRequests:         []ShopRequest{},
		RenameRequests:       []ShopRenameRequest{},
		AccountRegistrations: []AccountRegistrationRequest{},
		CashReports:          []CashReport{},
		Shops:                []Shop{},
		Assignments:          []UserAssignment{},
		Users:                []User{},
		Partners:             []string{},
		Categories:           []string{},
		Locations:            []string{},
		SystemStatus:         SystemStatus{ReconciliationEnabled: true},
	}
}

// ShopByID finds a shop in the state, or nil.
func (s *AppState) ShopByID(id string) *Shop {
	for i := range s.Shops {
		if s.Shops[i].ID == id {
			return &s.Shops[i]
		}
	}
	return nil
}

// ShopsFor returns the shops a user may act on. Collectors with an
// assignment row are scoped to their assigned shop ids and partner names;
// every other role, and collectors without an assignment, see all shops.
func (s *AppState) ShopsFor(username string, role UserRole) []Shop {
	if role != RoleCollector {
		return s.Shops
	}
	var assignment *UserAssignment
	for i := range s.Assignments {
		if s.Assignments[i].Username == username {
			assignment = &s.Assignments[i]
			break
		}
	}
	if assignment == nil {
		return s.Shops
	}

	shopIDs := make(map[string]bool, len(assignment.ShopIDs))
	for _, id := range assignment.ShopIDs {
		shopIDs[id] = true
	}
	partners := make(map[string]bool, len(assignment.PartnerNames))
	for _, name := range assignment.PartnerNames {
		partners[name] = true
	}

	scoped := make([]Shop, 0, len(assignment.ShopIDs))
	for _, shop := range s.Shops {
		if shopIDs[shop.ID] || (shop.PartnerName != "" && partners[shop.PartnerName]) {
			scoped = append(scoped, shop)
		}
	}
	return scoped
}

// UserByName finds a user in the state, or nil.
func (s *AppState) UserByName(username string) *User {
	for i := range s.Users {
		if s.Users[i].Username == username {
			return &s.Users[i]
		}
	}
	return nil
}
