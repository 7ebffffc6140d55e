package models

// RequestStatus is the tri-state lifecycle of every request entity. Only an
// admin action moves a request out of pending, applying the approved side
// effect in the same logical operation.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// MachineRequest asks for a new terminal to be registered on a shop.
type MachineRequest struct {
	ID          string        `json:"id"`
	ShopID      string        `json:"shopId"`
	ShopName    string        `json:"shopName"`
	TID         string        `json:"tid"`
	TripleCode  string        `json:"tripleCode,omitempty"`
	Type        string        `json:"type"` // "standard" or "hala"
	Status      RequestStatus `json:"status"`
	Username    string        `json:"username"`
	RequestDate int64         `json:"requestDate"`
}

// ShopRequest asks for a new shop to be created.
type ShopRequest struct {
	ID                string        `json:"id"`
	UserID            string        `json:"userId"`
	Username          string        `json:"username"`
	RequestedName     string        `json:"requestedName"`
	RequestedLocation string        `json:"requestedLocation"`
	RequestedCategory string        `json:"requestedCategory,omitempty"`
	PartnerName       string        `json:"partnerName,omitempty"`
	IsDirect          bool          `json:"isDirect"`
	InitialTID        string        `json:"initialTid,omitempty"`
	InitialTripleCode string        `json:"initialTripleCode,omitempty"`
	Status            RequestStatus `json:"status"`
	RequestDate       int64         `json:"requestDate"`
}

// ShopRenameRequest asks for an existing shop to be renamed.
type ShopRenameRequest struct {
	ID          string        `json:"id"`
	ShopID      string        `json:"shopId"`
	OldName     string        `json:"oldName"`
	NewName     string        `json:"newName"`
	Status      RequestStatus `json:"status"`
	Username    string        `json:"username"`
	RequestDate int64         `json:"requestDate"`
}

// AccountRegistrationRequest asks for a shop-side account to be created.
type AccountRegistrationRequest struct {
	ID          string        `json:"id"`
	ShopName    string        `json:"shopName"`
	WhatsApp    string        `json:"whatsapp,omitempty"`
	Username    string        `json:"username"`
	Password    string        `json:"password"`
	Status      RequestStatus `json:"status"`
	RequestDate int64         `json:"requestDate"`
}
