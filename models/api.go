package models

// APIResponse is the wire format shared by the message-carrying endpoints.
// Success responses carry Msg plus whichever payload field applies; failures
// carry Error.
type APIResponse struct {
	Success bool          `json:"success"`
	Msg     string        `json:"msg,omitempty"`
	Error   string        `json:"error,omitempty"`
	User    *UserIdentity `json:"user,omitempty"`
	Token   string        `json:"token,omitempty"`
}

// ListLocationsResponse is the wire format of a successful location listing.
// The locations key is always present, `[]` when the organization has no
// saved locations.
type ListLocationsResponse struct {
	Success   bool        `json:"success"`
	Locations []*Location `json:"locations"`
}

// UserIdentity is the identity payload returned by a successful login.
type UserIdentity struct {
	Email            string `json:"email"`
	OrganizationName string `json:"organizationName"`
}
