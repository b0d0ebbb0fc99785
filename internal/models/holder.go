package models

// PolicyHolder is the insured person. Created directly by an admin or
// implicitly on a user's first purchase, in which case UserID links it back
// to the login identity.
type PolicyHolder struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id,omitempty"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}
