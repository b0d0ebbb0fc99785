package dto

type PurchaseRequest struct {
	PolicyID int64  `json:"policy_id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
}
