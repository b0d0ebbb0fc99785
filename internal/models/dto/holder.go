package dto

type HolderRequest struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}
