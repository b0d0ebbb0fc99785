package models

// User roles. A role is fixed at registration and never updated afterwards.
const (
	RoleAdmin        = "admin"
	RolePolicyHolder = "policy_holder"
)
