package domain

// EnforceRequest asks whether a role may perform an action on a resource.
type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

const (
	RoleEmployee = "EMPLOYEE"
	RoleManager  = "MANAGER"
	RoleHRAdmin  = "HR_ADMIN"
)
