package salarysdk

// LoginRequest is the JSON body of POST /login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// SalaryResponse is returned by GET /salary on success.
type SalaryResponse struct {
	Login      string `json:"login"`
	Salary     string `json:"salary"`
	SalaryDate string `json:"salary_date"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks is only set by /readyz
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of the gateway's dependencies.
type HealthChecks struct {
	// Store is "ok" or the error returned by the token store ping
	Store string `json:"store"`
}
