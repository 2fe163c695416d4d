package project

// CreateProjectRequest - тело POST /projects
type CreateProjectRequest struct {
	Name           string            `json:"name"`
	AllowedOrigins []string          `json:"allowed_origins,omitempty"` // по умолчанию ["*"]
	ThemeConfig    map[string]string `json:"theme_config,omitempty"`
}
