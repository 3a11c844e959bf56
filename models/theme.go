package models

// Persisted theme enum values
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ThemeResponse carries the current mode and the style variables the
// frontend applies to the document root.
type ThemeResponse struct {
	Mode      string            `json:"mode"`
	Variables map[string]string `json:"variables"`
}
