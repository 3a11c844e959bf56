package theme_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/models"
	"github.com/sanyamChaudhary27/project-panther/stores"
)

var theme *stores.ThemeStore

// Init wires the theme store into this controller
func Init(t *stores.ThemeStore) {
	theme = t
}

// GetTheme returns the current mode and its style variables
func GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Theme retrieved", models.ThemeResponse{
		Mode:      theme.Mode(),
		Variables: theme.Variables(),
	}))
}

// ToggleTheme flips dark/light and returns the new state
func ToggleTheme(c *gin.Context) {
	theme.Toggle()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Theme toggled", models.ThemeResponse{
		Mode:      theme.Mode(),
		Variables: theme.Variables(),
	}))
}
