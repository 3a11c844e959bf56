package notification_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/models"
	"github.com/sanyamChaudhary27/project-panther/notify"
)

var toasts *notify.Queue

// Init wires the toast queue into this controller
func Init(t *notify.Queue) {
	toasts = t
}

// GetNotifications snapshots the toast queue in insertion order
func GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notifications retrieved", toasts.Toasts()))
}
