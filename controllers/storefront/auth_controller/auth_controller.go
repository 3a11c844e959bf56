package auth_controller

import (
	"github.com/sanyamChaudhary27/project-panther/models"
	"github.com/sanyamChaudhary27/project-panther/notify"
	"github.com/sanyamChaudhary27/project-panther/stores"
)

var (
	auth   *stores.AuthStore
	toasts *notify.Queue
)

// Init wires the auth store and the toast queue into this controller
func Init(a *stores.AuthStore, t *notify.Queue) {
	auth = a
	toasts = t
}

func sessionPayload() models.SessionResponse {
	return models.SessionResponse{
		LoggedIn: auth.IsLoggedIn(),
		Email:    auth.UserEmail(),
		User:     auth.User(),
	}
}
