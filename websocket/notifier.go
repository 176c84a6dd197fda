package websocket

import (
	"encoding/json"
	"log"

	"github.com/nanalmoa/nanalmoa/models"
)

// Notifier pushes invitation lifecycle events to the recipient's open
// websocket connections. It satisfies services.NotificationSink.
// Delivery is best effort; users without a connection miss the push and
// catch up from the invitation list.
type Notifier struct{}

// NotificationMessage is the wire format of a pushed event.
type NotificationMessage struct {
	Type       string             `json:"type"`
	Invitation *models.Invitation `json:"invitation"`
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Notify(recipientUUID string, eventType string, invitation *models.Invitation) {
	payload, err := json.Marshal(NotificationMessage{
		Type:       eventType,
		Invitation: invitation,
	})
	if err != nil {
		log.Printf("error marshaling notification: %v", err)
		return
	}

	hub.sendToUser(recipientUUID, payload)
}
