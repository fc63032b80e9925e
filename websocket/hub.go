package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// AppointmentEvent is pushed to the student and counselor involved in a
// booking whenever it is created or its status changes.
type AppointmentEvent struct {
	Type          string    `json:"type"` // "appointment_created" or "appointment_status_changed"
	AppointmentID uuid.UUID `json:"appointment_id"`
	StudentID     uuid.UUID `json:"student_id"`
	CounselorID   uuid.UUID `json:"counselor_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Status        string    `json:"status"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *AppointmentEvent)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			deliver(event, event.StudentID)
			deliver(event, event.CounselorID)
		}
	}
}

func deliver(event *AppointmentEvent, userID uuid.UUID) {
	clientsMu.RLock()
	conn, ok := clients[userID]
	clientsMu.RUnlock()
	if !ok {
		return
	}

	if err := conn.WriteJSON(event); err != nil {
		log.Printf("Error sending event to client %s: %v", userID, err)
		conn.Close()
		clientsMu.Lock()
		delete(clients, userID)
		clientsMu.Unlock()
	}
}

// NotifyAppointment hands an event to the hub without blocking the
// request path when nobody is listening.
func NotifyAppointment(event *AppointmentEvent) {
	select {
	case Broadcast <- event:
	default:
		log.Printf("Hub busy, dropping event for appointment %s", event.AppointmentID)
	}
}
