package live

import (
	"log"

	"github.com/MAH-7/Attendance-Outstation-Tracker/app/realtime"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SetupLiveRoutes mounts the websocket endpoint the dashboards subscribe
// to for change events.
func SetupLiveRoutes(app *fiber.App, hub *realtime.Hub) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", websocket.New(streamEvents(hub)))
}

// streamEvents pumps hub events to one connected client until it goes
// away. Incoming messages are drained only to detect the close.
func streamEvents(hub *realtime.Hub) func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		sub := hub.Subscribe()
		defer hub.Unsubscribe(sub.ID)

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case event, ok := <-sub.C:
				if !ok {
					return
				}
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Dropping dashboard client %s: %v", sub.ID, err)
					return
				}
			case <-closed:
				return
			}
		}
	}
}
