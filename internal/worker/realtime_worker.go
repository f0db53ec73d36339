package worker

import (
	"github.com/Lucasdx7/Sistema-sub000/internal/service"
)

// StartRealtimeRelay registers the event-to-broadcast handlers.
func StartRealtimeRelay(relay *service.RealtimeRelay) {
	if relay == nil {
		return
	}
	relay.RegisterHandlers()
}
