package listener

import (
	"encoding/json"

	"github.com/cameroncuttingedge/tic_tac_toe_ai/events"
	"github.com/rs/zerolog/log"
)

// StartEventListening journals every event from ch until ch is closed.
// The returned channel is closed once the last event has been logged.
func StartEventListening(ch <-chan events.GameEvent) <-chan struct{} {
	done := make(chan struct{})
	log.Debug().Msg("Event listener starting...")
	go func() {
		defer close(done)
		counts := make(map[string]int)
		for gameEvent := range ch {
			gameEventData, err := json.Marshal(gameEvent.Data)
			if err != nil {
				log.Error().Err(err).Msg("Failed to marshal game event data to JSON")
				continue
			}
			counts[gameEvent.Data.ID]++

			entry := log.Info()
			if !gameEvent.Data.Over {
				entry = log.Debug()
			}
			entry.
				Str("gameID", gameEvent.Data.ID).
				Int("event", counts[gameEvent.Data.ID]).
				RawJSON("gameState", gameEventData).
				Msg("Received game event")
		}
		log.Debug().Int("games", len(counts)).Msg("Event listener goroutine exited.")
	}()
	return done
}
