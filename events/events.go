package events

type GameState struct {
	ID       string       `json:"id"`
	Board    [3][3]string `json:"board"`
	Turn     string       `json:"turn"`
	Winner   string       `json:"winner"`
	Over     bool         `json:"over"`
	Human    string       `json:"human"`
	Computer string       `json:"computer"`
	Status   string       `json:"status"`
	Moves    int          `json:"moves"`
	LastMove int          `json:"lastMove"`
}

type GameEvent struct {
	Data GameState
}

// Buffer is the capacity main gives the event channel.
const Buffer = 100

func NewChannel() chan GameEvent {
	return make(chan GameEvent, Buffer)
}
