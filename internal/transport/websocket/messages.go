package websocket

const (
	TypeSolve = "solve"
	TypePing  = "ping"
	TypeMove  = "move"
	TypePong  = "pong"
	TypeError = "error"
)

// ClientMessage is an incoming WebSocket frame.
type ClientMessage struct {
	Type       string `json:"type"`
	ID         string `json:"id,omitempty"`
	Board      string `json:"board,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// ServerMessage is an outgoing WebSocket frame. Column is 1-based.
type ServerMessage struct {
	Type    string `json:"type"`
	ID      string `json:"id,omitempty"`
	Column  int    `json:"column,omitempty"`
	Score   int    `json:"score,omitempty"`
	Depth   int    `json:"depth,omitempty"`
	Cached  bool   `json:"cached,omitempty"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
