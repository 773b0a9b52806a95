package relay

import "encoding/json"

// Wire event types, matching the JSON contract the editor frontends speak.
const (
	eventJoin           = "join"
	eventInit           = "init"
	eventCodeChange     = "code_change"
	eventCodeUpdate     = "code_update"
	eventLanguageChange = "language_change"
	eventLanguageUpdate = "language_update"
	eventError          = "error"
)

// inboundEvent is the superset of all client-to-server payloads. Events are
// small and their fields do not collide, so a single envelope decode is enough.
type inboundEvent struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	Code      string `json:"code"`
	Language  string `json:"language"`
}

type initEvent struct {
	Type     string `json:"type"`
	Code     string `json:"code"`
	Language string `json:"language"`
}

type codeUpdateEvent struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

type languageUpdateEvent struct {
	Type     string `json:"type"`
	Language string `json:"language"`
}

type errorEvent struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// encode marshals a fixed-shape outbound event. The event structs contain
// nothing that can fail to marshal.
func encode(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
