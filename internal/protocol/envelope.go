package protocol

import "encoding/json"

// Envelope frames every WebSocket message in both directions. Type
// selects the payload shape; move messages carry the move arguments
// directly in the payload.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Decode unmarshals the payload into v.
func (e Envelope) Decode(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// Encode wraps a payload in an envelope. Payloads are fixed message
// structs and engine views, so a marshal failure is a programming
// error, not an input error.
func Encode(typ string, payload interface{}) Envelope {
	data, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return Envelope{Type: typ, Payload: data}
}

// IsMove reports whether the message type is an in-game move rather
// than a lobby or session message.
func IsMove(typ string) bool {
	switch typ {
	case MsgStartingContract, MsgPrivateContract, MsgMarketContract,
		MsgClaimMarket, MsgAddContract, MsgToggleFulfilled,
		MsgDeleteContract, MsgAcquireRailroad, MsgAddCity, MsgEndTurn:
		return true
	}
	return false
}
