// Package qrcode renders the phone join link for a session as a QR
// code image shown on the host screen.
package qrcode

import (
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

// JoinPNG encodes the join URL for a game code as a 256px PNG.
func JoinPNG(host, gameCode string) ([]byte, error) {
	url := fmt.Sprintf("http://%s/join.html?game=%s", host, gameCode)
	return qr.Encode(url, qr.Medium, 256)
}
