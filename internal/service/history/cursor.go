package history

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"adminpanel/internal/entities"
)

type cursorToken struct {
	CreatedAt time.Time `json:"c"`
	ID        string    `json:"i"`
	Filter    string    `json:"f"`
}

func encodeCursor(order entities.Order, filter string) string {
	raw, err := json.Marshal(cursorToken{
		CreatedAt: order.CreatedAt,
		ID:        order.ID,
		Filter:    filter,
	})
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCursor(token string) (cursorToken, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return cursorToken{}, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}

	var decoded cursorToken
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return cursorToken{}, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}
	if decoded.ID == "" || decoded.CreatedAt.IsZero() {
		return cursorToken{}, ErrInvalidCursor
	}
	return decoded, nil
}
