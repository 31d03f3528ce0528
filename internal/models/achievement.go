package models

// Achievement is a one-shot unlockable badge. Unlocked is monotonic: once
// true it never transitions back, and UnlockedAt is set exactly once.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	Unlocked    bool   `json:"unlocked"`
	UnlockedAt  string `json:"unlocked_at,omitempty"` // RFC3339 timestamp
}
