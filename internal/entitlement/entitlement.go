// Package entitlement decides which quests are unlocked for the player.
package entitlement

import (
	"os"
	"strconv"

	"github.com/devika/neuroquest/internal/games"
)

// Entitlement holds the player's unlock state.
type Entitlement struct {
	Premium bool
}

// FromEnv reads the unlock state from NEUROQUEST_PREMIUM. Any value that
// strconv.ParseBool accepts as true unlocks the premium quests.
func FromEnv() Entitlement {
	v, err := strconv.ParseBool(os.Getenv("NEUROQUEST_PREMIUM"))
	return Entitlement{Premium: err == nil && v}
}

// Allows reports whether the given quest is playable.
func (e Entitlement) Allows(def games.Definition) bool {
	return e.Premium || !def.Premium
}
