package insights

import (
	"fmt"
	"strings"

	"github.com/devika/neuroquest/internal/store"
)

const systemPrompt = `You are a friendly cognitive training coach reviewing a player's recent quest history.

Rules:
- Produce exactly 3 short insights, each 1-2 sentences, addressed directly to the player.
- Base every insight on the supplied data. Never invent scores or sessions.
- Lead with something the player is doing well, then point out one concrete area to improve, then suggest a specific next step (a quest to play or a habit to keep).
- Keep the tone warm and encouraging. No medical or clinical claims.`

// buildUserMessage renders the profile and recent results as prompt context.
func buildUserMessage(p store.Profile, recent []store.QuestResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Level: %d\n", p.Level)
	fmt.Fprintf(&b, "Total XP: %d\n", p.XP)
	fmt.Fprintf(&b, "Streak: %d days\n", p.StreakDays)
	fmt.Fprintf(&b, "Skill scores: focus %d, memory %d, speed %d, switch %d, calm %d\n",
		p.FocusScore, p.MemoryScore, p.SpeedScore, p.SwitchScore, p.CalmScore)

	b.WriteString("\nRecent quests (newest first):\n")
	if len(recent) == 0 {
		b.WriteString("None yet\n")
	}
	for i, r := range recent {
		fmt.Fprintf(&b, "%d. %s: score %d, accuracy %.0f%%, best combo %d, xp %d\n",
			i+1, r.QuestType, r.Score, r.Accuracy, r.MaxCombo, r.XPEarned)
	}

	return b.String()
}
