package pipeline

import (
	"fmt"
	"strings"

	"github.com/jkcg-learning/debate/internal/domain"
)

// QualificationPrompt asks the moderator whether both debaters suit the topic.
func QualificationPrompt(debaterA, debaterB, topic string) string {
	return fmt.Sprintf("Verify if %s and %s are qualified to debate on '%s'. Provide a brief confirmation.", debaterA, debaterB, topic)
}

// TraitsPrompt asks the moderator for a debater's traits.
func TraitsPrompt(name string) string {
	return fmt.Sprintf("Provide a brief description of %s, highlighting their key traits, accomplishments, and debating style.", name)
}

// PriorRounds renders completed rounds in ascending order.
func PriorRounds(debaterA, debaterB string, history []domain.Round) string {
	var sb strings.Builder
	for _, r := range history {
		fmt.Fprintf(&sb, "Round %d:\n", r.Index+1)
		fmt.Fprintf(&sb, "%s: %s\n", debaterA, r.ArgumentA)
		fmt.Fprintf(&sb, "%s: %s\n\n", debaterB, r.ArgumentB)
	}
	return sb.String()
}

func roundHeader(topic string, round int, name string) string {
	return fmt.Sprintf("Debate Topic: %s\nRound %d\nAs %s, present your argument.\n", topic, round+1, name)
}

// DebaterAPrompt builds the opening prompt of a round. From the second round
// on it carries the prior rounds and B's last argument.
func DebaterAPrompt(topic string, round int, name, prior, opponentLast string) string {
	prompt := roundHeader(topic, round, name)
	if prior != "" {
		prompt += "Previous Rounds:\n" + prior + "\n"
		prompt += "Your opponent's last argument: " + opponentLast + "\n"
	}
	return prompt
}

// DebaterBPrompt builds the reply prompt of a round. B always sees A's
// argument from the same round.
func DebaterBPrompt(topic string, round int, name, prior, opponentCurrent string) string {
	prompt := roundHeader(topic, round, name)
	if prior != "" || opponentCurrent != "" {
		prompt += "Previous Rounds:\n" + prior + "\n"
		prompt += "Your opponent's last argument: " + opponentCurrent + "\n"
	}
	return prompt
}

// VerdictPrompt asks the moderator to judge the full transcript.
func VerdictPrompt(debaterA, debaterB string, history []domain.Round) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Based on the following debate between %s and %s, declare the winner and provide justification:\n\n", debaterA, debaterB)
	for _, r := range history {
		fmt.Fprintf(&sb, "**Round %d:**\n", r.Index+1)
		fmt.Fprintf(&sb, "%s: %s\n", debaterA, r.ArgumentA)
		fmt.Fprintf(&sb, "%s: %s\n\n", debaterB, r.ArgumentB)
	}
	return sb.String()
}
