package ai

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

// ComposeKind selects the prompt used for an assisted-writing request.
type ComposeKind string

const (
	// ComposePolishNote rewrites a note for clarity while keeping its meaning.
	ComposePolishNote ComposeKind = "polish_note"
	// ComposeChoreDescription drafts a short description from a chore title.
	ComposeChoreDescription ComposeKind = "chore_description"
	// ComposeEventTitle suggests a concise calendar title for a raw phrase.
	ComposeEventTitle ComposeKind = "event_title"
)

var composePrompts = map[ComposeKind]string{
	ComposePolishNote: "You edit short family notes. Rewrite the note below for clarity " +
		"and warmth without changing its meaning or adding new facts. Reply with the " +
		"rewritten note only.",
	ComposeChoreDescription: "You help organize household chores. Write a one or two " +
		"sentence description of the chore named below, including what done looks like. " +
		"Reply with the description only.",
	ComposeEventTitle: "You name calendar events. Suggest a concise title (at most six " +
		"words) for the event described below. Reply with the title only.",
}

// ValidComposeKind reports whether kind is one of the supported prompts.
func ValidComposeKind(kind ComposeKind) bool {
	_, ok := composePrompts[kind]
	return ok
}

// Compose runs the assisted-writing prompt for kind over the given text.
func (p *Provider) Compose(ctx context.Context, kind ComposeKind, text string) (string, error) {
	prompt, ok := composePrompts[kind]
	if !ok {
		return "", errors.Errorf("unknown compose kind %q", kind)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("text is required")
	}

	result, err := p.Chat(ctx, []Message{
		{Role: openai.ChatMessageRoleSystem, Content: prompt},
		{Role: openai.ChatMessageRoleUser, Content: text},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}
