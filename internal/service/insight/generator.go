package insight

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

const maxDigestItems = 10

// completer is the chat-completion endpoint used by the generator.
type completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Generator turns item context into LLM-derived insights. Every method
// degrades to an empty result: failures are logged, never returned.
type Generator struct {
	llm completer
	log *slog.Logger
}

// NewGenerator creates a generator. A nil completer disables all insights.
func NewGenerator(llm completer, logger *slog.Logger) *Generator {
	return &Generator{
		llm: llm,
		log: logger.With("service", "insight_generator"),
	}
}

// Enabled reports whether an LLM client is configured.
func (g *Generator) Enabled() bool {
	return g.llm != nil
}

func (g *Generator) ask(ctx context.Context, op, system, prompt string) (string, bool) {
	if g.llm == nil {
		return "", false
	}
	text, err := g.llm.Complete(ctx, system, prompt)
	if err != nil {
		g.log.WarnContext(ctx, "llm call failed", slog.String("op", op), slog.String("error", err.Error()))
		return "", false
	}
	return text, true
}

// Summarize returns up to five summary bullets.
func (g *Generator) Summarize(ctx context.Context, title, url, platform string) []string {
	text, ok := g.ask(ctx, "summarize", summarySystem, itemContext(title, url, platform, ""))
	if !ok {
		return []string{}
	}
	bullets := parseBullets(text)
	if len(bullets) == 0 {
		g.log.WarnContext(ctx, "llm reply had no bullets", slog.String("op", "summarize"))
	}
	return bullets
}

// ExtractIdeas returns up to five key ideas.
func (g *Generator) ExtractIdeas(ctx context.Context, title, url, platform, notes string) []domain.ExtractedIdea {
	text, ok := g.ask(ctx, "extract_ideas", ideasSystem, itemContext(title, url, platform, notes))
	if !ok {
		return []domain.ExtractedIdea{}
	}
	return parseIdeas(text)
}

// SuggestSmartTags returns up to seven classified tags. A tag is new when
// existing has no case-insensitive match.
func (g *Generator) SuggestSmartTags(ctx context.Context, title, platform string, existing []string) []domain.SmartTag {
	text, ok := g.ask(ctx, "smart_tags", smartTagsSystem, smartTagsPrompt(title, platform, existing))
	if !ok {
		return []domain.SmartTag{}
	}
	return parseSmartTags(text, existing)
}

// GenerateActionItems returns up to five open action items.
func (g *Generator) GenerateActionItems(ctx context.Context, title, url, platform, notes string) []domain.ActionItem {
	text, ok := g.ask(ctx, "action_items", actionItemsSystem, itemContext(title, url, platform, notes))
	if !ok {
		return []domain.ActionItem{}
	}
	return parseActionItems(text)
}

// SuggestCollectionName asks for a short collection name. Returns "" when
// no usable name came back.
func (g *Generator) SuggestCollectionName(ctx context.Context, title, platform string) string {
	text, ok := g.ask(ctx, "suggest_collection", collectionSystem, collectionPrompt(title, platform))
	if !ok {
		return ""
	}
	return cleanCollectionName(text)
}

// WeeklyDigest writes a short recap of the given items. Only the first ten
// are used. Returns nil when there is nothing to summarize.
func (g *Generator) WeeklyDigest(ctx context.Context, items []domain.SavedItem) *string {
	if len(items) == 0 {
		return nil
	}
	if len(items) > maxDigestItems {
		items = items[:maxDigestItems]
	}
	text, ok := g.ask(ctx, "weekly_digest", digestSystem, digestPrompt(items))
	if !ok || text == "" {
		return nil
	}
	return &text
}
