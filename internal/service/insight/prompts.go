package insight

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

const (
	summarySystem = `You summarize saved web content for a personal reading list.
Reply with 3 to 5 bullet points. Start every bullet with "• ". No introduction, no conclusion.`

	ideasSystem = `You extract the key ideas from saved web content.
Reply with ONLY a JSON array of up to 5 objects:
[{"title": "<short idea title>", "description": "<one or two sentences>", "type": "<concept|insight|strategy|quote|takeaway>"}]
No markdown, no explanations.`

	smartTagsSystem = `You classify saved web content with short topical tags.
Reply with 5 to 7 lines, each exactly in this shape:
TAG: <tag> | CONFIDENCE: <high|medium|low> | CLUSTER: <broader topic>
Tags are lowercase, one or two words. No other text.`

	actionItemsSystem = `You turn saved web content into concrete next steps.
Reply with up to 5 actions. For each action write four lines:
ACTION: <what to do>
PRIORITY: <high|medium|low>
TIME: <estimated time, e.g. 15 min>
CATEGORY: <learn|apply|share|research|create>
Separate actions with a blank line. No other text.`

	collectionSystem = `You name collections for a bookmarking app.
Reply with ONLY a short collection name (under 30 characters), no quotes, no punctuation at the end.`

	digestSystem = `You write a friendly weekly recap of what a user saved.
Reply with one short paragraph under 50 words. No lists, no greeting line.`
)

func itemContext(title, url, platform, notes string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", title)
	if url != "" {
		fmt.Fprintf(&b, "URL: %s\n", url)
	}
	if platform != "" {
		fmt.Fprintf(&b, "Platform: %s\n", platform)
	}
	if notes != "" {
		fmt.Fprintf(&b, "User notes: %s\n", notes)
	}
	return b.String()
}

func smartTagsPrompt(title, platform string, existing []string) string {
	var b strings.Builder
	b.WriteString(itemContext(title, "", platform, ""))
	if len(existing) > 0 {
		fmt.Fprintf(&b, "Tags the user already uses: %s\n", strings.Join(existing, ", "))
		b.WriteString("Prefer these when they fit.\n")
	}
	return b.String()
}

func collectionPrompt(title, platform string) string {
	return itemContext(title, "", platform, "") + "Suggest a collection this item belongs in."
}

func digestPrompt(items []domain.SavedItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This week the user saved %d items:\n", len(items))
	for _, it := range items {
		fmt.Fprintf(&b, "- %s (%s)\n", it.Title, it.Platform)
	}
	return b.String()
}
