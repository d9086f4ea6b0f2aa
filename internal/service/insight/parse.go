package insight

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

const (
	maxSummaryBullets = 5
	maxIdeas          = 5
	maxSmartTags      = 7
	maxActionItems    = 5
	maxCollectionName = 30
	defaultConfidence = "medium"
	defaultPriority   = "medium"
	defaultCategory   = "learn"
	defaultTagCluster = "General"
	fallbackIdeaType  = domain.IdeaInsight
)

var bulletMarkers = []string{"•", "-", "*", "–", "·"}

// parseBullets keeps lines that start with a bullet marker or a list number,
// without the marker.
func parseBullets(text string) []string {
	out := make([]string, 0, maxSummaryBullets)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		rest, ok := cutBullet(line)
		if !ok {
			continue
		}
		if rest = strings.TrimSpace(rest); rest == "" {
			continue
		}
		out = append(out, rest)
		if len(out) == maxSummaryBullets {
			break
		}
	}
	return out
}

// cutBullet strips a leading list marker. The marker must be followed by
// whitespace, so "**Bold:**" headers and "3.5 million" prose are not bullets.
func cutBullet(line string) (string, bool) {
	for _, m := range bulletMarkers {
		if rest, ok := strings.CutPrefix(line, m); ok {
			return rest, startsWithSpace(rest)
		}
	}
	// "1." or "1)"
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		rest := line[i+1:]
		return rest, startsWithSpace(rest)
	}
	return "", false
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsSpace(r)
}

// stripFences removes a surrounding Markdown code fence, if any.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		// Drop the language tag line.
		text = text[nl+1:]
	}
	if end := strings.LastIndex(text, "```"); end >= 0 {
		text = text[:end]
	}
	return strings.TrimSpace(text)
}

type rawIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// parseIdeas decodes a JSON array of ideas. When the reply is not valid JSON
// it falls back to IDEA:/DESC:/TYPE: markers or loose "key": "value" lines.
func parseIdeas(text string) []domain.ExtractedIdea {
	body := stripFences(text)
	if raw := decodeIdeaArray(body); len(raw) > 0 {
		return finishIdeas(raw)
	}
	return finishIdeas(scanIdeas(body))
}

// decodeIdeaArray tries each '[' in turn and returns the first non-empty
// JSON array of ideas that decodes from there. Trailing prose is ignored.
func decodeIdeaArray(body string) []rawIdea {
	for off := 0; off < len(body); {
		i := strings.IndexByte(body[off:], '[')
		if i < 0 {
			break
		}
		start := off + i
		var raw []rawIdea
		if err := json.NewDecoder(strings.NewReader(body[start:])).Decode(&raw); err == nil && len(raw) > 0 {
			return raw
		}
		off = start + 1
	}
	return nil
}

func scanIdeas(text string) []rawIdea {
	var (
		out []rawIdea
		cur *rawIdea
	)
	flush := func() {
		if cur != nil && cur.Title != "" {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, line := range strings.Split(text, "\n") {
		key, value, ok := splitMarker(line)
		if !ok {
			continue
		}
		switch key {
		case "idea", "title":
			flush()
			cur = &rawIdea{Title: value}
		case "desc", "description":
			if cur != nil {
				cur.Description = value
			}
		case "type":
			if cur != nil {
				cur.Type = value
			}
		}
	}
	flush()
	return out
}

func finishIdeas(raw []rawIdea) []domain.ExtractedIdea {
	out := make([]domain.ExtractedIdea, 0, maxIdeas)
	for _, r := range raw {
		title := strings.TrimSpace(r.Title)
		if title == "" {
			continue
		}
		t := domain.IdeaType(strings.ToLower(strings.TrimSpace(r.Type)))
		if !t.IsValid() {
			t = fallbackIdeaType
		}
		out = append(out, domain.ExtractedIdea{
			Title:       title,
			Description: strings.TrimSpace(r.Description),
			Type:        t,
		})
		if len(out) == maxIdeas {
			break
		}
	}
	return out
}

// splitMarker parses "KEY: value" or `"key": "value",` into a lowercased key
// and a cleaned value. Leading bullets are ignored.
func splitMarker(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if rest, isBullet := cutBullet(line); isBullet {
		line = strings.TrimSpace(rest)
	}
	k, v, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	key = strings.ToLower(strings.Trim(strings.TrimSpace(k), `"*`))
	value = strings.TrimSpace(v)
	value = strings.TrimSuffix(value, ",")
	if unq, err := strconv.Unquote(value); err == nil {
		value = unq
	}
	value = strings.Trim(value, `"*`)
	return key, strings.TrimSpace(value), key != ""
}

// parseSmartTags reads "TAG: x | CONFIDENCE: y | CLUSTER: z" lines. A tag is
// new when the user has no tag with the same lowercased form.
func parseSmartTags(text string, existing []string) []domain.SmartTag {
	out := make([]domain.SmartTag, 0, maxSmartTags)
	seen := make(map[string]struct{})

	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(strings.ToUpper(line), "TAG:") {
			continue
		}
		st := domain.SmartTag{Confidence: defaultConfidence, Cluster: defaultTagCluster}
		for _, part := range strings.Split(line, "|") {
			key, value, ok := splitMarker(part)
			if !ok || value == "" {
				continue
			}
			switch key {
			case "tag":
				st.Tag = strings.ToLower(value)
			case "confidence":
				st.Confidence = strings.ToLower(value)
			case "cluster":
				st.Cluster = value
			}
		}
		if st.Tag == "" {
			continue
		}
		if _, dup := seen[st.Tag]; dup {
			continue
		}
		seen[st.Tag] = struct{}{}
		st.IsNew = !domain.ContainsFold(existing, st.Tag)
		out = append(out, st)
		if len(out) == maxSmartTags {
			break
		}
	}
	return out
}

// parseActionItems groups ACTION:/PRIORITY:/TIME:/CATEGORY: lines into
// records. Each ACTION: line starts a new record.
func parseActionItems(text string) []domain.ActionItem {
	out := make([]domain.ActionItem, 0, maxActionItems)
	var cur *domain.ActionItem
	flush := func() {
		if cur != nil && cur.Task != "" && len(out) < maxActionItems {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, line := range strings.Split(text, "\n") {
		key, value, ok := splitMarker(line)
		if !ok {
			continue
		}
		switch key {
		case "action":
			flush()
			cur = &domain.ActionItem{Task: value, Priority: defaultPriority, Category: defaultCategory}
		case "priority":
			if cur != nil && value != "" {
				cur.Priority = strings.ToLower(value)
			}
		case "time":
			if cur != nil {
				cur.EstimatedTime = value
			}
		case "category":
			if cur != nil && value != "" {
				cur.Category = strings.ToLower(value)
			}
		}
	}
	flush()
	return out
}

// cleanCollectionName takes the first non-empty line of a reply and trims
// quotes and trailing punctuation. Returns "" when nothing usable is left.
func cleanCollectionName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		name := strings.TrimSpace(line)
		if _, v, ok := splitMarker(name); ok && strings.Contains(strings.ToLower(name), "name:") {
			name = v
		}
		name = strings.Trim(name, "\"'`*")
		name = strings.TrimRightFunc(name, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSpace(r)
		})
		name = domain.NormalizeName(name)
		if name == "" {
			continue
		}
		if utf8.RuneCountInString(name) >= maxCollectionName {
			return ""
		}
		return name
	}
	return ""
}
