package provider

// PageMetadata is the structured result of inspecting a saved URL.
type PageMetadata struct {
	Title         string
	ThumbnailURL  *string
	Platform      string
	ContentType   string
	SuggestedTags []string
}
