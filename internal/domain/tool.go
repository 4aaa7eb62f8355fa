package domain

// ToolKind identifies a content-generation tool.
type ToolKind string

const (
	ToolScript         ToolKind = "script"
	ToolThumbnail      ToolKind = "thumbnail"
	ToolPersuasive     ToolKind = "persuasive"
	ToolAd             ToolKind = "ad"
	ToolHashtag        ToolKind = "hashtag"
	ToolBio            ToolKind = "bio"
	ToolNicheExplosion ToolKind = "niche_explosion"
	ToolContract       ToolKind = "contract"
	ToolInfiltrate     ToolKind = "infiltrate"
	ToolViralCampaign  ToolKind = "viral_campaign"
)

// ValidTool reports whether kind names a known tool.
func ValidTool(kind ToolKind) bool {
	switch kind {
	case ToolScript, ToolThumbnail, ToolPersuasive, ToolAd, ToolHashtag,
		ToolBio, ToolNicheExplosion, ToolContract, ToolInfiltrate,
		ToolViralCampaign:
		return true
	}
	return false
}

// GenerationResult is a tagged union of the two payload shapes the
// content-generation entry point can produce: plain text for most tools,
// a structured campaign for ToolViralCampaign. Exactly one of Text and
// Campaign is populated, discriminated by Tool.
type GenerationResult struct {
	Tool     ToolKind       `json:"tool"`
	Text     string         `json:"text,omitempty"`
	Campaign *ViralCampaign `json:"campaign,omitempty"`
}
