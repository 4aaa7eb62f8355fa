package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marklabs/mark/internal/domain"
)

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, stripFences(" {\"a\":1} \n"))
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
}

func TestToolPromptsCoverEveryTextTool(t *testing.T) {
	for _, tool := range []domain.ToolKind{
		domain.ToolScript, domain.ToolThumbnail, domain.ToolPersuasive,
		domain.ToolAd, domain.ToolHashtag, domain.ToolBio,
		domain.ToolNicheExplosion, domain.ToolContract, domain.ToolInfiltrate,
	} {
		_, ok := toolPrompts[tool]
		assert.True(t, ok, "missing prompt for %s", tool)
	}

	// The campaign tool goes through the structured campaign path, not
	// the plain-text prompt table.
	_, ok := toolPrompts[domain.ToolViralCampaign]
	assert.False(t, ok)
}
