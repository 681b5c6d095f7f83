package clean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSections(t *testing.T) {
	seg := Segments{
		Headnotes: "Tan v Lee [2014] SGCA 53\n\nContract - Formation",
		Core:      "1. The appeal is dismissed.",
		Footnotes: "[1] See the affidavit.",
	}
	out := RenderSections("Tan v Lee [2014] SGCA 53", seg)

	assert.Contains(t, out, "CASE: Tan v Lee [2014] SGCA 53")
	assert.Contains(t, out, sectionHeadnotes)
	assert.Contains(t, out, sectionCoreJudgment)
	assert.Contains(t, out, sectionFootnotes)
	assert.True(t, strings.HasSuffix(out, "[1] See the affidavit.\n"))
}

func TestRenderSectionsNoCaseNoFootnotes(t *testing.T) {
	out := RenderSections("", Segments{Core: "1. The appeal is dismissed."})
	assert.NotContains(t, out, "CASE:")
	assert.NotContains(t, out, sectionFootnotes)
	assert.Contains(t, out, sectionCoreJudgment)
}

func TestRenderHTML(t *testing.T) {
	seg := Segments{
		Headnotes: "Contract - Formation & acceptance",
		Core:      "1. The offer was < withdrawn.",
	}
	out := RenderHTML("tan_v_lee", seg)

	assert.Contains(t, out, "##tan_v_lee")
	assert.Contains(t, out, "Contract - Formation &amp; acceptance")
	assert.Contains(t, out, "&lt; withdrawn")
	assert.Contains(t, out, `<div class="section-title">Core Judgment</div>`)
}

func TestRenderHTMLEmptySections(t *testing.T) {
	out := RenderHTML("", Segments{})
	assert.Contains(t, out, "No headnotes detected")
	assert.Contains(t, out, "No core detected")
	assert.NotContains(t, out, `##`)
}

func TestRenderHTMLBoldsHeadings(t *testing.T) {
	out := RenderHTML("f", Segments{Core: "(1) Whether time ran\n\n2. It did not."})
	assert.Contains(t, out, "<p><strong>(1) Whether time ran</strong></p>")
	assert.Contains(t, out, "<p>2. It did not.</p>")
}

func TestRenderMarkdown(t *testing.T) {
	seg := Segments{
		Headnotes: "Contract - Formation",
		Core:      "1. The appeal is dismissed.",
	}
	out, err := RenderMarkdown("tan_v_lee", seg)
	require.NoError(t, err)
	assert.Contains(t, out, "The appeal is dismissed.")
	assert.Contains(t, out, "Contract - Formation")
}
