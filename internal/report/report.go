// Package report prints the human-readable run summary shown on stdout
// after a successful import, following the teacher's banner-plus-structured-
// log pattern (spec.md §6 "prints a short human-readable report").
package report

import (
	"fmt"

	"github.com/jusbr/leiimporter/internal/model"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/banner"
)

// Print renders the closing summary: article counts, slug-warning count,
// and the output path the document was written to.
func Print(doc *model.Document, outputPath string, mismatches int, logger arbor.ILogger) {
	revokedCount := 0
	for _, a := range doc.Artigos {
		revokedCount += len(a.RevokedVersions)
	}

	b := banner.New().
		SetStyle(banner.StyleSingle).
		SetBorderColor(banner.ColorGreen).
		SetTextColor(banner.ColorWhite).
		SetWidth(60)

	fmt.Printf("\n")
	b.PrintTopLine()
	b.PrintCenteredText("IMPORT COMPLETE")
	b.PrintSeparatorLine()
	b.PrintKeyValue("Law URN", doc.Lei.URN, 16)
	b.PrintKeyValue("Articles", fmt.Sprintf("%d", len(doc.Artigos)), 16)
	b.PrintKeyValue("Revoked versions", fmt.Sprintf("%d", revokedCount), 16)
	b.PrintKeyValue("Slug warnings", fmt.Sprintf("%d", mismatches), 16)
	b.PrintKeyValue("Output", outputPath, 16)
	b.PrintBottomLine()
	fmt.Printf("\n")

	logger.Info().
		Str("urn", doc.Lei.URN).
		Int("articles", len(doc.Artigos)).
		Int("revoked_versions", revokedCount).
		Int("slug_warnings", mismatches).
		Str("output", outputPath).
		Msg("import complete")

	if mismatches > 0 {
		logger.Warn().Int("count", mismatches).Msg("URN-to-slug validation mismatches were observed; emission proceeded anyway")
	}
}
