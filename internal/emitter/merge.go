package emitter

import "github.com/jusbr/leiimporter/internal/model"

// mergeRevokedVersions groups emitted articles by Number. Where a number
// has more than one emitted article and one of them is in force, every
// other entry of that number is folded into RevokedVersions of the
// in-force one (spec.md §4.7 step 7). If no entry of the group is in
// force, none are merged: RevokedVersions only ever hangs off an
// in-force article (spec.md §8, "if revoked_versions is non-empty then
// X.in_force == true"), so an entirely-revoked group is emitted as
// separate top-level entries instead.
func mergeRevokedVersions(articles []*model.Article) []*model.Article {
	byNumber := make(map[string][]*model.Article)
	order := make([]string, 0, len(articles))
	for _, a := range articles {
		if _, seen := byNumber[a.Number]; !seen {
			order = append(order, a.Number)
		}
		byNumber[a.Number] = append(byNumber[a.Number], a)
	}

	out := make([]*model.Article, 0, len(order))
	for _, number := range order {
		group := byNumber[number]
		if len(group) == 1 {
			out = append(out, group[0])
			continue
		}

		primaryIdx := -1
		for i, a := range group {
			if a.InForce {
				primaryIdx = i
				break
			}
		}
		if primaryIdx == -1 {
			out = append(out, group...)
			continue
		}

		primary := group[primaryIdx]
		for i, a := range group {
			if i == primaryIdx {
				continue
			}
			primary.RevokedVersions = append(primary.RevokedVersions, a)
		}
		if primary.Epigraph == "" {
			for _, rv := range primary.RevokedVersions {
				if rv.Epigraph != "" {
					primary.Epigraph = rv.Epigraph
					break
				}
			}
		}
		out = append(out, primary)
	}
	return out
}
