package emitter

import (
	"sort"

	"github.com/jusbr/leiimporter/internal/model"
)

// sortKey is the (numeric_prefix, lexicographic_suffix) tuple articles are
// sorted by (spec.md §4.7 step 8, §8 "sorted-output law"). Malformed
// numbers fall back to (0, original_string) (spec.md §7).
type sortKey struct {
	prefix int
	suffix string
}

func articleSortKey(number string) sortKey {
	digits, suffix := splitNumberSuffix(number)
	n, err := parseLeadingInt(digits)
	if err != nil {
		return sortKey{prefix: 0, suffix: number}
	}
	return sortKey{prefix: n, suffix: suffix}
}

func (k sortKey) less(other sortKey) bool {
	if k.prefix != other.prefix {
		return k.prefix < other.prefix
	}
	return k.suffix < other.suffix
}

// sortArticlesByNumber sorts articles in place by their (prefix, suffix)
// sort key.
func sortArticlesByNumber(articles []*model.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articleSortKey(articles[i].Number).less(articleSortKey(articles[j].Number))
	})
}
