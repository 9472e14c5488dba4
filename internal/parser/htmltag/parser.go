// Package htmltag reconstructs the intermediate element tree from HTML
// where hierarchy is legible through bold spans and block-level prefixes
// (spec.md §4.5).
package htmltag

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jusbr/leiimporter/internal/model"
	"github.com/jusbr/leiimporter/internal/parser/lexregex"
)

var levelOrder = []model.Kind{model.KindPart, model.KindBook, model.KindTitle, model.KindChapter, model.KindSection}

// pendingHeader is the two-state "idle/waiting_for_description" machine
// from spec.md §9.
type pendingHeader struct {
	level model.Kind
	text  string
	set   bool
}

type state struct {
	structure    *model.Structure
	ctx          map[model.Kind]string
	levelNodes   map[model.Kind]*model.HierarchyNode
	pending      pendingHeader
	pendingEpi   string
	pendingRubric string
	partSeen     bool
	article      *model.LawElement
	paragraph    *model.LawElement
	clause       *model.LawElement
	alinea       *model.LawElement
	elements     []*model.LawElement
}

// Parse walks every <p>/<h3>/<h4> block in html and reconstructs the
// element tree (spec.md §4.5).
func Parse(html string) ([]*model.LawElement, *model.Structure, error) {
	html = normalizeEncoding(html)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, err
	}

	s := &state{
		structure:  model.NewStructure(),
		ctx:        make(map[model.Kind]string),
		levelNodes: make(map[model.Kind]*model.HierarchyNode),
	}

	mentionsParteGeral := strings.Contains(strings.ToLower(doc.Text()), "parte geral")

	blocks := doc.Find("p, h3, h4")
	blocks.Each(func(_ int, sel *goquery.Selection) {
		cls := classifyBlock(sel)
		s.handleBlock(cls, mentionsParteGeral)
	})

	s.flushPending()

	return s.elements, s.structure, nil
}

func (s *state) handleBlock(cls classification, mentionsParteGeral bool) {
	if s.pending.set {
		if isHierarchyClass(cls.Kind) || cls.Kind == classArticle {
			s.commitHeader(mentionsParteGeral)
		} else if cls.Kind != classOrphan || cls.Text != "" {
			s.pending.text = s.pending.text + " - " + cls.Text
			s.commitHeader(mentionsParteGeral)
			return
		}
	}

	switch cls.Kind {
	case classPart, classBook, classTitle, classChapter, classSection:
		s.pending = pendingHeader{level: classKindToModel(cls.Kind), text: cls.Text, set: true}
	case classEpigraph:
		if s.article == nil {
			s.pendingEpi = cls.Text
		} else {
			s.pendingRubric = cls.Text
		}
	case classArticle:
		s.startArticle(cls)
	case classParagraph:
		s.startParagraph(cls)
	case classRoman:
		s.startRoman(cls)
	case classLettered:
		s.startLettered(cls)
	case classPenalty:
		s.appendPenalty(cls)
	case classContinuation:
		s.appendContinuation(cls.Text)
	case classOrphan:
		if cls.Text != "" {
			s.structure.OrphanTexts = append(s.structure.OrphanTexts, cls.Text)
		}
	}
}

func isHierarchyClass(k classKind) bool {
	switch k {
	case classPart, classBook, classTitle, classChapter, classSection:
		return true
	default:
		return false
	}
}

func classKindToModel(k classKind) model.Kind {
	switch k {
	case classPart:
		return model.KindPart
	case classBook:
		return model.KindBook
	case classTitle:
		return model.KindTitle
	case classChapter:
		return model.KindChapter
	case classSection:
		return model.KindSection
	default:
		return ""
	}
}

// commitHeader flushes the pending structural header into ctx and
// Structure, synthesizing a "Parte geral" heading first when this is the
// first title, no part has been seen, and the source mentions it anywhere
// (spec.md §4.5, "Parte Geral synthesis").
func (s *state) commitHeader(mentionsParteGeral bool) {
	if !s.pending.set {
		return
	}
	level, heading := s.pending.level, s.pending.text
	s.pending = pendingHeader{}

	if level == model.KindTitle && !s.partSeen && mentionsParteGeral {
		s.commitLevel(model.KindPart, "Parte geral")
	}
	s.commitLevel(level, heading)
}

func (s *state) commitLevel(level model.Kind, heading string) {
	if level == model.KindPart {
		s.partSeen = true
	}
	clearDeeperLevels(s.ctx, level)
	s.ctx[level] = heading

	parent := s.parentNodeFor(level)
	node := s.structure.AppendHeading(level, heading, parent)
	s.levelNodes[level] = node
	clearDeeperNodes(s.levelNodes, level)
}

func (s *state) parentNodeFor(level model.Kind) *model.HierarchyNode {
	idx := indexOf(level)
	for i := idx - 1; i >= 0; i-- {
		if node, ok := s.levelNodes[levelOrder[i]]; ok {
			return node
		}
	}
	return s.structure.Root
}

func indexOf(level model.Kind) int {
	for i, l := range levelOrder {
		if l == level {
			return i
		}
	}
	return -1
}

func clearDeeperLevels(ctx map[model.Kind]string, level model.Kind) {
	idx := indexOf(level)
	for i := idx + 1; i < len(levelOrder); i++ {
		delete(ctx, levelOrder[i])
	}
}

func clearDeeperNodes(nodes map[model.Kind]*model.HierarchyNode, level model.Kind) {
	idx := indexOf(level)
	for i := idx + 1; i < len(levelOrder); i++ {
		delete(nodes, levelOrder[i])
	}
}

func (s *state) startArticle(cls classification) {
	el := model.NewLawElement(model.KindArticle)
	el.Number = cls.Number
	el.Text = strings.TrimSpace(lexregex.Article.ReplaceAllString(cls.Text, ""))
	el.Path = cloneCtx(s.ctx)
	if s.pendingEpi != "" {
		el.Epigraph = s.pendingEpi
		s.pendingEpi = ""
	}
	s.pendingRubric = ""
	s.elements = append(s.elements, el)
	s.article, s.paragraph, s.clause, s.alinea = el, nil, nil, nil
}

func (s *state) startParagraph(cls classification) {
	p := model.NewLawElement(model.KindParagraph)
	p.Number = cls.Number
	if lexregex.ParagraphUnico.MatchString(cls.Text) {
		p.Text = strings.TrimSpace(lexregex.ParagraphUnico.ReplaceAllString(cls.Text, ""))
	} else {
		p.Text = strings.TrimSpace(lexregex.Paragraph.ReplaceAllString(cls.Text, ""))
	}
	p.Path = cloneCtx(s.ctx)
	if s.pendingRubric != "" {
		p.Epigraph = s.pendingRubric
		s.pendingRubric = ""
	}
	if s.article != nil {
		s.article.Children = append(s.article.Children, p)
	}
	s.paragraph, s.clause, s.alinea = p, nil, nil
}

func (s *state) startRoman(cls classification) {
	c := model.NewLawElement(model.KindRomanClause)
	c.Number = cls.Number
	c.Text = strings.TrimSpace(lexregex.RomanClause.ReplaceAllString(cls.Text, ""))
	c.Path = cloneCtx(s.ctx)
	if s.pendingRubric != "" {
		c.Epigraph = s.pendingRubric
		s.pendingRubric = ""
	}
	target := s.bodyParent()
	if target != nil {
		target.Children = append(target.Children, c)
	}
	s.clause, s.alinea = c, nil
}

func (s *state) startLettered(cls classification) {
	a := model.NewLawElement(model.KindLetteredClause)
	a.Number = cls.Number
	a.Text = strings.TrimSpace(lexregex.LetteredClause.ReplaceAllString(cls.Text, ""))
	a.Path = cloneCtx(s.ctx)
	target := s.clause
	if target == nil {
		target = s.bodyParent()
	}
	if target != nil {
		target.Children = append(target.Children, a)
	}
	s.alinea = a
}

func (s *state) appendPenalty(cls classification) {
	target := s.paragraph
	if target == nil {
		target = s.article
	}
	if target == nil {
		return
	}
	pen := model.NewLawElement(model.KindPenalty)
	pen.Text = cls.Text
	target.Children = append(target.Children, pen)
}

func (s *state) appendContinuation(text string) {
	target := s.deepestOpen()
	if target == nil {
		return
	}
	if target.Text == "" {
		target.Text = text
		return
	}
	target.Text = target.Text + " " + text
}

func (s *state) bodyParent() *model.LawElement {
	if s.paragraph != nil {
		return s.paragraph
	}
	return s.article
}

func (s *state) deepestOpen() *model.LawElement {
	switch {
	case s.alinea != nil:
		return s.alinea
	case s.clause != nil:
		return s.clause
	case s.paragraph != nil:
		return s.paragraph
	default:
		return s.article
	}
}

func (s *state) flushPending() {
	if s.pending.set {
		s.commitLevel(s.pending.level, s.pending.text)
		s.pending = pendingHeader{}
	}
}

func cloneCtx(ctx map[model.Kind]string) map[model.Kind]string {
	clone := make(map[model.Kind]string, len(ctx))
	for k, v := range ctx {
		clone[k] = v
	}
	return clone
}
