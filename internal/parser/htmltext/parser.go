package htmltext

import (
	"github.com/jusbr/leiimporter/internal/model"
	"github.com/jusbr/leiimporter/internal/parser/lexregex"
)

var levelOrder = []model.Kind{model.KindPart, model.KindBook, model.KindTitle, model.KindChapter, model.KindSection}

type pendingHeader struct {
	level model.Kind
	text  string
	set   bool
}

type state struct {
	structure  *model.Structure
	ctx        map[model.Kind]string
	levelNodes map[model.Kind]*model.HierarchyNode
	pending    pendingHeader
	partSeen   bool

	article   *model.LawElement
	paragraph *model.LawElement
	clause    *model.LawElement
	alinea    *model.LawElement
	elements  []*model.LawElement

	// revokedArticle is set while a strike-through block stream is still
	// accumulating a fully revoked article (spec.md §4.6 step 7).
	revokedArticle *model.LawElement
}

// Parse re-blocks html and walks it with a cursor state machine over the
// five heading levels in levelOrder (part, book, title, chapter, section);
// subtitle and subsection headings are not detected by this parser.
func Parse(html string) ([]*model.LawElement, *model.Structure, error) {
	blocks := reblock(html)

	s := &state{
		structure:  model.NewStructure(),
		ctx:        make(map[model.Kind]string),
		levelNodes: make(map[model.Kind]*model.HierarchyNode),
	}

	for _, b := range blocks {
		segments := segmentMultiLabel(b.Text)
		for _, seg := range segments {
			s.handleBlock(textBlock{Text: seg, Revoked: b.Revoked, Centered: b.Centered})
		}
	}
	s.flushPending()

	return s.elements, s.structure, nil
}

func (s *state) handleBlock(b textBlock) {
	cls := classifyLine(b.Text, b.Centered)

	if s.pending.set {
		if isHierarchyClass(cls.Kind) || cls.Kind == classArticle {
			s.commitHeader()
		} else if b.Centered {
			s.pending.text = s.pending.text + " - " + cls.Text
			s.commitHeader()
			return
		}
	}

	switch cls.Kind {
	case classPart, classBook, classTitle, classChapter, classSection:
		s.pending = pendingHeader{level: classKindToModel(cls.Kind), text: cls.Text, set: true}
	case classEpigraph:
		if s.article == nil {
			if len(s.elements) == 0 {
				// No article open yet and no pending structural context:
				// treat as an orphan epigraph-like line rather than lose it.
				s.structure.OrphanTexts = append(s.structure.OrphanTexts, cls.Text)
			}
		}
	case classArticle:
		s.startArticle(cls, b.Revoked)
	case classParagraph:
		s.startParagraph(cls, b.Revoked)
	case classRoman:
		s.startRoman(cls, b.Revoked)
	case classLettered:
		s.startLettered(cls, b.Revoked)
	case classPenalty:
		s.appendPenalty(cls, b.Revoked)
	case classOrphan:
		s.handleOrphanOrContinuation(cls.Text, b)
	}
}

func (s *state) handleOrphanOrContinuation(text string, b textBlock) {
	if text == "" {
		return
	}
	target := s.deepestOpen()
	prevEndsSentence := target == nil || lexregex.EndsSentence(target.Text)

	isContinuation := startsLowercaseOrPunct(text) && !b.Centered && !prevEndsSentence
	isAnnotation := isParenthesizedAnnotation(text)

	if target != nil && (isContinuation || isAnnotation) {
		if target.Text == "" {
			target.Text = text
		} else {
			target.Text = target.Text + " " + text
		}
		return
	}
	s.structure.OrphanTexts = append(s.structure.OrphanTexts, text)
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

func (s *state) commitHeader() {
	if !s.pending.set {
		return
	}
	level, heading := s.pending.level, s.pending.text
	s.pending = pendingHeader{}
	s.commitLevel(level, heading)
}

// commitLevel clears all deeper levels on any transition at level (spec.md
// §4.6 step 4).
func (s *state) commitLevel(level model.Kind, heading string) {
	if level == model.KindPart {
		s.partSeen = true
	}
	idx := indexOf(level)
	for i := idx + 1; i < len(levelOrder); i++ {
		delete(s.ctx, levelOrder[i])
		delete(s.levelNodes, levelOrder[i])
	}
	s.ctx[level] = heading

	var parent *model.HierarchyNode
	for i := idx - 1; i >= 0; i-- {
		if node, ok := s.levelNodes[levelOrder[i]]; ok {
			parent = node
			break
		}
	}
	if parent == nil {
		parent = s.structure.Root
	}
	s.levelNodes[level] = s.structure.AppendHeading(level, heading, parent)
}

func indexOf(level model.Kind) int {
	for i, l := range levelOrder {
		if l == level {
			return i
		}
	}
	return -1
}

func (s *state) startArticle(cls classification, revoked bool) {
	el := model.NewLawElement(model.KindArticle)
	el.Number = cls.Number
	el.Text = stripPrefix(lexregex.Article, cls.Text)
	el.Path = cloneCtx(s.ctx)
	el.TextuallyRevoked = revoked
	el.InForce = !revoked
	s.elements = append(s.elements, el)
	s.article, s.paragraph, s.clause, s.alinea = el, nil, nil, nil
	if revoked {
		s.revokedArticle = el
	} else {
		s.revokedArticle = nil
	}
}

func (s *state) startParagraph(cls classification, revoked bool) {
	p := model.NewLawElement(model.KindParagraph)
	p.Number = cls.Number
	if lexregex.ParagraphUnico.MatchString(cls.Text) {
		p.Text = stripPrefix(lexregex.ParagraphUnico, cls.Text)
	} else {
		p.Text = stripPrefix(lexregex.Paragraph, cls.Text)
	}
	p.Path = cloneCtx(s.ctx)
	p.TextuallyRevoked = revoked
	p.InForce = !revoked
	if s.article != nil {
		s.article.Children = append(s.article.Children, p)
	}
	s.paragraph, s.clause, s.alinea = p, nil, nil
}

func (s *state) startRoman(cls classification, revoked bool) {
	c := model.NewLawElement(model.KindRomanClause)
	c.Number = cls.Number
	c.Text = stripPrefix(lexregex.RomanClause, cls.Text)
	c.Path = cloneCtx(s.ctx)
	c.TextuallyRevoked = revoked
	c.InForce = !revoked
	target := s.bodyParent()
	if target != nil {
		target.Children = append(target.Children, c)
	}
	s.clause, s.alinea = c, nil
}

func (s *state) startLettered(cls classification, revoked bool) {
	a := model.NewLawElement(model.KindLetteredClause)
	a.Number = cls.Number
	a.Text = stripPrefix(lexregex.LetteredClause, cls.Text)
	a.Path = cloneCtx(s.ctx)
	a.TextuallyRevoked = revoked
	a.InForce = !revoked
	target := s.clause
	if target == nil {
		target = s.bodyParent()
	}
	if target != nil {
		target.Children = append(target.Children, a)
	}
	s.alinea = a
}

// appendPenalty attaches a penalty line to the current paragraph/article,
// or, when a strike-through article is still accumulating, to that
// revoked article directly (spec.md §4.6 step 7: "collect subsequent
// penalty-line(s) that are also strike-through into the same revoked
// article").
func (s *state) appendPenalty(cls classification, revoked bool) {
	target := s.paragraph
	if target == nil {
		target = s.article
	}
	if revoked && s.revokedArticle != nil {
		target = s.revokedArticle
	}
	if target == nil {
		return
	}
	pen := model.NewLawElement(model.KindPenalty)
	pen.Text = cls.Text
	pen.TextuallyRevoked = revoked
	pen.InForce = !revoked
	target.Children = append(target.Children, pen)
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
