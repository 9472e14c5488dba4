package model

// TextRun is a single styled run inside a PlateBlock (spec.md §3).
type TextRun struct {
	Text          string `json:"text"`
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Color         string `json:"color,omitempty"`
}

// PlateBlock is a rich-text paragraph record consumed by the downstream
// reader (spec.md §3).
type PlateBlock struct {
	Type          string    `json:"type"`
	Children      []TextRun `json:"children"`
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	URN           string    `json:"urn,omitempty"`
	SearchText    string    `json:"search_text"`
	TextoOriginal string    `json:"texto_original,omitempty"`
	Anotacoes     []string  `json:"anotacoes,omitempty"`
	Indent        int       `json:"indent,omitempty"`
	Revoked       bool      `json:"revoked,omitempty"`
	Vetoed        bool      `json:"vetoed,omitempty"`
}

// Article is the final emitted representation of one top-level article
// (spec.md §3).
type Article struct {
	ID             string            `json:"id"`
	Number         string            `json:"number"`
	Slug           string            `json:"slug"`
	Epigraph       string            `json:"epigraph,omitempty"`
	PlateContent   []*PlateBlock     `json:"plate_content"`
	TextoPlano     string            `json:"texto_plano"`
	SearchText     string            `json:"search_text"`
	InForce        bool              `json:"in_force"`
	Context        map[string]string `json:"context"`
	Path           map[string]string `json:"path"`
	ContentHash    string            `json:"content_hash"`
	RevokedVersions []*Article       `json:"revoked_versions"`
}

// LawMeta is the "lei" top-level object: metadata plus the hierarchy tree
// and flat structure lists (spec.md §6).
type LawMeta struct {
	URN         string              `json:"urn"`
	Title       string              `json:"title,omitempty"`
	Hierarquia  *HierarchyNode      `json:"hierarquia,omitempty"`
	Estrutura   EstruturaDTO        `json:"estrutura"`
	SlugWarnings int                `json:"slug_warnings"`
}

// EstruturaDTO mirrors Structure's flat lists in the output JSON's field
// names (Portuguese, matching the reader's contract).
type EstruturaDTO struct {
	Partes      []string `json:"partes"`
	Livros      []string `json:"livros"`
	Titulos     []string `json:"titulos"`
	Subtitulos  []string `json:"subtitulos"`
	Capitulos   []string `json:"capitulos"`
	Secoes      []string `json:"secoes"`
	Subsecoes   []string `json:"subsecoes"`
}

// Document is the full output file contract: top-level keys "lei" and
// "artigos" (spec.md §6).
type Document struct {
	Lei     LawMeta    `json:"lei"`
	Artigos []*Article `json:"artigos"`
}

// NewArticle returns an Article with RevokedVersions defaulting to an empty
// slice so it serializes as [] rather than null (spec.md §6 field-omission
// rules).
func NewArticle() *Article {
	return &Article{
		RevokedVersions: []*Article{},
		Context:         make(map[string]string),
		Path:            make(map[string]string),
	}
}
