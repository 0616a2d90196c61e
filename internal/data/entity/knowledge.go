package entity

// KnowledgeArticle is public self-help content.
type KnowledgeArticle struct {
	BaseNoDelete
	Title    string `db:"title"`
	Category string `db:"category"`
	Content  string `db:"content"`
}
