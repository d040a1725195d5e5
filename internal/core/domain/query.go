package domain

import (
	"github.com/SscSPs/content_platform_app/internal/utils/pagination"
)

// ArticleFilter narrows an article listing inside one tenant.
type ArticleFilter struct {
	Status   *ArticleStatus
	Type     *ArticleType
	AuthorID *string
	Limit    int
	After    *pagination.Cursor
}

// ArticlePage is one page of a listing plus the token for the next page.
type ArticlePage struct {
	Articles  []Article
	NextToken *string
}
