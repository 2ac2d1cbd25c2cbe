// Package article provides HTTP handlers for the article endpoints: the
// public list and read routes and the editorial create, update and delete routes.
package article

import (
	"time"

	"cahaya-digital/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID            int64     `json:"id" example:"1"`
	Title         string    `json:"title" example:"Pemerintah umumkan kebijakan baru"`
	Content       string    `json:"content" example:"<p>Isi berita...</p>"`
	Summary       string    `json:"summary" example:"Ringkasan berita"`
	Category      string    `json:"category" example:"politik"`
	CategoryLabel string    `json:"categoryLabel" example:"Politik"`
	ImageURL      string    `json:"imageUrl" example:"https://images.example.com/a.jpg"`
	Author        string    `json:"author" example:"Redaksi"`
	AuthorImage   *string   `json:"authorImage,omitempty"`
	IsFeatured    bool      `json:"isFeatured"`
	IsBreaking    bool      `json:"isBreaking"`
	IsEditorsPick bool      `json:"isEditorsPick"`
	PublishedAt   time.Time `json:"publishedAt" example:"2025-10-26T10:00:00Z"`
	Views         int64     `json:"views" example:"42"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:            a.ID,
		Title:         a.Title,
		Content:       a.Content,
		Summary:       a.Summary,
		Category:      string(a.Category),
		CategoryLabel: a.Category.Label(),
		ImageURL:      a.ImageURL,
		Author:        a.Author,
		AuthorImage:   a.AuthorImage,
		IsFeatured:    a.IsFeatured,
		IsBreaking:    a.IsBreaking,
		IsEditorsPick: a.IsEditorsPick,
		PublishedAt:   a.PublishedAt,
		Views:         a.Views,
	}
}

func toDTOs(list []*entity.Article) []DTO {
	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, toDTO(a))
	}
	return out
}

// createRequest is the body of POST /api/articles.
type createRequest struct {
	Title         string  `json:"title" example:"Pemerintah umumkan kebijakan baru"`
	Content       string  `json:"content"`
	Summary       string  `json:"summary"`
	Category      string  `json:"category" example:"politik"`
	ImageURL      string  `json:"imageUrl" example:"https://images.example.com/a.jpg"`
	Author        string  `json:"author" example:"Redaksi"`
	AuthorImage   *string `json:"authorImage"`
	IsFeatured    bool    `json:"isFeatured"`
	IsBreaking    bool    `json:"isBreaking"`
	IsEditorsPick bool    `json:"isEditorsPick"`
}

func (r createRequest) input() entity.ArticleInput {
	return entity.ArticleInput{
		Title:         r.Title,
		Content:       r.Content,
		Summary:       r.Summary,
		Category:      category(r.Category),
		ImageURL:      r.ImageURL,
		Author:        r.Author,
		AuthorImage:   r.AuthorImage,
		IsFeatured:    r.IsFeatured,
		IsBreaking:    r.IsBreaking,
		IsEditorsPick: r.IsEditorsPick,
	}
}

// updateRequest is the body of PATCH /api/articles/{id}. Absent fields are left unchanged.
type updateRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	Summary       *string `json:"summary"`
	Category      *string `json:"category"`
	ImageURL      *string `json:"imageUrl"`
	Author        *string `json:"author"`
	AuthorImage   *string `json:"authorImage"`
	IsFeatured    *bool   `json:"isFeatured"`
	IsBreaking    *bool   `json:"isBreaking"`
	IsEditorsPick *bool   `json:"isEditorsPick"`
}

func (r updateRequest) patch() entity.ArticlePatch {
	p := entity.ArticlePatch{
		Title:         r.Title,
		Content:       r.Content,
		Summary:       r.Summary,
		ImageURL:      r.ImageURL,
		Author:        r.Author,
		AuthorImage:   r.AuthorImage,
		IsFeatured:    r.IsFeatured,
		IsBreaking:    r.IsBreaking,
		IsEditorsPick: r.IsEditorsPick,
	}
	if r.Category != nil {
		c := category(*r.Category)
		p.Category = &c
	}
	return p
}

// category accepts the loose spellings ParseCategory does and leaves
// anything else for validation to reject.
func category(raw string) entity.Category {
	if c, err := entity.ParseCategory(raw); err == nil {
		return c
	}
	return entity.Category(raw)
}
