package model

import (
	"time"

	bookmodel "book-hub/pkg/core/book/model"
)

type (
	BookCreate struct {
		Title           string  `json:"title,required"`
		Author          string  `json:"author,required"`
		Genre           string  `json:"genre,required"`
		PublicationDate string  `json:"publication_date,required"`
		Price           float64 `json:"price,required"`
		Rating          float64 `json:"rating,required"`
		Description     string  `json:"description,required"`
		Image           string  `json:"image,required"`
		ISBN            string  `json:"isbn,required"`
		Pages           int     `json:"pages,required"`
		Language        string  `json:"language,required"`
		Publisher       string  `json:"publisher,required"`
		Stock           int     `json:"stock,required"`
	}

	// BookUpdate 缺省字段保持原值
	BookUpdate struct {
		ID              uint     `path:"id,required"`
		Title           *string  `json:"title"`
		Author          *string  `json:"author"`
		Genre           *string  `json:"genre"`
		PublicationDate *string  `json:"publication_date"`
		Price           *float64 `json:"price"`
		Rating          *float64 `json:"rating"`
		Description     *string  `json:"description"`
		Image           *string  `json:"image"`
		ISBN            *string  `json:"isbn"`
		Pages           *int     `json:"pages"`
		Language        *string  `json:"language"`
		Publisher       *string  `json:"publisher"`
		Stock           *int     `json:"stock"`
	}

	BookListQuery struct {
		Skip   int    `query:"skip" default:"0" vd:"$>=0"`
		Limit  int    `query:"limit" default:"10" vd:"$>=0&&$<=100"`
		Title  string `query:"title"`
		Author string `query:"author"`
	}

	BookOut struct {
		ID              uint      `json:"id"`
		Title           string    `json:"title"`
		Author          string    `json:"author"`
		Genre           string    `json:"genre"`
		PublicationDate string    `json:"publication_date"`
		Price           float64   `json:"price"`
		Rating          float64   `json:"rating"`
		Description     string    `json:"description"`
		Image           string    `json:"image"`
		ISBN            string    `json:"isbn"`
		Pages           int       `json:"pages"`
		Language        string    `json:"language"`
		Publisher       string    `json:"publisher"`
		Stock           int       `json:"stock"`
		CreatedAt       time.Time `json:"created_at"`
	}
)

func (r BookCreate) ToModel() bookmodel.Book {
	return bookmodel.Book{
		Title:           r.Title,
		Author:          r.Author,
		Genre:           r.Genre,
		PublicationDate: r.PublicationDate,
		Price:           r.Price,
		Rating:          r.Rating,
		Description:     r.Description,
		Image:           r.Image,
		ISBN:            r.ISBN,
		Pages:           r.Pages,
		Language:        r.Language,
		Publisher:       r.Publisher,
		Stock:           r.Stock,
	}
}

func (r BookUpdate) ToPatch() bookmodel.BookPatch {
	return bookmodel.BookPatch{
		Title:           r.Title,
		Author:          r.Author,
		Genre:           r.Genre,
		PublicationDate: r.PublicationDate,
		Price:           r.Price,
		Rating:          r.Rating,
		Description:     r.Description,
		Image:           r.Image,
		ISBN:            r.ISBN,
		Pages:           r.Pages,
		Language:        r.Language,
		Publisher:       r.Publisher,
		Stock:           r.Stock,
	}
}

func NewBookOut(b bookmodel.Book) BookOut {
	return BookOut{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		Genre:           b.Genre,
		PublicationDate: b.PublicationDate,
		Price:           b.Price,
		Rating:          b.Rating,
		Description:     b.Description,
		Image:           b.Image,
		ISBN:            b.ISBN,
		Pages:           b.Pages,
		Language:        b.Language,
		Publisher:       b.Publisher,
		Stock:           b.Stock,
		CreatedAt:       b.CreatedAt,
	}
}
