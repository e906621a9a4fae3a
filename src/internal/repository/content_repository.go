package repository

import (
	"context"

	"umroh-service/src/internal/entity"
	"umroh-service/src/pkg/databases/mysql"
)

type TestimonialRepository interface {
	FindAll(ctx context.Context) ([]entity.Testimonial, error)
}

type FaqRepository interface {
	FindAll(ctx context.Context) ([]entity.Faq, error)
}

type testimonialRepository struct {
	DB mysql.DBInterface
}

func NewTestimonialRepository(db mysql.DBInterface) TestimonialRepository {
	return &testimonialRepository{DB: db}
}

func (r *testimonialRepository) FindAll(ctx context.Context) ([]entity.Testimonial, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var testimonials []entity.Testimonial
	query := `
		SELECT t.id, t.name, t.message, t.rating, t.photo_url, t.created_at
		FROM testimonials t
		ORDER BY t.created_at DESC
		LIMIT 50
	`

	err = db.SelectContext(ctx, &testimonials, query)
	if err != nil {
		return nil, err
	}

	return testimonials, nil
}

type faqRepository struct {
	DB mysql.DBInterface
}

func NewFaqRepository(db mysql.DBInterface) FaqRepository {
	return &faqRepository{DB: db}
}

func (r *faqRepository) FindAll(ctx context.Context) ([]entity.Faq, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var faqs []entity.Faq
	query := `
		SELECT f.id, f.question, f.answer, f.position
		FROM faqs f
		ORDER BY f.position ASC
	`

	err = db.SelectContext(ctx, &faqs, query)
	if err != nil {
		return nil, err
	}

	return faqs, nil
}
