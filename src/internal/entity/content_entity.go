package entity

import (
	"database/sql"
	"time"
)

type Testimonial struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Message   string         `db:"message"`
	Rating    int            `db:"rating"`
	PhotoURL  sql.NullString `db:"photo_url"`
	CreatedAt time.Time      `db:"created_at"`
}

type Faq struct {
	ID       string `db:"id"`
	Question string `db:"question"`
	Answer   string `db:"answer"`
	Position int    `db:"position"`
}
