package model

type TestimonialResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Message  string `json:"message"`
	Rating   int    `json:"rating"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

type FaqResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
