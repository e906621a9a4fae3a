package converter

import (
	"time"

	"umroh-service/src/internal/entity"
	"umroh-service/src/internal/model"
)

func PackageToResponse(pkg *entity.Package, nextDeparture *time.Time) *model.PackageResponse {
	return &model.PackageResponse{
		ID:               pkg.ID,
		Title:            pkg.Title,
		Description:      pkg.Description.String,
		Price:            pkg.Price,
		DurationDays:     pkg.DurationDays,
		DpDeadlineDays:   int(pkg.DpDeadlineDays.Int64),
		FullDeadlineDays: int(pkg.FullDeadlineDays.Int64),
		ImageURL:         pkg.ImageURL.String,
		IsPublished:      pkg.IsPublished,
		NextDeparture:    nextDeparture,
		CreatedAt:        pkg.CreatedAt,
	}
}

func CommissionRateToResponse(rate *entity.PackageCommission) *model.CommissionRateResponse {
	return &model.CommissionRateResponse{
		ID:               rate.ID,
		PackageID:        rate.PackageID,
		PicType:          rate.PicType,
		CommissionAmount: rate.CommissionAmount,
	}
}

func AgentToResponse(agent *entity.Agent) *model.AgentResponse {
	return &model.AgentResponse{
		ID:       agent.ID,
		Name:     agent.Name,
		Phone:    agent.Phone.String,
		City:     agent.City.String,
		IsActive: agent.IsActive,
	}
}

func TestimonialToResponse(t *entity.Testimonial) *model.TestimonialResponse {
	return &model.TestimonialResponse{
		ID:       t.ID,
		Name:     t.Name,
		Message:  t.Message,
		Rating:   t.Rating,
		PhotoURL: t.PhotoURL.String,
	}
}

func FaqToResponse(f *entity.Faq) *model.FaqResponse {
	return &model.FaqResponse{
		ID:       f.ID,
		Question: f.Question,
		Answer:   f.Answer,
	}
}
