package converter

import (
	"umroh-service/src/internal/entity"
	"umroh-service/src/internal/model"
)

func BookingToResponse(booking *entity.Booking) *model.BookingResponse {
	return &model.BookingResponse{
		ID:          booking.ID,
		Code:        booking.Code,
		UserID:      booking.UserID,
		TotalPrice:  booking.TotalPrice,
		Status:      booking.Status,
		PackageID:   booking.PackageID.String,
		DepartureID: booking.DepartureID.String,
		PicID:       booking.PicID.String,
		PicType:     booking.PicType.String,
		CreatedAt:   booking.CreatedAt,
	}
}
