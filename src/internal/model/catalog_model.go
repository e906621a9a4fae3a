package model

import "time"

type CreatePackageRequest struct {
	Title            string  `json:"title" validate:"required,max=200"`
	Description      string  `json:"description,omitempty"`
	Price            float64 `json:"price" validate:"required,gt=0"`
	DurationDays     int     `json:"durationDays" validate:"required,gt=0"`
	DpDeadlineDays   int     `json:"dpDeadlineDays" validate:"gte=0"`
	FullDeadlineDays int     `json:"fullDeadlineDays" validate:"gte=0"`
	ImageURL         string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	IsPublished      bool    `json:"isPublished"`
}

type UpdatePackageRequest struct {
	ID               string  `json:"-" validate:"required"`
	Title            string  `json:"title" validate:"required,max=200"`
	Description      string  `json:"description,omitempty"`
	Price            float64 `json:"price" validate:"required,gt=0"`
	DurationDays     int     `json:"durationDays" validate:"required,gt=0"`
	DpDeadlineDays   int     `json:"dpDeadlineDays" validate:"gte=0"`
	FullDeadlineDays int     `json:"fullDeadlineDays" validate:"gte=0"`
	ImageURL         string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	IsPublished      bool    `json:"isPublished"`
}

type PackageResponse struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Price            float64    `json:"price"`
	DurationDays     int        `json:"durationDays"`
	DpDeadlineDays   int        `json:"dpDeadlineDays"`
	FullDeadlineDays int        `json:"fullDeadlineDays"`
	ImageURL         string     `json:"imageUrl,omitempty"`
	IsPublished      bool       `json:"isPublished"`
	NextDeparture    *time.Time `json:"nextDeparture,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

type UpsertCommissionRateRequest struct {
	PackageID        string  `json:"packageId" validate:"required"`
	PicType          string  `json:"picType" validate:"required,oneof=cabang agen karyawan"`
	CommissionAmount float64 `json:"commissionAmount" validate:"gte=0"`
}

type CommissionRateResponse struct {
	ID               string  `json:"id"`
	PackageID        string  `json:"packageId"`
	PicType          string  `json:"picType"`
	CommissionAmount float64 `json:"commissionAmount"`
}

type CreateAgentRequest struct {
	Name  string `json:"name" validate:"required,max=150"`
	Phone string `json:"phone,omitempty" validate:"omitempty,max=30"`
	City  string `json:"city,omitempty" validate:"omitempty,max=100"`
}

type AgentResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	City     string `json:"city,omitempty"`
	IsActive bool   `json:"isActive"`
}

type ListBookingsRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=draft waiting_payment partial_paid paid cancelled"`
}

type BookingResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	UserID      string    `json:"userId"`
	TotalPrice  float64   `json:"totalPrice"`
	Status      string    `json:"status"`
	PackageID   string    `json:"packageId,omitempty"`
	DepartureID string    `json:"departureId,omitempty"`
	PicID       string    `json:"picId,omitempty"`
	PicType     string    `json:"picType,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
