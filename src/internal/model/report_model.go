package model

import "time"

type CommissionReportRequest struct {
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required,gtefield=StartDate"`
}

type CommissionRow struct {
	BookingID            string  `json:"bookingId"`
	BookingCode          string  `json:"bookingCode"`
	PackageTitle         string  `json:"packageTitle"`
	PicType              string  `json:"picType"`
	PicID                string  `json:"picId"`
	PicName              string  `json:"picName"`
	PilgrimCount         int     `json:"pilgrimCount"`
	CommissionPerPilgrim float64 `json:"commissionPerPilgrim"`
	TotalCommission      float64 `json:"totalCommission"`
}

type CommissionSummary struct {
	PicType         string  `json:"picType"`
	PicID           string  `json:"picId"`
	PicName         string  `json:"picName"`
	TotalPilgrims   int     `json:"totalPilgrims"`
	TotalCommission float64 `json:"totalCommission"`
}

type CommissionTotals struct {
	Cabang   float64 `json:"cabang"`
	Agen     float64 `json:"agen"`
	Karyawan float64 `json:"karyawan"`
	Grand    float64 `json:"grand"`
}

type CommissionReportResponse struct {
	Rows      []CommissionRow     `json:"rows"`
	Summaries []CommissionSummary `json:"summaries"`
	Totals    CommissionTotals    `json:"totals"`
}
