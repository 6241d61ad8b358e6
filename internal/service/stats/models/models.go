package models

// SummaryResponse сводная статистика по системе
type SummaryResponse struct {
	TotalReservations int64  `json:"total_reservations"`
	TotalSpaces       int64  `json:"total_spaces"`
	OccupancyPct      string `json:"occupancy_pct"` // Процент занятости, 2 знака после запятой
}

// DayCount количество резерваций за один день
type DayCount struct {
	Date         string `json:"date"` // YYYY-MM-DD
	Reservations int64  `json:"reservations"`
}

// SeriesResponse ряд значений за последние 7 дней
type SeriesResponse struct {
	Days []DayCount `json:"days"`
}
