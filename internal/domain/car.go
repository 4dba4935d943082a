package domain

import "time"

type Car struct {
	ID           int64
	Make         string
	Model        string
	Year         int
	PricePerDay  float64
	Mileage      int
	CarType      string
	Transmission string
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CarFilter narrows a catalog listing. Zero values mean "no filter".
type CarFilter struct {
	Search       string
	CarType      string
	Transmission string
	Page         int
	Limit        int
}

func (f CarFilter) Empty() bool {
	return f.Search == "" && f.CarType == "" && f.Transmission == ""
}
