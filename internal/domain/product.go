package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID        string
	Name      string
	Quantity  int64
	Price     float64
	CreatedBy string
	CreatedAt time.Time
}
