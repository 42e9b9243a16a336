package model

import "time"

// Item is one entry of the data listing.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DataListing is the body of GET /api/data.
type DataListing struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Data      []Item    `json:"data"`
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    float64   `json:"uptime"`
	Version   string    `json:"version"`
}
