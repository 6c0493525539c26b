package ports

import "trip-data-collector/internal/domain"

// RawWriter appends raw API responses to durable storage.
type RawWriter interface {
	Append(raw domain.RawResponse) error
}
