// README: Manual quotation requests raised when a destination cannot be priced automatically.
package manualquote

import (
	"errors"
	"strings"
	"time"

	"tarifa/internal/modules/pricing"
)

var (
	ErrNotFound = errors.New("manual quote not found")
	ErrDisabled = errors.New("manual quote queue disabled")
)

type Status string

const StatusPending Status = "pending"

const (
	// DefaultListLimit applies when the caller asks for no specific page size.
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Request is one shipment awaiting a human quotation.
type Request struct {
	ID            string           `json:"id"`
	PickupCity    string           `json:"pickupCity,omitempty"`
	PickupState   string           `json:"pickupState,omitempty"`
	DeliveryCity  string           `json:"deliveryCity"`
	DeliveryState string           `json:"deliveryState,omitempty"`
	VehicleType   string           `json:"vehicleType,omitempty"`
	Priority      pricing.Priority `json:"priority"`
	Reason        string           `json:"reason"`
	Detail        string           `json:"detail,omitempty"`
	Status        Status           `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
}

func newRequest(id string, now time.Time, q pricing.QuoteRequest, res pricing.Result) Request {
	return Request{
		ID:            id,
		PickupCity:    strings.TrimSpace(q.PickupCity),
		PickupState:   strings.TrimSpace(q.PickupState),
		DeliveryCity:  strings.TrimSpace(q.DeliveryCity),
		DeliveryState: strings.TrimSpace(q.DeliveryState),
		VehicleType:   strings.TrimSpace(q.VehicleType),
		Priority:      q.Priority,
		Reason:        res.ErrorCode,
		Detail:        res.Error,
		Status:        StatusPending,
		CreatedAt:     now.UTC(),
	}
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
