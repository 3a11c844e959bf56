package services

import (
	"context"
	"encoding/json"
	"fmt"
)

// PickrrService is a pass-through to the logistics endpoints of the remote
// API. It performs no business logic: order payloads go out verbatim and
// shipment/tracking records come back verbatim.
type PickrrService struct {
	api *APIClient
}

func NewPickrrService(api *APIClient) *PickrrService {
	return &PickrrService{api: api}
}

// CreateShipment forwards an order payload (address, items, COD amount,
// shipping-paid flag) and returns the shipment record.
func (p *PickrrService) CreateShipment(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	if err := p.api.Post(ctx, "/logistics/pickrr/create-shipment/", payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TrackShipment returns the tracking record for a shipment
func (p *PickrrService) TrackShipment(ctx context.Context, trackingID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := p.api.Get(ctx, fmt.Sprintf("/logistics/pickrr/track/%s/", trackingID), &out); err != nil {
		return nil, err
	}
	return out, nil
}
