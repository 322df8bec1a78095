package client

import (
	"context"

	appointment "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/catalog"
)

type ListClients struct {
	appointments appointment.Repository
	catalog      catalog.Repository
}

func NewListClients(appointments appointment.Repository, catalog catalog.Repository) *ListClients {
	return &ListClients{appointments: appointments, catalog: catalog}
}

func (uc *ListClients) Execute(ctx context.Context, search string) ([]Client, error) {
	all, err := uc.appointments.ListAppointments(ctx, appointment.Filter{})
	if err != nil {
		return nil, err
	}

	services, err := uc.catalog.ListServices(ctx, false)
	if err != nil {
		return nil, err
	}
	prices := make(map[string]float64, len(services))
	for _, s := range services {
		prices[s.ID] = s.Price
	}

	clients := Aggregate(all, func(id string) (float64, bool) {
		p, ok := prices[id]
		return p, ok
	})
	return Filter(clients, search), nil
}
