package handlers

import (
	"context"
	"errors"

	"github.com/camp-buscape/registration-api/internal/cep"
	"github.com/camp-buscape/registration-api/internal/format"
	"github.com/danielgtaylor/huma/v2"
)

type CEPHandler struct {
	client *cep.Client
}

func NewCEPHandler(client *cep.Client) *CEPHandler {
	return &CEPHandler{client: client}
}

type CEPInput struct {
	CEP string `path:"cep" doc:"Postal code, 8 digits with or without the mask"`
}

type CEPOutput struct {
	Body struct {
		CEP          string `json:"cep"`
		Street       string `json:"street"`
		Neighborhood string `json:"neighborhood"`
		City         string `json:"city"`
	}
}

func (h *CEPHandler) HandleLookup(ctx context.Context, input *CEPInput) (*CEPOutput, error) {
	clean := format.CEPDigits(input.CEP)
	if len(clean) != 8 {
		return nil, huma.Error400BadRequest("CEP must have 8 digits")
	}

	addr, err := h.client.Lookup(ctx, clean)
	if err != nil {
		if errors.Is(err, cep.ErrNotFound) {
			return nil, huma.Error404NotFound("CEP não encontrado")
		}
		return nil, huma.Error500InternalServerError("Failed to look up CEP")
	}

	res := &CEPOutput{}
	res.Body.CEP = format.CEP(clean)
	res.Body.Street = addr.Street
	res.Body.Neighborhood = addr.Neighborhood
	res.Body.City = addr.City
	return res, nil
}
