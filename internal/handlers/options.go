package handlers

import (
	"context"

	"github.com/camp-buscape/registration-api/internal/registration"
)

type OptionsHandler struct {
	loader *registration.Loader
}

func NewOptionsHandler(loader *registration.Loader) *OptionsHandler {
	return &OptionsHandler{loader: loader}
}

type OptionsInput struct{}

type OptionsOutput struct {
	Body struct {
		Seasons []registration.Season `json:"seasons"`
		Periods []registration.Period `json:"periods"`
		AddOns  []string              `json:"add_ons"`
	}
}

// HandleOptions returns everything the form needs to render its
// selectors. The reference reads degrade to empty lists on failure, so
// this endpoint never errors.
func (h *OptionsHandler) HandleOptions(ctx context.Context, input *OptionsInput) (*OptionsOutput, error) {
	rd := h.loader.Load(ctx)

	res := &OptionsOutput{}
	res.Body.Seasons = rd.Seasons
	res.Body.Periods = rd.Periods
	res.Body.AddOns = registration.AvailableOptions
	if res.Body.Seasons == nil {
		res.Body.Seasons = []registration.Season{}
	}
	if res.Body.Periods == nil {
		res.Body.Periods = []registration.Period{}
	}
	return res, nil
}
