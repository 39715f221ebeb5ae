package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/camp-buscape/registration-api/internal/cep"
	"github.com/danielgtaylor/huma/v2"
)

func TestHandleLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`)
	}))
	defer server.Close()

	handler := NewCEPHandler(cep.NewClient(server.URL))
	res, err := handler.HandleLookup(context.Background(), &CEPInput{CEP: "01310-100"})
	if err != nil {
		t.Fatalf("HandleLookup returned error: %v", err)
	}
	if res.Body.CEP != "01310-100" {
		t.Errorf("cep = %q", res.Body.CEP)
	}
	if res.Body.Street != "Avenida Paulista" {
		t.Errorf("street = %q", res.Body.Street)
	}
	if res.Body.City != "São Paulo/SP" {
		t.Errorf("city = %q", res.Body.City)
	}
}

func TestHandleLookupNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"erro":true}`)
	}))
	defer server.Close()

	handler := NewCEPHandler(cep.NewClient(server.URL))
	_, err := handler.HandleLookup(context.Background(), &CEPInput{CEP: "99999999"})
	if se, ok := err.(huma.StatusError); !ok || se.GetStatus() != 404 {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestHandleLookupRejectsShortCode(t *testing.T) {
	handler := NewCEPHandler(cep.NewClient("http://127.0.0.1:0"))
	_, err := handler.HandleLookup(context.Background(), &CEPInput{CEP: "01310"})
	if se, ok := err.(huma.StatusError); !ok || se.GetStatus() != 400 {
		t.Fatalf("expected 400, got %v", err)
	}
}
