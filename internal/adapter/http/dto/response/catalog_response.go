package response

import (
	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
)

type ServiceOptionResponse struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
	Prices []int64  `json:"prices"`
}

type ServiceResponse struct {
	ID          int                     `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Price       int64                   `json:"price"`
	CategoryID  int                     `json:"category_id"`
	Image       string                  `json:"image"`
	Options     []ServiceOptionResponse `json:"options"`
}

type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func FromService(s entities.Service) ServiceResponse {
	options := make([]ServiceOptionResponse, 0, len(s.Options))
	for _, o := range s.Options {
		options = append(options, ServiceOptionResponse{
			ID:     o.ID,
			Name:   o.Name,
			Values: o.Values,
			Prices: o.Prices,
		})
	}
	return ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Price:       s.Price,
		CategoryID:  s.CategoryID,
		Image:       s.Image,
		Options:     options,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}

func FromCategories(categories []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}
