package service

import "github.com/stemsi/folio-backend/internal/model"

// CatalogService serves the static services showcase and the contact-form
// service options.
type CatalogService struct {
	catalog model.Catalog
}

func NewCatalogService() *CatalogService {
	return &CatalogService{catalog: defaultCatalog}
}

func (s *CatalogService) Get() model.Catalog {
	return s.catalog
}

var defaultCatalog = model.Catalog{
	Services: []model.ServiceOffering{
		{
			Slug:        "web-development",
			Title:       "Web Development",
			Description: "Full-stack web applications that dominate performance, scalability & aesthetics.",
			Features:    []string{"Next.js + React", "TypeScript", "Tailwind CSS", "Headless CMS", "API Integration"},
			Price:       "From $8,000",
		},
		{
			Slug:        "ui-ux-design",
			Title:       "UI/UX & Frontend Mastery",
			Description: "Pixel-perfect interfaces that feel like magic and convert like crazy.",
			Features:    []string{"Figma → Production Code", "Framer Motion Animations", "Design Systems", "Micro-interactions", "A11y Compliance"},
			Price:       "From $5,000",
		},
		{
			Slug:        "performance",
			Title:       "Performance Optimization",
			Description: "Turn good websites into lightning-fast experiences that rank #1.",
			Features:    []string{"100 Lighthouse Scores", "Core Web Vitals", "Image/CDN Optimization", "Bundle Splitting", "Caching Strategy"},
			Price:       "From $3,500",
		},
		{
			Slug:        "analytics",
			Title:       "Analytics & Growth Systems",
			Description: "Know exactly what your users do, and make them do more of it.",
			Features:    []string{"Custom Analytics", "Heatmaps & Session Recording", "Conversion Tracking", "A/B Testing Setup", "Dashboard Design"},
			Price:       "From $2,500",
		},
	},
	Options: []model.ServiceOption{
		{Value: "web-development", Label: "Full-Stack Web Development"},
		{Value: "ui-ux-design", Label: "UI/UX & Frontend Design"},
		{Value: "performance", Label: "Performance Optimization"},
		{Value: "mentorship", Label: "1-on-1 Mentorship"},
		{Value: "other", Label: "Other Services"},
	},
}
