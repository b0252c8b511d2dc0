package catalog

import "github.com/explorai/explorai-api/internal/types"

// destinations is the static catalog. Entries are append-only and never
// mutated at runtime; scoring passes copy what they need.
var destinations = []types.Destination{
	{
		ID:          "dest-001",
		Name:        "Kyoto",
		Country:     "Japão",
		Description: "Antiga capital do Japão, conhecida por seus templos históricos, jardins tradicionais, e a experiência da cultura japonesa autêntica.",
		ImageURL:    "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e",
		Tags:        []string{"cultura", "história", "templos", "jardins", "tradicional"},
		Ratings: types.Ratings{
			Culture:    9.5,
			Nature:     8.0,
			Food:       9.0,
			Adventure:  6.5,
			Relaxation: 8.5,
		},
		BestTimeToVisit: []string{"março", "abril", "outubro", "novembro"},
		AverageCost:     types.CostTierMedium,
	},
	{
		ID:          "dest-002",
		Name:        "Costa Rica",
		Country:     "Costa Rica",
		Description: "Paraíso natural com biodiversidade impressionante, florestas tropicais, vulcões ativos e praias exuberantes para os amantes da natureza.",
		ImageURL:    "https://images.unsplash.com/photo-1518182170546-07661fd94144",
		Tags:        []string{"natureza", "fauna", "floresta", "praia", "aventura"},
		Ratings: types.Ratings{
			Culture:    7.0,
			Nature:     9.8,
			Food:       7.5,
			Adventure:  9.2,
			Relaxation: 8.0,
		},
		BestTimeToVisit: []string{"dezembro", "janeiro", "fevereiro", "março", "abril"},
		AverageCost:     types.CostTierMedium,
	},
	{
		ID:          "dest-003",
		Name:        "Porto",
		Country:     "Portugal",
		Description: "Cidade histórica com arquitetura deslumbrante, famosa por seu vinho do porto, comida deliciosa e um charme autêntico português.",
		ImageURL:    "https://images.unsplash.com/photo-1555881400-74d7acaacd8b",
		Tags:        []string{"vinho", "arquitetura", "gastronomia", "história", "cultura"},
		Ratings: types.Ratings{
			Culture:    9.0,
			Nature:     7.0,
			Food:       9.5,
			Adventure:  6.0,
			Relaxation: 8.0,
		},
		BestTimeToVisit: []string{"maio", "junho", "setembro", "outubro"},
		AverageCost:     types.CostTierMedium,
	},
	{
		ID:          "dest-004",
		Name:        "Ilha de Santorini",
		Country:     "Grécia",
		Description: "Ilha vulcânica famosa por suas casas brancas com telhados azuis, pôr do sol espetacular e vistas impressionantes do Mar Mediterrâneo.",
		ImageURL:    "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff",
		Tags:        []string{"ilha", "romântico", "vistas", "praia", "gastronomia"},
		Ratings: types.Ratings{
			Culture:    8.0,
			Nature:     8.5,
			Food:       8.0,
			Adventure:  6.5,
			Relaxation: 9.5,
		},
		BestTimeToVisit: []string{"abril", "maio", "junho", "setembro", "outubro"},
		AverageCost:     types.CostTierHigh,
	},
	{
		ID:          "dest-005",
		Name:        "Marrakech",
		Country:     "Marrocos",
		Description: "Cidade vibrante conhecida por seus mercados tradicionais (souks), palácios históricos e atmosfera cultural única entre o deserto e as montanhas.",
		ImageURL:    "https://images.unsplash.com/photo-1597212618440-806262de4f6b",
		Tags:        []string{"mercados", "exótico", "cultura", "história", "arquitetura"},
		Ratings: types.Ratings{
			Culture:    9.5,
			Nature:     7.0,
			Food:       8.5,
			Adventure:  8.0,
			Relaxation: 7.0,
		},
		BestTimeToVisit: []string{"março", "abril", "maio", "outubro", "novembro"},
		AverageCost:     types.CostTierLow,
	},
	{
		ID:          "dest-006",
		Name:        "Nova Zelândia",
		Country:     "Nova Zelândia",
		Description: "País com paisagens de tirar o fôlego, desde montanhas nevadas até praias intocadas e florestas primitivas, perfeito para aventureiros.",
		ImageURL:    "https://images.unsplash.com/photo-1493606278519-11aa9f86e40a",
		Tags:        []string{"natureza", "aventura", "montanhas", "trekking", "paisagens"},
		Ratings: types.Ratings{
			Culture:    7.5,
			Nature:     10.0,
			Food:       7.5,
			Adventure:  9.8,
			Relaxation: 8.0,
		},
		BestTimeToVisit: []string{"dezembro", "janeiro", "fevereiro", "março"},
		AverageCost:     types.CostTierHigh,
	},
	{
		ID:          "dest-007",
		Name:        "Budapeste",
		Country:     "Hungria",
		Description: "Capital húngara cortada pelo Rio Danúbio, conhecida por sua arquitetura histórica, banhos termais e cena gastronômica emergente.",
		ImageURL:    "https://images.unsplash.com/photo-1551867633-194f125bcc72",
		Tags:        []string{"arquitetura", "história", "termas", "cultura", "gastronomia"},
		Ratings: types.Ratings{
			Culture:    8.5,
			Nature:     6.5,
			Food:       8.0,
			Adventure:  6.0,
			Relaxation: 8.5,
		},
		BestTimeToVisit: []string{"abril", "maio", "setembro", "outubro"},
		AverageCost:     types.CostTierLow,
	},
	{
		ID:          "dest-008",
		Name:        "Ilha de Bali",
		Country:     "Indonésia",
		Description: "Ilha paradisíaca com praias de areia branca, templos hindus, terraços de arroz e uma cultura única que mistura espiritualidade e relaxamento.",
		ImageURL:    "https://images.unsplash.com/photo-1537996194471-e657df975ab4",
		Tags:        []string{"praia", "cultura", "templos", "natureza", "relaxamento"},
		Ratings: types.Ratings{
			Culture:    8.5,
			Nature:     9.0,
			Food:       8.0,
			Adventure:  7.5,
			Relaxation: 9.5,
		},
		BestTimeToVisit: []string{"abril", "maio", "junho", "setembro", "outubro"},
		AverageCost:     types.CostTierLow,
	},
}
