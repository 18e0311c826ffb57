package catalog

import "wolkecarwash/internal/models"

// Bundled default content. Used on first start and by Reset.

func defaultWashPackages() []models.WashPackage {
	return []models.WashPackage{
		{
			ID:       "standard",
			Name:     "STANDARD",
			Price:    11,
			Features: []string{"Außenwäsche", "Schaumreinigung", "Felgenreinigung", "Trocknung"},
			Color:    "bg-blue-500",
		},
		{
			ID:       "classic",
			Name:     "CLASSIC",
			Price:    14,
			Features: []string{"Standard-Paket inklusive", "Innenreinigung", "Cockpitpflege", "Scheibenreinigung"},
			Color:    "bg-green-500",
		},
		{
			ID:       "spezial",
			Name:     "SPEZIAL",
			Price:    15,
			Features: []string{"Classic-Paket inklusive", "Himmelreinigung", "Sitzreinigung", "Zusätzliche Politur"},
			Color:    "bg-yellow-500",
		},
		{
			ID:       "premium",
			Name:     "PREMIUM",
			Price:    18,
			Features: []string{"Spezial-Paket inklusive", "Intensive Innenreinigung", "Motorwäsche", "Schutzversiegelung"},
			Color:    "bg-red-500",
		},
	}
}

func defaultProducts() []models.Product {
	return []models.Product{
		{
			ID:          "product-1",
			Name:        "Autoshampoo",
			Price:       9.99,
			Description: "Hochschäumende Spezialformel, schonend zum Autolack.",
			Image:       "https://images.unsplash.com/photo-1618570364947-710d2c120d8c",
			Stock:       25,
			Category:    "Reinigungsmittel",
			Features: []string{
				"Hochschäumende Formel",
				"Lackschonende Rezeptur",
				"Umweltfreundliche Inhaltsstoffe",
				"Professionelle Ergebnisse",
			},
		},
		{
			ID:          "product-2",
			Name:        "Felgenreiniger",
			Price:       12.50,
			Description: "Löst hartnäckigen Felgenschmutz mühelos.",
			Image:       "https://plus.unsplash.com/premium_photo-1661693484578-6497e90fecd6",
			Stock:       18,
			Category:    "Reinigungsmittel",
			Features: []string{
				"Säurefreie Formel",
				"Für alle Felgentypen geeignet",
				"Schnelle Wirkung",
				"Entfernt Bremsstaub und Straßenschmutz",
			},
		},
		{
			ID:          "product-3",
			Name:        "Mikrofasertücher (5er-Set)",
			Price:       15.99,
			Description: "Hochsaugfähige Premium-Mikrofasertücher für die Fahrzeugpflege.",
			Image:       "https://images.unsplash.com/photo-1563453392212-326f5e854473",
			Stock:       30,
			Category:    "Zubehör",
			Features: []string{
				"Ultra-saugfähige Mikrofaser",
				"Weiche Webtechnologie",
				"Kratzfrei",
				"Waschbar und langlebig",
			},
		},
		{
			ID:          "product-4",
			Name:        "Schnellglanz-Politur",
			Price:       18.99,
			Description: "Professionelle Politur für sofortigen Glanz.",
			Image:       "https://images.unsplash.com/photo-1530866495561-507c9faab2ed",
			Stock:       15,
			Category:    "Pflegemittel",
			Features: []string{
				"Formel auf Silikonbasis",
				"Wasserabweisender Effekt",
				"UV-Schutz",
				"Langanhaltender Glanz",
			},
		},
	}
}

func defaultSlides() []models.Slide {
	return []models.Slide{
		{
			ID:          "slider-1",
			URL:         "https://images.unsplash.com/photo-1572635148818-ef6bbc401acb",
			Title:       "Professionelle Autowäsche",
			Description: "Ihr Auto ist bei uns in guten Händen, der Glanz hält lange",
		},
		{
			ID:          "slider-2",
			URL:         "https://images.unsplash.com/photo-1552465011-b4e21bf6e79a",
			Title:       "Erfahrenes Team",
			Description: "Bester Service rund um die Fahrzeugpflege",
		},
		{
			ID:          "slider-3",
			URL:         "https://images.unsplash.com/photo-1601362840469-51e4d8d58785",
			Title:       "Umweltfreundliche Produkte",
			Description: "Gründliche Reinigung ohne Schaden für Ihr Fahrzeug und die Umwelt",
		},
	}
}

func defaultAbout() models.AboutContent {
	return models.AboutContent{
		Title:          "Über uns | Wolke Carwash",
		HeroImage:      "https://images.unsplash.com/photo-1520340356584-f9917d1eea6f",
		WelcomeMessage: "Willkommen bei Wolke Carwash",
		MainDescription: "Wolke Carwash, gegründet im Jahr 2020, bietet Fahrzeugreinigung " +
			"und -pflege auf höchstem Niveau. Kundenzufriedenheit steht bei uns immer im " +
			"Vordergrund, mit umweltfreundlichen Produkten und professioneller Ausrüstung.",
		Sections: []models.AboutSection{
			{
				ID:      "history",
				Title:   "Unsere Geschichte",
				Content: "Wolke Carwash wurde 2020 von zwei Autoliebhabern gegründet. Seit der Eröffnung entwickeln wir Ausrüstung und Servicequalität kontinuierlich weiter.",
				Image:   "https://plus.unsplash.com/premium_photo-1682142564647-6f4396a34d02",
			},
			{
				ID:      "mission",
				Title:   "Unsere Mission",
				Content: "Fahrzeugwäsche und Pflege von höchster Qualität, mit umweltfreundlichen Produkten und schnellen, effektiven Dienstleistungen.",
				Image:   "https://images.unsplash.com/photo-1641494639075-5571f7ef486b",
			},
			{
				ID:      "vision",
				Title:   "Unsere Vision",
				Content: "Eine führende Position in der Fahrzeugpflegebranche, mit kundenorientiertem Ansatz und einem nachhaltigen Geschäftsmodell.",
				Image:   "https://images.unsplash.com/photo-1507208773393-40d9fc670acf",
			},
			{
				ID:      "team",
				Title:   "Unser Team",
				Content: "Unser erfahrenes Team bildet sich kontinuierlich weiter und pflegt jedes Fahrzeug mit der gleichen Sorgfalt wie das eigene.",
				Image:   "https://images.unsplash.com/photo-1552664688-cf412ec27db2",
			},
		},
		Stats: []models.AboutStat{
			{ID: "stats-customers", Label: "Zufriedene Kunden", Value: "5000+"},
			{ID: "stats-years", Label: "Jahre Erfahrung", Value: "5"},
			{ID: "stats-washes", Label: "Fahrzeuge pro Monat", Value: "1200+"},
		},
	}
}

func defaultSiteData() models.SiteData {
	return models.SiteData{
		WashPackages: defaultWashPackages(),
		SliderData:   defaultSlides(),
		ProductData:  defaultProducts(),
		AboutContent: defaultAbout(),
	}
}
