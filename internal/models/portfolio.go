package models

// PortfolioItem описывает проект в портфолио.
// Коллекция сохраняется целиком: клиент присылает полный массив,
// уникальность id внутри массива — ответственность клиента.
type PortfolioItem struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          *string  `json:"url,omitempty"`
	GitHub       *string  `json:"github,omitempty"`
}

// DefaultPortfolioItems возвращает проекты, которые отдаются,
// пока портфолио ни разу не сохраняли на диск.
func DefaultPortfolioItems() []PortfolioItem {
	url := "https://portfolio.ronnyreyes.com"
	github := "https://github.com/ronnyreyes/portfolio"
	return []PortfolioItem{
		{
			ID:           1,
			Name:         "Photography Portfolio",
			Description:  "A modern photography portfolio showcasing nature, macro, and social photography with advanced image management.",
			Technologies: []string{"React", "TypeScript", "Vite", "TailwindCSS", "shadcn/ui"},
			URL:          &url,
			GitHub:       &github,
		},
	}
}
