package catalog

// Freelancer описывает одну карточку фрилансера из каталога.
type Freelancer struct {
	Username         string  `json:"username"`
	ProfileLink      string  `json:"profile_link"`
	ProfileImage     string  `json:"profile_image"`
	Rating           float64 `json:"rating"`
	Reviews          int     `json:"reviews"`
	ShortDescription string  `json:"short_description"`
	Price            float64 `json:"price"`
}

// TaggedFreelancer — карточка с категорией, к которой она относится.
// Используется в сквозных операциях (поиск и фильтрация по всем категориям).
type TaggedFreelancer struct {
	Freelancer
	Category Category `json:"category"`
}

// Metadata хранит происхождение данных каталога: когда и кем обновлены.
// Перезаписывается целиком при каждой успешной загрузке.
type Metadata struct {
	LastUpdated string `json:"last_updated"`
	UpdatedBy   string `json:"updated_by"`
}
