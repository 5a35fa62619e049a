package entity

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Text       string `gorm:"column:question;type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	CategoryID uint   `gorm:"column:category;not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// ExcludeIDs возвращает вопросы, ID которых нет в списке excluded. Порядок сохраняется.
func ExcludeIDs(questions []Question, excluded []uint) []Question {
	if len(excluded) == 0 {
		return questions
	}
	skip := make(map[uint]struct{}, len(excluded))
	for _, id := range excluded {
		skip[id] = struct{}{}
	}
	filtered := make([]Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := skip[q.ID]; !ok {
			filtered = append(filtered, q)
		}
	}
	return filtered
}
