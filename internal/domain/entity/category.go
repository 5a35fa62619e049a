package entity

import "strconv"

// Category представляет категорию вопросов (Science, Art, ...)
type Category struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Type      string     `gorm:"type:text;not null" json:"type"`
	Questions []Question `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// Key возвращает ID категории в виде строкового ключа для JSON-объекта категорий
func (c *Category) Key() string {
	return strconv.FormatUint(uint64(c.ID), 10)
}

// CategoryMap строит отображение "id" -> type в порядке, в котором категории пришли из хранилища
func CategoryMap(categories []Category) map[string]string {
	result := make(map[string]string, len(categories))
	for i := range categories {
		result[categories[i].Key()] = categories[i].Type
	}
	return result
}
