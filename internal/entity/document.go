package entity

type DocumentCategory string

const (
	DocumentCategoryVisa      DocumentCategory = "visa"
	DocumentCategoryWork      DocumentCategory = "work"
	DocumentCategoryStudy     DocumentCategory = "study"
	DocumentCategoryResidence DocumentCategory = "residence"
)

var DocumentCategories = []DocumentCategory{
	DocumentCategoryVisa,
	DocumentCategoryWork,
	DocumentCategoryStudy,
	DocumentCategoryResidence,
}

type DifficultyLevel string

const (
	DifficultyEasy      DifficultyLevel = "easy"
	DifficultyModerate  DifficultyLevel = "moderate"
	DifficultyDifficult DifficultyLevel = "difficult"
)

// Document has no identifier beyond its position in the bundle.
type Document struct {
	Title           string           `yaml:"title" json:"title" validate:"required"`
	Category        DocumentCategory `yaml:"category" json:"category" validate:"required,oneof=visa work study residence"`
	Description     string           `yaml:"description" json:"description" validate:"required"`
	Requirements    []string         `yaml:"requirements" json:"requirements" validate:"required,min=1,dive,required"`
	Difficulty      DifficultyLevel  `yaml:"difficulty" json:"difficulty" validate:"required,oneof=easy moderate difficult"`
	DifficultyLabel string           `yaml:"difficulty_label" json:"difficulty_label" validate:"required"`
	TimeEstimate    string           `yaml:"time_estimate" json:"time_estimate" validate:"required"`
}

func (d Document) FilterTag() string {
	return string(d.Category)
}

func (d Document) SearchFields() []string {
	return []string{d.Title, d.Description}
}
