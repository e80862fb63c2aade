package entity

type AudioGuideID string

const (
	AudioGuideVisa  AudioGuideID = "visa"
	AudioGuideWork  AudioGuideID = "work"
	AudioGuideStudy AudioGuideID = "study"
)

const DefaultAudioGuide = AudioGuideVisa

type AudioGuide struct {
	ID      AudioGuideID `yaml:"id" json:"id" validate:"required,oneof=visa work study"`
	Title   string       `yaml:"title" json:"title" validate:"required"`
	Content string       `yaml:"content" json:"content" validate:"required"`
}

type FeatureCard struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
}
