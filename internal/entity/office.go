package entity

type OfficeType string

const (
	OfficeTypePrefecture OfficeType = "prefecture"
	OfficeTypeEmbassy    OfficeType = "embassy"
	OfficeTypeUniversity OfficeType = "university"
	OfficeTypeHospital   OfficeType = "hospital"
)

var OfficeTypes = []OfficeType{
	OfficeTypePrefecture,
	OfficeTypeEmbassy,
	OfficeTypeUniversity,
	OfficeTypeHospital,
}

// ServiceOffice is a mock listing; Distance is display text, not computed.
type ServiceOffice struct {
	Name        string     `yaml:"name" json:"name" validate:"required"`
	Type        OfficeType `yaml:"type" json:"type" validate:"required,oneof=prefecture embassy university hospital"`
	Address     string     `yaml:"address" json:"address" validate:"required"`
	Phone       string     `yaml:"phone" json:"phone" validate:"required"`
	Hours       string     `yaml:"hours" json:"hours" validate:"required"`
	Distance    string     `yaml:"distance" json:"distance" validate:"required"`
	IsOpen      bool       `yaml:"is_open" json:"is_open"`
	Description string     `yaml:"description" json:"description" validate:"required"`
}

func (o ServiceOffice) FilterTag() string {
	return string(o.Type)
}

func (o ServiceOffice) SearchFields() []string {
	return []string{o.Name, o.Address}
}
