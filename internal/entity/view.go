package entity

type View string

const (
	ViewHome      View = "home"
	ViewDocuments View = "documents"
	ViewServices  View = "services"
	ViewAudio     View = "audio"
)

var Views = []View{ViewHome, ViewDocuments, ViewServices, ViewAudio}

// ParseView falls back to the home screen for anything it does not know.
func ParseView(s string) View {
	for _, v := range Views {
		if string(v) == s {
			return v
		}
	}
	return ViewHome
}
