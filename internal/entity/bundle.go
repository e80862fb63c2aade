package entity

// Bundle is the complete set of display strings and content for one language.
// Every field is required: lookups never fall back field by field.
type Bundle struct {
	Language   LanguageCode      `yaml:"language" json:"language" validate:"required"`
	Navigation NavigationStrings `yaml:"navigation" json:"navigation"`
	Home       HomeStrings       `yaml:"home" json:"home"`
	Documents  DocumentStrings   `yaml:"documents" json:"documents"`
	Services   ServiceStrings    `yaml:"services" json:"services"`
	Audio      AudioStrings      `yaml:"audio" json:"audio"`
}

type NavigationStrings struct {
	Home      string `yaml:"home" json:"home" validate:"required"`
	Documents string `yaml:"documents" json:"documents" validate:"required"`
	Services  string `yaml:"services" json:"services" validate:"required"`
	Audio     string `yaml:"audio" json:"audio" validate:"required"`
}

func (n NavigationStrings) Label(v View) string {
	switch v {
	case ViewDocuments:
		return n.Documents
	case ViewServices:
		return n.Services
	case ViewAudio:
		return n.Audio
	default:
		return n.Home
	}
}

type HomeStrings struct {
	Welcome            string `yaml:"welcome" json:"welcome" validate:"required"`
	Subtitle           string `yaml:"subtitle" json:"subtitle" validate:"required"`
	Description        string `yaml:"description" json:"description" validate:"required"`
	Features           string `yaml:"features" json:"features" validate:"required"`
	DocumentGuide      string `yaml:"document_guide" json:"document_guide" validate:"required"`
	DocumentGuideDesc  string `yaml:"document_guide_desc" json:"document_guide_desc" validate:"required"`
	ServiceLocator     string `yaml:"service_locator" json:"service_locator" validate:"required"`
	ServiceLocatorDesc string `yaml:"service_locator_desc" json:"service_locator_desc" validate:"required"`
	AudioSupport       string `yaml:"audio_support" json:"audio_support" validate:"required"`
	AudioSupportDesc   string `yaml:"audio_support_desc" json:"audio_support_desc" validate:"required"`
	OfflineMode        string `yaml:"offline_mode" json:"offline_mode" validate:"required"`
	OfflineModeDesc    string `yaml:"offline_mode_desc" json:"offline_mode_desc" validate:"required"`
	MultiLanguage      string `yaml:"multi_language" json:"multi_language" validate:"required"`
	MultiLanguageDesc  string `yaml:"multi_language_desc" json:"multi_language_desc" validate:"required"`
	GetStarted         string `yaml:"get_started" json:"get_started" validate:"required"`
	HowItWorks         string `yaml:"how_it_works" json:"how_it_works" validate:"required"`
	HeroTitle          string `yaml:"hero_title" json:"hero_title" validate:"required"`
	HeroDesc           string `yaml:"hero_desc" json:"hero_desc" validate:"required"`
	StartProcess       string `yaml:"start_process" json:"start_process" validate:"required"`
	FindOffices        string `yaml:"find_offices" json:"find_offices" validate:"required"`
	WhyChoose          string `yaml:"why_choose" json:"why_choose" validate:"required"`
	WhyChooseDesc      string `yaml:"why_choose_desc" json:"why_choose_desc" validate:"required"`
	ClickToTry         string `yaml:"click_to_try" json:"click_to_try" validate:"required"`
}

type DocumentCategoryLabels struct {
	All       string `yaml:"all" json:"all" validate:"required"`
	Visa      string `yaml:"visa" json:"visa" validate:"required"`
	Work      string `yaml:"work" json:"work" validate:"required"`
	Study     string `yaml:"study" json:"study" validate:"required"`
	Residence string `yaml:"residence" json:"residence" validate:"required"`
}

func (l DocumentCategoryLabels) Label(c DocumentCategory) string {
	switch c {
	case DocumentCategoryVisa:
		return l.Visa
	case DocumentCategoryWork:
		return l.Work
	case DocumentCategoryStudy:
		return l.Study
	case DocumentCategoryResidence:
		return l.Residence
	default:
		return l.All
	}
}

type DocumentStrings struct {
	Title         string                 `yaml:"title" json:"title" validate:"required"`
	Subtitle      string                 `yaml:"subtitle" json:"subtitle" validate:"required"`
	Search        string                 `yaml:"search" json:"search" validate:"required"`
	Categories    string                 `yaml:"categories" json:"categories" validate:"required"`
	Labels        DocumentCategoryLabels `yaml:"labels" json:"labels"`
	DownloadGuide string                 `yaml:"download_guide" json:"download_guide" validate:"required"`
	Required      string                 `yaml:"required" json:"required" validate:"required"`
	Optional      string                 `yaml:"optional" json:"optional" validate:"required"`
	Empty         string                 `yaml:"empty" json:"empty" validate:"required"`
	Documents     []Document             `yaml:"documents" json:"documents" validate:"required,min=1,dive"`
}

type OfficeTypeLabels struct {
	All        string `yaml:"all" json:"all" validate:"required"`
	Prefecture string `yaml:"prefecture" json:"prefecture" validate:"required"`
	Embassy    string `yaml:"embassy" json:"embassy" validate:"required"`
	University string `yaml:"university" json:"university" validate:"required"`
	Hospital   string `yaml:"hospital" json:"hospital" validate:"required"`
}

func (l OfficeTypeLabels) Label(t OfficeType) string {
	switch t {
	case OfficeTypePrefecture:
		return l.Prefecture
	case OfficeTypeEmbassy:
		return l.Embassy
	case OfficeTypeUniversity:
		return l.University
	case OfficeTypeHospital:
		return l.Hospital
	default:
		return l.All
	}
}

type ServiceStrings struct {
	Title          string           `yaml:"title" json:"title" validate:"required"`
	Subtitle       string           `yaml:"subtitle" json:"subtitle" validate:"required"`
	SearchLocation string           `yaml:"search_location" json:"search_location" validate:"required"`
	UseMyLocation  string           `yaml:"use_my_location" json:"use_my_location" validate:"required"`
	ServiceTypes   string           `yaml:"service_types" json:"service_types" validate:"required"`
	Labels         OfficeTypeLabels `yaml:"labels" json:"labels"`
	OpenNow        string           `yaml:"open_now" json:"open_now" validate:"required"`
	Closed         string           `yaml:"closed" json:"closed" validate:"required"`
	GetDirections  string           `yaml:"get_directions" json:"get_directions" validate:"required"`
	CallNow        string           `yaml:"call_now" json:"call_now" validate:"required"`
	Empty          string           `yaml:"empty" json:"empty" validate:"required"`
	Offices        []ServiceOffice  `yaml:"offices" json:"offices" validate:"required,min=1,dive"`
}

type AudioStrings struct {
	Title          string        `yaml:"title" json:"title" validate:"required"`
	Subtitle       string        `yaml:"subtitle" json:"subtitle" validate:"required"`
	ListenToGuide  string        `yaml:"listen_to_guide" json:"listen_to_guide" validate:"required"`
	VoiceControl   string        `yaml:"voice_control" json:"voice_control" validate:"required"`
	StartListening string        `yaml:"start_listening" json:"start_listening" validate:"required"`
	StopListening  string        `yaml:"stop_listening" json:"stop_listening" validate:"required"`
	PlayGuide      string        `yaml:"play_guide" json:"play_guide" validate:"required"`
	StopReading    string        `yaml:"stop_reading" json:"stop_reading" validate:"required"`
	VoiceSpeed     string        `yaml:"voice_speed" json:"voice_speed" validate:"required"`
	Slow           string        `yaml:"slow" json:"slow" validate:"required"`
	Normal         string        `yaml:"normal" json:"normal" validate:"required"`
	Fast           string        `yaml:"fast" json:"fast" validate:"required"`
	SelectDocument string        `yaml:"select_document" json:"select_document" validate:"required"`
	Features       string        `yaml:"features" json:"features" validate:"required"`
	VoiceCommands  string        `yaml:"voice_commands" json:"voice_commands" validate:"required"`
	ListeningHint  string        `yaml:"listening_hint" json:"listening_hint" validate:"required"`
	Commands       []string      `yaml:"commands" json:"commands" validate:"required,min=1,dive,required"`
	FeatureCards   []FeatureCard `yaml:"feature_cards" json:"feature_cards" validate:"required,min=1,dive"`
	Guides         []AudioGuide  `yaml:"guides" json:"guides" validate:"required,len=3,dive"`
}

func (a AudioStrings) Guide(id AudioGuideID) (AudioGuide, bool) {
	for _, g := range a.Guides {
		if g.ID == id {
			return g, true
		}
	}
	return AudioGuide{}, false
}
