package homeService

import (
	"PaperPath/internal/api/home"
	"PaperPath/internal/entity"
	"context"
	"fmt"
)

func (s *homeService) GetHome(ctx context.Context, lang entity.LanguageCode) (*home.HomeResponse, error) {
	bundle := s.table.Resolve(string(lang))
	strs := bundle.Home

	// Multilingual support has no screen of its own.
	features := []home.FeatureCard{
		{Title: strs.DocumentGuide, Description: strs.DocumentGuideDesc, Target: entity.ViewDocuments},
		{Title: strs.MultiLanguage, Description: strs.MultiLanguageDesc},
		{Title: strs.AudioSupport, Description: strs.AudioSupportDesc, Target: entity.ViewAudio},
		{Title: strs.ServiceLocator, Description: strs.ServiceLocatorDesc, Target: entity.ViewServices},
	}
	for i := range features {
		features[i].Number = fmt.Sprintf("%02d", i+1)
	}

	return &home.HomeResponse{
		Language: lang,
		Strings:  strs,
		Features: features,
	}, nil
}
