package navigationService

import (
	"PaperPath/internal/api/navigation"
	navigationRepository "PaperPath/internal/api/navigation/repository"
	"PaperPath/internal/entity"
	"PaperPath/pkg/log"
	"context"
	"errors"
	"time"
)

func (s *navigationService) GetNavigation(ctx context.Context, sessionID, acceptLanguage string) (*navigation.NavigationResponse, error) {
	state, err := s.loadState(ctx, sessionID, acceptLanguage)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveState(ctx, *state); err != nil {
		return nil, navigation.ErrSessionStoreFailure
	}

	return s.buildResponse(*state), nil
}

func (s *navigationService) SetView(ctx context.Context, sessionID, acceptLanguage string, view entity.View) (*navigation.NavigationResponse, error) {
	state, err := s.loadState(ctx, sessionID, acceptLanguage)
	if err != nil {
		return nil, err
	}

	state.View = entity.ParseView(string(view))
	if err := s.repo.SaveState(ctx, *state); err != nil {
		return nil, navigation.ErrSessionStoreFailure
	}

	log.WithRequestID(ctx).WithFields(log.Fields{
		"session_id": state.SessionID,
		"view":       state.View,
	}).Debug("View changed")

	return s.buildResponse(*state), nil
}

func (s *navigationService) SetLanguage(ctx context.Context, sessionID, acceptLanguage string, lang entity.LanguageCode) (*navigation.NavigationResponse, error) {
	state, err := s.loadState(ctx, sessionID, acceptLanguage)
	if err != nil {
		return nil, err
	}

	if !lang.Valid() {
		lang = entity.DefaultLanguage
	}
	state.Language = lang
	if err := s.repo.SaveState(ctx, *state); err != nil {
		return nil, navigation.ErrSessionStoreFailure
	}

	log.WithRequestID(ctx).WithFields(log.Fields{
		"session_id": state.SessionID,
		"language":   state.Language,
	}).Debug("Language changed")

	return s.buildResponse(*state), nil
}

func (s *navigationService) ResolveLanguage(ctx context.Context, sessionID, queryLang, acceptLanguage string) entity.LanguageCode {
	if queryLang != "" {
		if code, ok := entity.ParseLanguageCode(queryLang); ok {
			return code
		}
		return entity.DefaultLanguage
	}

	if sessionID != "" && s.utils.IsULID(sessionID) {
		state, err := s.repo.GetState(ctx, sessionID)
		if err == nil && state.Language.Valid() {
			return state.Language
		}
	}

	return s.table.Negotiate(acceptLanguage)
}

// loadState returns the stored state, or a fresh one when the client has no
// session yet or its session expired.
func (s *navigationService) loadState(ctx context.Context, sessionID, acceptLanguage string) (*entity.NavigationState, error) {
	if sessionID == "" {
		id, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return nil, err
		}
		return s.newState(id, acceptLanguage), nil
	}

	if !s.utils.IsULID(sessionID) {
		return nil, navigation.ErrInvalidSessionID
	}

	state, err := s.repo.GetState(ctx, sessionID)
	if errors.Is(err, navigationRepository.ErrStateNotFound) {
		return s.newState(sessionID, acceptLanguage), nil
	}
	if err != nil {
		return nil, navigation.ErrSessionStoreFailure
	}

	state.View = entity.ParseView(string(state.View))
	if !state.Language.Valid() {
		state.Language = entity.DefaultLanguage
	}
	return state, nil
}

func (s *navigationService) newState(sessionID, acceptLanguage string) *entity.NavigationState {
	return &entity.NavigationState{
		SessionID: sessionID,
		View:      entity.ViewHome,
		Language:  s.table.Negotiate(acceptLanguage),
	}
}

func (s *navigationService) buildResponse(state entity.NavigationState) *navigation.NavigationResponse {
	bundle := s.table.Resolve(string(state.Language))

	items := make([]navigation.NavItem, 0, len(entity.Views))
	for _, v := range entity.Views {
		items = append(items, navigation.NavItem{
			View:   v,
			Label:  bundle.Navigation.Label(v),
			Active: v == state.View,
		})
	}

	options := s.table.Languages()
	languages := make([]navigation.LanguageItem, 0, len(options))
	for _, o := range options {
		languages = append(languages, navigation.LanguageItem{
			LanguageOption: o,
			Active:         o.Code == state.Language,
		})
	}

	return &navigation.NavigationResponse{
		SessionID: state.SessionID,
		View:      state.View,
		Language:  state.Language,
		Items:     items,
		Languages: languages,
	}
}
