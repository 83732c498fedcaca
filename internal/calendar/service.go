package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	"gorm.io/datatypes"
)

const (
	calendarID = "primary"
	// insertTimeout bounds every outbound calendar call.
	insertTimeout = 10 * time.Second
)

// Service wraps the Google Calendar API behind the app's OAuth client.
// Tokens are passed in per call; the service itself holds no user
// credentials.
type Service struct {
	oauthConfig *oauth2.Config
}

func NewService(clientID, clientSecret, redirectURL string) *Service {
	return &Service{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{gcal.CalendarScope},
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthCodeURL returns the consent URL for the calendar scope with
// offline access, so the exchange yields a refresh token.
func (s *Service) AuthCodeURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for access/refresh tokens.
func (s *Service) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)

	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	return token, nil
}

// InsertEvent creates the event on the user's primary calendar using
// their stored token. The token source refreshes expired access tokens
// transparently via the refresh token.
func (s *Service) InsertEvent(ctx context.Context, token *oauth2.Token, event *gcal.Event) (*gcal.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()

	service, err := gcal.NewService(ctx, option.WithTokenSource(s.oauthConfig.TokenSource(ctx, token)))

	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	created, err := service.Events.Insert(calendarID, event).Context(ctx).Do()

	if err != nil {
		return nil, fmt.Errorf("insert calendar event: %w", err)
	}

	return created, nil
}

// MarshalToken serializes an OAuth token for storage on a
// CalendarCredential row.
func MarshalToken(token *oauth2.Token) (datatypes.JSON, error) {
	raw, err := json.Marshal(token)

	if err != nil {
		return nil, fmt.Errorf("marshal token: %w", err)
	}

	return datatypes.JSON(raw), nil
}

// UnmarshalToken restores a stored OAuth token.
func UnmarshalToken(raw datatypes.JSON) (*oauth2.Token, error) {
	var token oauth2.Token

	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, fmt.Errorf("unmarshal token: %w", err)
	}

	return &token, nil
}
