package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	defaultCalendarID = "primary"
	defaultTokenPath  = "token.json"
	pageSize          = 250
)

// Client wraps the Google Calendar API service for read access.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON accepts Service Account JSON, or OAuth desktop
// credentials paired with a token.json in the working directory.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarReadonlyScope},
		Endpoint:     google.Endpoint,
	}

	tok, tokenErr := loadToken(defaultTokenPath)
	if tokenErr != nil {
		if os.IsNotExist(tokenErr) {
			return nil, fmt.Errorf("google credentials are OAuth Desktop type but no %s found: run scripts/gcal-auth or use a Service Account", defaultTokenPath)
		}
		return nil, tokenErr
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListEvents returns the events overlapping [TimeMin, TimeMax), ordered by start time.
// Cancelled instances are skipped.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}

	call := c.service.Events.List(calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339))
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	} else {
		call = call.MaxResults(pageSize)
	}

	var out []Event
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			if item.Status == "cancelled" {
				continue
			}
			ev, err := toEvent(item, loc)
			if err != nil {
				return err
			}
			out = append(out, ev)
			if req.MaxResults > 0 && int64(len(out)) >= req.MaxResults {
				return errStopPaging
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopPaging) {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return out, nil
}

var errStopPaging = errors.New("gcalendar: stop paging")

func toEvent(item *calendar.Event, loc *time.Location) (Event, error) {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		HtmlLink:    item.HtmlLink,
	}

	start, allDay, err := parseEventTime(item.Start, loc)
	if err != nil {
		return Event{}, fmt.Errorf("event %s start: %w", item.Id, err)
	}
	end, _, err := parseEventTime(item.End, loc)
	if err != nil {
		return Event{}, fmt.Errorf("event %s end: %w", item.Id, err)
	}
	ev.StartTime, ev.EndTime, ev.AllDay = start, end, allDay
	return ev, nil
}

func parseEventTime(t *calendar.EventDateTime, loc *time.Location) (time.Time, bool, error) {
	if t == nil {
		return time.Time{}, false, nil
	}
	if t.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", t.Date, loc)
		return d, true, err
	}
	if t.DateTime != "" {
		d, err := time.Parse(time.RFC3339, t.DateTime)
		if err != nil {
			return time.Time{}, false, err
		}
		return d.In(loc), false, nil
	}
	return time.Time{}, false, nil
}
