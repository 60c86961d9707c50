package source

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"

	_ "github.com/lib/pq"

	"github.com/guestmatch/guestmatch/pkg/roster"
)

// PostgresSource reads one event's guests from the guests table.
// Rows are returned in their stored position order.
type PostgresSource struct {
	db    *sql.DB
	event string
	dsn   string
}

// NewPostgresSource opens a connection pool for the given DSN.
func NewPostgresSource(dsn, event string) (*PostgresSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return NewPostgresSourceFromDB(db, event, dsn), nil
}

// NewPostgresSourceFromDB wraps an existing pool.
func NewPostgresSourceFromDB(db *sql.DB, event, dsn string) *PostgresSource {
	return &PostgresSource{db: db, event: event, dsn: dsn}
}

func (s *PostgresSource) Load(ctx context.Context) (*roster.Roster, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, description, discussion_topics, common_interests, matching_scores
		 FROM guests WHERE event_slug = $1 ORDER BY position, name`,
		s.event,
	)
	if err != nil {
		return nil, fmt.Errorf("query guests for %s: %w", s.event, err)
	}
	defer rows.Close()

	var guests []roster.Guest
	for rows.Next() {
		var (
			g                        roster.Guest
			topics, interests, score []byte
		)
		if err := rows.Scan(&g.Name, &g.Description, &topics, &interests, &score); err != nil {
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		if err := unmarshalColumn(topics, &g.DiscussionTopics); err != nil {
			return nil, fmt.Errorf("guest %s discussion_topics: %w", g.Name, err)
		}
		if err := unmarshalColumn(interests, &g.CommonInterests); err != nil {
			return nil, fmt.Errorf("guest %s common_interests: %w", g.Name, err)
		}
		if err := unmarshalColumn(score, &g.MatchingScores); err != nil {
			return nil, fmt.Errorf("guest %s matching_scores: %w", g.Name, err)
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate guests: %w", err)
	}

	r, err := roster.New(guests)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s, err)
	}
	return r, nil
}

func unmarshalColumn(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func (s *PostgresSource) Close() error { return s.db.Close() }

// String omits credentials from the DSN.
func (s *PostgresSource) String() string {
	u, err := url.Parse(s.dsn)
	if err != nil || u.Host == "" {
		return "postgres (" + s.event + ")"
	}
	return "postgres://" + u.Host + u.Path + "#" + s.event
}
