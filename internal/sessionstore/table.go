package sessionstore

import (
	"context"
	"net/url"

	"career-navigator/internal/domain/roadmap"
)

// Table operations always run with the service key: the proxy is a privileged
// server-side caller, the same way the original helper server was.

const (
	usersTable    = "/rest/v1/users"
	roadmapsTable = "/rest/v1/roadmaps"
)

// UpsertProfile inserts-or-updates a row of the users table keyed by its
// primary key and returns the stored representation.
func (c *Client) UpsertProfile(ctx context.Context, profile map[string]any) ([]map[string]any, error) {
	var rows []map[string]any
	err := c.do(ctx, requestOpts{
		method: "POST",
		path:   usersTable,
		key:    c.tableKey(),
		prefer: "resolution=merge-duplicates,return=representation",
		body:   profile,
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// InsertRoadmap appends a row to the roadmaps table. Always an insert, never
// an upsert: every save is a fresh row.
func (c *Client) InsertRoadmap(ctx context.Context, record map[string]any) ([]map[string]any, error) {
	var rows []map[string]any
	err := c.do(ctx, requestOpts{
		method: "POST",
		path:   roadmapsTable,
		key:    c.tableKey(),
		prefer: "return=representation",
		body:   []map[string]any{record},
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListRoadmaps returns the saved roadmap rows for one user.
func (c *Client) ListRoadmaps(ctx context.Context, userID string) ([]roadmap.SavedRow, error) {
	q := url.Values{}
	q.Set("user_id", "eq."+userID)
	q.Set("select", "*")

	var rows []roadmap.SavedRow
	err := c.do(ctx, requestOpts{
		method: "GET",
		path:   roadmapsTable,
		query:  q.Encode(),
		key:    c.tableKey(),
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
