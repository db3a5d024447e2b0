package api

import (
	"context"
	"fmt"
	"net/http"

	"lexcal/pkg/utils"
)

// ListEvents fetches events matching the query. The result is the
// full matching set; the backend does not paginate this endpoint.
func (c *Client) ListEvents(ctx context.Context, q EventQuery) ([]Event, error) {
	var events []Event
	if err := c.do(ctx, http.MethodGet, "/events", q.Values(), nil, &events); err != nil {
		return nil, err
	}
	utils.Log("Loaded %d events from store", len(events))
	return events, nil
}

// CreateEvent creates a new event. The store assigns the id and the
// audit timestamps. Title and case id must be validated by the caller
// before invocation.
func (c *Client) CreateEvent(ctx context.Context, data CreateEventData) (*Event, error) {
	var created Event
	if err := c.do(ctx, http.MethodPost, "/events", nil, data, &created); err != nil {
		return nil, err
	}
	utils.Log("Created event %d: %s", created.ID, created.Title)
	return &created, nil
}

// UpdateEvent resends the full mutable field set for an event. There
// are no partial-patch semantics; unchanged fields go over the wire
// too.
func (c *Client) UpdateEvent(ctx context.Context, id int, data CreateEventData) (*Event, error) {
	var updated Event
	path := fmt.Sprintf("/events/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, data, &updated); err != nil {
		return nil, err
	}
	utils.Log("Updated event %d", id)
	return &updated, nil
}

// DeleteEvent removes an event. No retry on failure beyond surfacing
// the error.
func (c *Client) DeleteEvent(ctx context.Context, id int) error {
	path := fmt.Sprintf("/events/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return err
	}
	utils.Log("Deleted event %d", id)
	return nil
}

// SendReminder triggers server-side reminder dispatch for an event.
// The response payload carries the event but only success/failure is
// consumed; the caller stamps reminder_sent locally.
func (c *Client) SendReminder(ctx context.Context, id int) error {
	path := fmt.Sprintf("/events/%d/send-reminder", id)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, nil); err != nil {
		return err
	}
	utils.Log("Reminder dispatched for event %d", id)
	return nil
}
