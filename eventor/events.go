package eventor

import (
	"context"
	"fmt"
)

const (
	pathEvents         = "events"
	pathEventDocuments = "events/documents"
	pathEvent          = "event/%d"
	pathEventClasses   = "eventclasses"
	pathEventEntryFees = "entryfees/events/%d"
)

// EventsOptions narrows an Events search. Empty dates fall back to the
// open ended defaults; empty id lists include everything.
type EventsOptions struct {
	FromDate           string
	ToDate             string
	FromModifyDate     string
	ToModifyDate       string
	EventIDs           []int64
	OrganisationIDs    []int64
	ClassificationIDs  []Classification
	IncludeEntryBreaks bool
	IncludeAttributes  bool
}

// Events returns the EventList matching opts.
func (c *Client) Events(ctx context.Context, opts EventsOptions) (Node, error) {
	q := newParams()
	q.setDefault("fromDate", opts.FromDate, DefaultFromDate)
	q.setDefault("toDate", opts.ToDate, DefaultToDate)
	q.setDefault("fromModifyDate", opts.FromModifyDate, DefaultFromTimestamp)
	q.setDefault("toModifyDate", opts.ToModifyDate, DefaultToTimestamp)
	q.setBool("includeEntryBreaks", opts.IncludeEntryBreaks)
	q.setBool("includeAttributes", opts.IncludeAttributes)
	setList(q, "eventIds", opts.EventIDs)
	setList(q, "organisationIds", opts.OrganisationIDs)
	setList(q, "classificationIds", opts.ClassificationIDs)

	return c.execute(ctx, pathEvents, q.Values)
}

// EventDocumentsOptions narrows an EventDocuments search.
type EventDocumentsOptions struct {
	FromDate        string
	ToDate          string
	EventIDs        []int64
	OrganisationIDs []int64
}

// EventDocuments returns the DocumentList for the matching events.
func (c *Client) EventDocuments(ctx context.Context, opts EventDocumentsOptions) (Node, error) {
	q := newParams()
	q.setDefault("fromDate", opts.FromDate, DefaultFromDate)
	q.setDefault("toDate", opts.ToDate, DefaultToDate)
	setList(q, "eventIds", opts.EventIDs)
	setList(q, "organisationIds", opts.OrganisationIDs)

	return c.execute(ctx, pathEventDocuments, q.Values)
}

// Event returns a single Event.
func (c *Client) Event(ctx context.Context, eventID int64) (Node, error) {
	return c.execute(ctx, fmt.Sprintf(pathEvent, eventID), nil)
}

// EventClassesOptions controls EventClasses.
type EventClassesOptions struct {
	IncludeEntryFees bool
}

// EventClasses returns the EventClassList of an event.
func (c *Client) EventClasses(ctx context.Context, eventID int64, opts EventClassesOptions) (Node, error) {
	q := newParams()
	q.setID("eventId", eventID)
	q.setBool("includeEntryFees", opts.IncludeEntryFees)

	return c.execute(ctx, pathEventClasses, q.Values)
}

// EventEntryFees returns the EntryFeeList of an event.
func (c *Client) EventEntryFees(ctx context.Context, eventID int64) (Node, error) {
	return c.execute(ctx, fmt.Sprintf(pathEventEntryFees, eventID), nil)
}
