package eventor

import "context"

const (
	pathEntries         = "entries"
	pathCompetitorCount = "competitorcount"
)

// EntriesOptions narrows an Entries search. Event dates use the date
// defaults; entry and modify times use the timestamp defaults.
type EntriesOptions struct {
	OrganisationIDs            []int64
	EventIDs                   []int64
	EventClassIDs              []int64
	FromEventDate              string
	ToEventDate                string
	FromEntryDate              string
	ToEntryDate                string
	FromModifyDate             string
	ToModifyDate               string
	IncludeEntryFees           bool
	IncludePersonElement       bool
	IncludeOrganisationElement bool
	IncludeEventElement        bool
}

// Entries returns the EntryList of persons entered in matching events.
func (c *Client) Entries(ctx context.Context, opts EntriesOptions) (Node, error) {
	q := newParams()
	q.setDefault("fromEventDate", opts.FromEventDate, DefaultFromDate)
	q.setDefault("toEventDate", opts.ToEventDate, DefaultToDate)
	q.setDefault("fromEntryDate", opts.FromEntryDate, DefaultFromTimestamp)
	q.setDefault("toEntryDate", opts.ToEntryDate, DefaultToTimestamp)
	q.setDefault("fromModifyDate", opts.FromModifyDate, DefaultFromTimestamp)
	q.setDefault("toModifyDate", opts.ToModifyDate, DefaultToTimestamp)
	q.setBool("includeEntryFees", opts.IncludeEntryFees)
	q.setBool("includePersonElement", opts.IncludePersonElement)
	q.setBool("includeOrganisationElement", opts.IncludeOrganisationElement)
	q.setBool("includeEventElement", opts.IncludeEventElement)
	setList(q, "organisationIds", opts.OrganisationIDs)
	setList(q, "eventIds", opts.EventIDs)
	setList(q, "eventClassIds", opts.EventClassIDs)

	return c.execute(ctx, pathEntries, q.Values)
}

// CompetitorCountOptions narrows CompetitorCount.
type CompetitorCountOptions struct {
	EventIDs  []int64
	PersonIDs []int64
}

// CompetitorCount returns the CompetitorCountList for the given organisations.
func (c *Client) CompetitorCount(ctx context.Context, organisationIDs []int64, opts CompetitorCountOptions) (Node, error) {
	q := newParams()
	setList(q, "organisationIds", organisationIDs)
	setList(q, "eventIds", opts.EventIDs)
	setList(q, "personIds", opts.PersonIDs)

	return c.execute(ctx, pathCompetitorCount, q.Values)
}
