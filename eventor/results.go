package eventor

import "context"

const (
	pathResultsEvent        = "results/event"
	pathResultsEventIOFXML  = "results/event/iofxml"
	pathResultsPerson       = "results/person"
	pathResultsOrganisation = "results/organisation"
)

// EventResultOptions controls ResultsPerEvent.
type EventResultOptions struct {
	IncludeSplitTimes bool
	// Top limits the list to this many competitors per class. Zero means all.
	Top int
}

// ResultsPerEvent returns the ResultList of an event.
func (c *Client) ResultsPerEvent(ctx context.Context, eventID int64, opts EventResultOptions) (Node, error) {
	q := newParams()
	q.setID("eventId", eventID)
	q.setBool("includeSplitTimes", opts.IncludeSplitTimes)
	q.setOptionalInt("top", opts.Top)

	return c.execute(ctx, pathResultsEvent, q.Values)
}

// IOFXMLResultOptions controls ResultsPerEventIOFXML.
type IOFXMLResultOptions struct {
	EventRaceID       int64
	IncludeSplitTimes bool
	// TotalResult returns the overall result of a multi day event.
	TotalResult bool
}

// ResultsPerEventIOFXML returns the results of an event in IOF XML 3.0.
func (c *Client) ResultsPerEventIOFXML(ctx context.Context, eventID int64, opts IOFXMLResultOptions) (Node, error) {
	q := newParams()
	q.setID("eventId", eventID)
	q.setBool("includeSplitTimes", opts.IncludeSplitTimes)
	q.setBool("totalResult", opts.TotalResult)
	q.setOptionalID("eventRaceId", opts.EventRaceID)

	return c.execute(ctx, pathResultsEventIOFXML, q.Values)
}

// PersonResultOptions narrows ResultsPerPerson.
type PersonResultOptions struct {
	EventIDs          []int64
	FromDate          string
	ToDate            string
	IncludeSplitTimes bool
	// Top adds this many competitors from the top of each result list.
	Top int
}

// ResultsPerPerson returns one ResultList per event the person competed in.
// A response without a ResultListList yields an empty slice rather than an
// error, since Eventor sends an empty document for persons without results.
func (c *Client) ResultsPerPerson(ctx context.Context, personID int64, opts PersonResultOptions) ([]Node, error) {
	q := newParams()
	q.setID("personId", personID)
	q.setDefault("fromDate", opts.FromDate, DefaultFromDate)
	q.setDefault("toDate", opts.ToDate, DefaultToDate)
	q.setBool("includeSplitTimes", opts.IncludeSplitTimes)
	setList(q, "eventIds", opts.EventIDs)
	q.setOptionalInt("top", opts.Top)

	resp, err := c.execute(ctx, pathResultsPerson, q.Values)
	if err != nil {
		return nil, err
	}
	return unwrapListOptional(resp, "ResultListList", "ResultList"), nil
}

// OrganisationResultOptions narrows ResultsPerOrganisation.
type OrganisationResultOptions struct {
	EventID           int64
	IncludeSplitTimes bool
	// Top adds this many competitors from the top of each class.
	Top int
}

// ResultsPerOrganisation returns the ResultList of the given clubs'
// competitors.
func (c *Client) ResultsPerOrganisation(ctx context.Context, organisationIDs []int64, opts OrganisationResultOptions) (Node, error) {
	q := newParams()
	q.set("organisationIds", EncodeList(organisationIDs))
	q.setBool("includeSplitTimes", opts.IncludeSplitTimes)
	q.setOptionalID("eventId", opts.EventID)
	q.setOptionalInt("top", opts.Top)

	return c.execute(ctx, pathResultsOrganisation, q.Values)
}
