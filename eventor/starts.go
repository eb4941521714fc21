package eventor

import "context"

const (
	pathStartsEvent        = "starts/event"
	pathStartsEventIOFXML  = "starts/event/iofxml"
	pathStartsPerson       = "starts/person"
	pathStartsOrganisation = "starts/organisation"
)

// StartTimesPerEvent returns the StartList of an event.
func (c *Client) StartTimesPerEvent(ctx context.Context, eventID int64) (Node, error) {
	q := newParams()
	q.setID("eventId", eventID)

	return c.execute(ctx, pathStartsEvent, q.Values)
}

// IOFXMLStartOptions controls StartTimesPerEventIOFXML.
type IOFXMLStartOptions struct {
	// EventRaceID selects one race of a multi day event. Zero means all.
	EventRaceID int64
}

// StartTimesPerEventIOFXML returns the start list of an event in IOF XML 3.0.
func (c *Client) StartTimesPerEventIOFXML(ctx context.Context, eventID int64, opts IOFXMLStartOptions) (Node, error) {
	q := newParams()
	q.setID("eventId", eventID)
	q.setOptionalID("eventRaceId", opts.EventRaceID)

	return c.execute(ctx, pathStartsEventIOFXML, q.Values)
}

// PersonStartOptions narrows StartTimesPerPerson.
type PersonStartOptions struct {
	EventIDs []int64
	FromDate string
	ToDate   string
}

// StartTimesPerPerson returns the StartListList of one person.
func (c *Client) StartTimesPerPerson(ctx context.Context, personID int64, opts PersonStartOptions) (Node, error) {
	q := newParams()
	q.setID("personId", personID)
	q.setDefault("fromDate", opts.FromDate, DefaultFromDate)
	q.setDefault("toDate", opts.ToDate, DefaultToDate)
	setList(q, "eventIds", opts.EventIDs)

	return c.execute(ctx, pathStartsPerson, q.Values)
}

// OrganisationStartOptions narrows StartTimesPerOrganisation.
type OrganisationStartOptions struct {
	EventID int64
}

// StartTimesPerOrganisation returns the StartList of the given clubs'
// competitors.
func (c *Client) StartTimesPerOrganisation(ctx context.Context, organisationIDs []int64, opts OrganisationStartOptions) (Node, error) {
	q := newParams()
	q.set("organisationIds", EncodeList(organisationIDs))
	q.setOptionalID("eventId", opts.EventID)

	return c.execute(ctx, pathStartsOrganisation, q.Values)
}
