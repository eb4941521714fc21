package eventor

import (
	"context"
	"fmt"
)

const (
	pathCompetitors        = "competitors"
	pathCompetitor         = "competitor/%d"
	pathExternalLoginURL   = "externalLoginUrl"
	pathAuthenticatePerson = "authenticatePerson"
)

// Competitors returns the competitor settings (card numbers, preselected
// classes) of every member of an organisation who has entered them.
func (c *Client) Competitors(ctx context.Context, organisationID int64) ([]Node, error) {
	q := newParams()
	q.setID("organisationId", organisationID)

	resp, err := c.execute(ctx, pathCompetitors, q.Values)
	if err != nil {
		return nil, err
	}
	return unwrapList(resp, "CompetitorList", "Competitor")
}

// Competitor returns the competitor settings of one person.
func (c *Client) Competitor(ctx context.Context, personID int64) (Node, error) {
	return c.execute(ctx, fmt.Sprintf(pathCompetitor, personID), nil)
}

// ExternalLoginOptions controls ExternalLoginURL.
type ExternalLoginOptions struct {
	IncludeContactDetails bool
}

// ExternalLoginURL returns a one time link logging a person into Eventor.
// The link expires after five minutes.
func (c *Client) ExternalLoginURL(ctx context.Context, personID, organisationID int64, opts ExternalLoginOptions) (Node, error) {
	q := newParams()
	q.setID("personId", personID)
	q.setID("organisationId", organisationID)
	q.setBool("includeContactDetails", opts.IncludeContactDetails)

	return c.execute(ctx, pathExternalLoginURL, q.Values)
}

// AuthenticatePerson returns the Person matching an Eventor username and
// password.
func (c *Client) AuthenticatePerson(ctx context.Context, username, password string) (Node, error) {
	q := newParams()
	q.set("Username", username)
	q.set("Password", password)

	return c.execute(ctx, pathAuthenticatePerson, q.Values)
}
