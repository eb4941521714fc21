package eventor

import (
	"context"
	"fmt"
)

const (
	pathOrganisationFromAPIKey = "organisation/apiKey"
	pathOrganisations          = "organisations"
	pathOrganisation           = "organisation/%d"
	pathMembers                = "persons/organisations/%d"
)

// OrganisationFromAPIKey returns the Organisation owning the client's API key.
func (c *Client) OrganisationFromAPIKey(ctx context.Context) (Node, error) {
	return c.execute(ctx, pathOrganisationFromAPIKey, nil)
}

// OrganisationsOptions controls Organisations.
type OrganisationsOptions struct {
	IncludeProperties bool
}

// Organisations returns every federation, district and club.
func (c *Client) Organisations(ctx context.Context, opts OrganisationsOptions) ([]Node, error) {
	q := newParams()
	q.setBool("includeProperties", opts.IncludeProperties)

	resp, err := c.execute(ctx, pathOrganisations, q.Values)
	if err != nil {
		return nil, err
	}
	return unwrapList(resp, "OrganisationList", "Organisation")
}

// Organisation returns a single Organisation.
func (c *Client) Organisation(ctx context.Context, organisationID int64) (Node, error) {
	return c.execute(ctx, fmt.Sprintf(pathOrganisation, organisationID), nil)
}

// MembersOptions controls MembersInOrganisation.
type MembersOptions struct {
	IncludeContactDetails bool
}

// MembersInOrganisation returns the persons who are members of an
// organisation. Eventor only allows the API key's own organisation.
func (c *Client) MembersInOrganisation(ctx context.Context, organisationID int64, opts MembersOptions) ([]Node, error) {
	q := newParams()
	q.setBool("includeContactDetails", opts.IncludeContactDetails)

	resp, err := c.execute(ctx, fmt.Sprintf(pathMembers, organisationID), q.Values)
	if err != nil {
		return nil, err
	}
	return unwrapList(resp, "PersonList", "Person")
}
