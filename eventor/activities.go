package eventor

import "context"

const (
	pathActivities = "activities"
	pathActivity   = "activity"
)

// ActivitiesOptions controls Activities.
type ActivitiesOptions struct {
	IncludeRegistrations bool
}

// Activities returns the club activities of an organisation between from and
// to (yyyy-mm-dd). Empty bounds fall back to the open ended date defaults.
func (c *Client) Activities(ctx context.Context, organisationID int64, from, to string, opts ActivitiesOptions) ([]Node, error) {
	q := newParams()
	q.setID("organisationId", organisationID)
	q.setDefault("from", from, DefaultFromDate)
	q.setDefault("to", to, DefaultToDate)
	q.setBool("includeRegistrations", opts.IncludeRegistrations)

	resp, err := c.execute(ctx, pathActivities, q.Values)
	if err != nil {
		return nil, err
	}
	return unwrapList(resp, "ActivityList", "Activity")
}

// ActivityOptions controls Activity.
type ActivityOptions struct {
	IncludeRegistrations bool
}

// Activity returns a single club activity.
func (c *Client) Activity(ctx context.Context, organisationID, activityID int64, opts ActivityOptions) (Node, error) {
	q := newParams()
	q.setID("organisationId", organisationID)
	q.setID("id", activityID)
	q.setBool("includeRegistrations", opts.IncludeRegistrations)

	return c.execute(ctx, pathActivity, q.Values)
}
