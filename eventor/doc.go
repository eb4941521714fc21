// Package eventor provides a client for the Swedish Orienteering
// Federation's Eventor API.
//
// Every endpoint is one method on Client. A method builds the query from its
// arguments, issues a single GET carrying the ApiKey header and parses the
// XML body into a Node: a nested map in which attributes are prefixed with
// "@", repeated elements become slices and leaf text becomes strings.
//
// # Usage
//
//	client, err := eventor.NewClient(apiKey, zerolog.Nop())
//	if err != nil {
//		return err
//	}
//
//	resp, err := client.Event(ctx, 12345)
//	if err != nil {
//		return err
//	}
//	name, _ := resp.Text("Event.Name")
//
// # Unwrapping
//
// Organisations, MembersInOrganisation, Competitors, Activities and
// ResultsPerPerson return the inner list of their envelope instead of the
// whole document. Missing envelopes are reported as *ShapeError, except for
// ResultsPerPerson which returns an empty slice.
//
// # Errors
//
// Transport failures are returned as *RequestError and malformed bodies as
// *ParseError. Error documents sent by Eventor itself are returned as regular
// responses; inspect the root element to tell them apart.
package eventor
