package eventor

import (
	"testing"

	"github.com/clbanning/mxj/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventXML = `<?xml version="1.0" encoding="utf-8"?>
<Event eventForm="IndSingleDay">
  <EventId>12345</EventId>
  <Name>Sommarsprinten</Name>
  <EventClassificationId>4</EventClassificationId>
  <EventRace raceLightCondition="Day">
    <EventRaceId>1</EventRaceId>
    <RaceDate><Date>2024-06-01</Date></RaceDate>
  </EventRace>
  <EventRace raceLightCondition="Night">
    <EventRaceId>2</EventRaceId>
  </EventRace>
  <Comment lang="sv">Välkomna</Comment>
  <WebURL/>
</Event>`

func TestParseXML(t *testing.T) {
	node, err := parseXML([]byte(eventXML))
	require.NoError(t, err)

	form, err := node.Text("Event.@eventForm")
	require.NoError(t, err)
	assert.Equal(t, "IndSingleDay", form)

	date, err := node.Text("Event.EventRace.0.RaceDate.Date")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", date)

	light, err := node.Text("Event.EventRace.1.@raceLightCondition")
	require.NoError(t, err)
	assert.Equal(t, "Night", light)

	comment, err := node.Text("Event.Comment")
	require.NoError(t, err)
	assert.Equal(t, "Välkomna", comment)

	web, err := node.Text("Event.WebURL")
	require.NoError(t, err)
	assert.Empty(t, web)
}

func TestParseXML_Latin1(t *testing.T) {
	body := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<Organisation><OrganisationId>321</OrganisationId><Name>OK Linn\xe9</Name></Organisation>")

	node, err := parseXML(body)
	require.NoError(t, err)

	name, err := node.Text("Organisation.Name")
	require.NoError(t, err)
	assert.Equal(t, "OK Linné", name)
}

func TestParseXML_AttrPrefixReset(t *testing.T) {
	t.Cleanup(func() { mxj.SetAttrPrefix(AttrPrefix) })

	mxj.SetAttrPrefix("-")

	node, err := parseXML([]byte(`<Activity id="7"><Name>Träning</Name></Activity>`))
	require.NoError(t, err)

	id, err := node.Text("Activity.@id")
	require.NoError(t, err)
	assert.Equal(t, "7", id)
}

func TestParseXML_Malformed(t *testing.T) {
	_, err := parseXML([]byte(`<Event><EventId>1</Event>`))
	assert.Error(t, err)
}

func TestNodePath(t *testing.T) {
	node, err := parseXML([]byte(eventXML))
	require.NoError(t, err)

	races, err := node.Path("Event.EventRace")
	require.NoError(t, err)
	assert.Len(t, races, 2)

	_, err = node.Path("Event.Missing")
	assert.ErrorIs(t, err, ErrPathNotFound)

	_, err = node.Path("Event.EventRace.5")
	assert.ErrorIs(t, err, ErrPathNotFound)

	_, err = node.Path("Event.Name.Deeper")
	assert.ErrorIs(t, err, ErrPathNotFound)

	_, err = node.Text("Event.EventRace")
	assert.ErrorIs(t, err, ErrUnexpectedShape)
}

func TestNodeMxj(t *testing.T) {
	node, err := parseXML([]byte(`<Person><PersonId>7</PersonId></Person>`))
	require.NoError(t, err)

	id, err := node.Mxj().ValueForPath("Person.PersonId")
	require.NoError(t, err)
	assert.Equal(t, "7", id)
}

func TestUnwrapList(t *testing.T) {
	resp := Node{
		"PersonList": map[string]any{
			"Person": []any{
				map[string]any{"PersonId": "1"},
				map[string]any{"PersonId": "2"},
			},
		},
	}

	nodes, err := unwrapList(resp, "PersonList", "Person")
	require.NoError(t, err)
	assert.Len(t, nodes, 2)

	_, err = unwrapList(Node{"PersonList": map[string]any{"Person": []any{"text"}}}, "PersonList", "Person")
	assert.ErrorIs(t, err, ErrUnexpectedShape)

	_, err = unwrapList(Node{"PersonList": ""}, "PersonList", "Person")
	assert.ErrorIs(t, err, ErrUnexpectedShape)

	assert.Empty(t, unwrapListOptional(Node{}, "PersonList", "Person"))

	events, err := Node{"EventList": map[string]any{"Event": map[string]any{"EventId": "1"}}}.List("EventList", "Event")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "1", events[0]["EventId"])
}
