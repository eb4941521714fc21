package eventor

import (
	"fmt"
	"slices"
)

// Classification is the level of an event (EventClassificationId).
type Classification int

const (
	// ClassificationChampionship is a championship event
	ClassificationChampionship Classification = iota + 1
	// ClassificationNational is a national event
	ClassificationNational
	// ClassificationDistrict is a district event
	ClassificationDistrict
	// ClassificationCloseRange is a local event
	ClassificationCloseRange
	// ClassificationClub is a club event
	ClassificationClub
	// ClassificationInternational is an international event
	ClassificationInternational
)

var classificationLabels = map[Classification]string{
	ClassificationChampionship:  "mästerskapstävling",
	ClassificationNational:      "nationell tävling",
	ClassificationDistrict:      "distriktstävling",
	ClassificationCloseRange:    "närtävling",
	ClassificationClub:          "klubbtävling",
	ClassificationInternational: "internationell tävling",
}

// String returns the Swedish label of a Classification
func (c Classification) String() string {
	return label(classificationLabels, c)
}

// EventStatus is the life cycle state of an event (EventStatusId).
type EventStatus int

const (
	EventStatusApplied EventStatus = iota + 1
	EventStatusApprovedByDistrict
	EventStatusApproved
	EventStatusCreated
	EventStatusEntryOpen
	EventStatusEntryPaused
	EventStatusEntryClosed
	EventStatusLive
	EventStatusCompleted
	EventStatusCancelled
	EventStatusReported
)

var eventStatusLabels = map[EventStatus]string{
	EventStatusApplied:            "ansökt",
	EventStatusApprovedByDistrict: "godkänt av distriktet",
	EventStatusApproved:           "godkänt",
	EventStatusCreated:            "skapat",
	EventStatusEntryOpen:          "anmälan öppen",
	EventStatusEntryPaused:        "anmälan pausad",
	EventStatusEntryClosed:        "anmälan stängd",
	EventStatusLive:               "live",
	EventStatusCompleted:          "genomförd",
	EventStatusCancelled:          "inställt",
	EventStatusReported:           "rapporterad",
}

// String returns the Swedish label of an EventStatus
func (s EventStatus) String() string {
	return label(eventStatusLabels, s)
}

// Discipline is the kind of orienteering (DisciplineId).
type Discipline int

const (
	DisciplineFoot Discipline = iota + 1
	DisciplineMTB
	DisciplineSki
	DisciplineTrail
)

var disciplineLabels = map[Discipline]string{
	DisciplineFoot:  "orienteringlöpning",
	DisciplineMTB:   "MTB-orientering",
	DisciplineSki:   "skidorientering",
	DisciplineTrail: "precisionsorientering",
}

// String returns the Swedish label of a Discipline
func (d Discipline) String() string {
	return label(disciplineLabels, d)
}

// EventForm is the @eventForm attribute of an Event.
type EventForm string

const (
	EventFormIndSingleDay   EventForm = "IndSingleDay"
	EventFormIndMultiDay    EventForm = "IndMultiDay"
	EventFormRelaySingleDay EventForm = "RelaySingleDay"
)

var eventFormLabels = map[EventForm]string{
	EventFormIndSingleDay:   "individuell endagstävling",
	EventFormIndMultiDay:    "individuell flerdagarstävling",
	EventFormRelaySingleDay: "stafett endagstävling",
}

// String returns the Swedish label of an EventForm
func (f EventForm) String() string {
	if l, ok := eventFormLabels[f]; ok {
		return l
	}
	return fmt.Sprintf("unknown (%s)", string(f))
}

// LookupEntry is one code and its label, as listed by the lookup helpers.
type LookupEntry struct {
	Code  string
	Label string
}

// Classifications lists every known Classification in code order.
func Classifications() []LookupEntry {
	return entries(classificationLabels)
}

// EventStatuses lists every known EventStatus in code order.
func EventStatuses() []LookupEntry {
	return entries(eventStatusLabels)
}

// Disciplines lists every known Discipline in code order.
func Disciplines() []LookupEntry {
	return entries(disciplineLabels)
}

// EventForms lists every known EventForm ordered by code.
func EventForms() []LookupEntry {
	list := make([]LookupEntry, 0, len(eventFormLabels))
	for code, l := range eventFormLabels {
		list = append(list, LookupEntry{Code: string(code), Label: l})
	}
	slices.SortFunc(list, func(a, b LookupEntry) int {
		if a.Code < b.Code {
			return -1
		}
		if a.Code > b.Code {
			return 1
		}
		return 0
	})
	return list
}

func label[K ~int](labels map[K]string, code K) string {
	if l, ok := labels[code]; ok {
		return l
	}
	return fmt.Sprintf("unknown (%d)", int(code))
}

func entries[K ~int](labels map[K]string) []LookupEntry {
	codes := make([]K, 0, len(labels))
	for code := range labels {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	list := make([]LookupEntry, 0, len(codes))
	for _, code := range codes {
		list = append(list, LookupEntry{Code: fmt.Sprint(int(code)), Label: labels[code]})
	}
	return list
}
