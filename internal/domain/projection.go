package domain

import "fmt"

// RosterFormat selects how a participants list is rendered.
type RosterFormat string

const (
	RosterList       RosterFormat = "list"
	RosterDetails    RosterFormat = "details"
	RosterCommaSpace RosterFormat = "comma_space"
	RosterCSV        RosterFormat = "csv"
	RosterTSV        RosterFormat = "tsv"
	RosterHTML       RosterFormat = "html"
	RosterXML        RosterFormat = "xml"
	RosterYAML       RosterFormat = "yaml"
	RosterMarkdown   RosterFormat = "markdown"
	RosterPlaintext  RosterFormat = "plaintext"
	RosterJSONString RosterFormat = "json_string"
	RosterJSONObject RosterFormat = "json_object"
)

// RosterFormats lists every supported format in a stable order.
var RosterFormats = []RosterFormat{
	RosterList, RosterDetails, RosterCommaSpace, RosterCSV, RosterTSV, RosterHTML,
	RosterXML, RosterYAML, RosterMarkdown, RosterPlaintext, RosterJSONString, RosterJSONObject,
}

// ParseRosterFormat maps a format name to a RosterFormat.
func ParseRosterFormat(s string) (RosterFormat, error) {
	for _, f := range RosterFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown roster format %q", ErrInvalidInput, s)
}

// Field names a scalar value derived from one activity.
type Field string

const (
	FieldSchedule         Field = "schedule"
	FieldDescription      Field = "description"
	FieldMaxParticipants  Field = "max_participants"
	FieldParticipantCount Field = "participant_count"
	FieldRemainingSpots   Field = "remaining_spots"
	FieldIsFull           Field = "is_full"
	FieldIsOpen           Field = "is_open"
	FieldIsParticipant    Field = "is_participant"
)

// FieldValue returns the value of f for this activity. email is only used by FieldIsParticipant.
func (a *Activity) FieldValue(f Field, email string) (any, error) {
	switch f {
	case FieldSchedule:
		return a.Schedule, nil
	case FieldDescription:
		return a.Description, nil
	case FieldMaxParticipants:
		return a.MaxParticipants, nil
	case FieldParticipantCount:
		return a.ParticipantCount(), nil
	case FieldRemainingSpots:
		return a.RemainingSpots(), nil
	case FieldIsFull:
		return a.IsFull(), nil
	case FieldIsOpen:
		return a.IsOpen(), nil
	case FieldIsParticipant:
		return a.HasParticipant(email), nil
	}
	return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidInput, f)
}

// Projection is a read-only view of an activity. Exactly one of Field or
// Format is set. Name is the key the value is reported under.
type Projection struct {
	Name   string
	Field  Field
	Format RosterFormat
	// Bare projections are reported as the value itself rather than {Name: value}.
	Bare bool
}

// IsRoster reports whether the projection renders the participants list.
func (p Projection) IsRoster() bool {
	return p.Format != ""
}

// NeedsEmail reports whether the projection takes an email argument.
func (p Projection) NeedsEmail() bool {
	return p.Field == FieldIsParticipant
}

func fieldProjection(name string, f Field) Projection {
	return Projection{Name: name, Field: f}
}

func rosterProjection(name string, f RosterFormat) Projection {
	return Projection{Name: name, Format: f}
}

// projections is keyed by the public projection name used in URLs.
// Several names are aliases for the same view.
var projections = map[string]Projection{
	"participants": {Name: "participants", Format: RosterList, Bare: true},

	"schedule":                 fieldProjection("schedule", FieldSchedule),
	"description":              fieldProjection("description", FieldDescription),
	"max_participants":         fieldProjection("max_participants", FieldMaxParticipants),
	"current_participants":     fieldProjection("current_participants", FieldParticipantCount),
	"participant_count":        fieldProjection("participant_count", FieldParticipantCount),
	"participant_emails_count": fieldProjection("participant_emails_count", FieldParticipantCount),
	"remaining_spots":          fieldProjection("remaining_spots", FieldRemainingSpots),
	"is_full":                  fieldProjection("is_full", FieldIsFull),
	"is_open":                  fieldProjection("is_open", FieldIsOpen),
	"is_participant":           fieldProjection("is_participant", FieldIsParticipant),

	"participant_emails":                   rosterProjection("participant_emails", RosterList),
	"participant_emails_list":              rosterProjection("participant_emails_list", RosterList),
	"participant_emails_json":              rosterProjection("participant_emails_json", RosterList),
	"participant_emails_json_list":         rosterProjection("participant_emails_json_list", RosterList),
	"participant_emails_json_array":        rosterProjection("participant_emails_json_array", RosterList),
	"participant_details":                  rosterProjection("participant_details", RosterDetails),
	"participant_emails_json_object_list":  rosterProjection("participant_emails_json_object_list", RosterDetails),
	"participant_emails_json_object_array": rosterProjection("participant_emails_json_object_array", RosterDetails),
	"participant_emails_string":            rosterProjection("participant_emails_string", RosterCommaSpace),
	"participant_emails_csv":               rosterProjection("participant_emails_csv", RosterCSV),
	"participant_emails_tsv":               rosterProjection("participant_emails_tsv", RosterTSV),
	"participant_emails_html":              rosterProjection("participant_emails_html", RosterHTML),
	"participant_emails_xml":               rosterProjection("participant_emails_xml", RosterXML),
	"participant_emails_yaml":              rosterProjection("participant_emails_yaml", RosterYAML),
	"participant_emails_markdown":          rosterProjection("participant_emails_markdown", RosterMarkdown),
	"participant_emails_plaintext":         rosterProjection("participant_emails_plaintext", RosterPlaintext),
	"participant_emails_json_string":       rosterProjection("participant_emails_json_string", RosterJSONString),
	"participant_emails_json_object":       rosterProjection("participant_emails_json_object", RosterJSONObject),
}

// LookupProjection returns the projection registered under name.
func LookupProjection(name string) (Projection, bool) {
	p, ok := projections[name]
	return p, ok
}

// RosterProjection returns an ad-hoc projection rendering the roster in format f.
func RosterProjection(f RosterFormat) Projection {
	return rosterProjection("participants_"+string(f), f)
}
