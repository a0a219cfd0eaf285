// Package roster renders an activity's participants list in the formats the
// API exposes. Every rendering goes through Render; there is no per-format
// entry point.
package roster

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"mergingtonactivities/internal/domain"
)

// Detail is one element of the details rendering.
type Detail struct {
	Email string `json:"email" yaml:"email"`
}

type xmlRoster struct {
	XMLName xml.Name `xml:"participants"`
	Emails  []string `xml:"email"`
}

type yamlRoster struct {
	Participants []string `yaml:"participants"`
}

type jsonObject struct {
	Emails []string `json:"emails"`
}

// Render returns participants in format f. The input slice is not modified
// and is never returned directly.
func Render(participants []string, f domain.RosterFormat) (any, error) {
	emails := make([]string, len(participants))
	copy(emails, participants)

	switch f {
	case domain.RosterList:
		return emails, nil
	case domain.RosterDetails:
		details := make([]Detail, 0, len(emails))
		for _, e := range emails {
			details = append(details, Detail{Email: e})
		}
		return details, nil
	case domain.RosterCommaSpace:
		return strings.Join(emails, ", "), nil
	case domain.RosterCSV:
		return strings.Join(emails, ","), nil
	case domain.RosterTSV:
		return strings.Join(emails, "\t"), nil
	case domain.RosterHTML:
		return strings.Join(emails, "<br>"), nil
	case domain.RosterPlaintext:
		return strings.Join(emails, "\n"), nil
	case domain.RosterMarkdown:
		lines := make([]string, len(emails))
		for i, e := range emails {
			lines[i] = "- " + e
		}
		return strings.Join(lines, "\n"), nil
	case domain.RosterXML:
		out, err := xml.Marshal(xmlRoster{Emails: emails})
		if err != nil {
			return nil, fmt.Errorf("render xml: %w", err)
		}
		return string(out), nil
	case domain.RosterYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(yamlRoster{Participants: emails}); err != nil {
			return nil, fmt.Errorf("render yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("render yaml: %w", err)
		}
		return buf.String(), nil
	case domain.RosterJSONString:
		out, err := json.Marshal(emails)
		if err != nil {
			return nil, fmt.Errorf("render json: %w", err)
		}
		return string(out), nil
	case domain.RosterJSONObject:
		return jsonObject{Emails: emails}, nil
	}
	return nil, fmt.Errorf("%w: unknown roster format %q", domain.ErrInvalidInput, f)
}
