package publish

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
)

const ellipsis = "..."

// fieldChange is one tracked field whose value differs after an update.
type fieldChange struct {
	Field string
	From  string
	To    string
}

type changeList []fieldChange

func (c *changeList) text(field string, from, to string) {
	if from != to {
		*c = append(*c, fieldChange{Field: field, From: orNone(from), To: orNone(to)})
	}
}

func (c *changeList) optText(field string, from, to *string) {
	c.text(field, deref(from), deref(to))
}

func (c *changeList) date(field string, from, to *time.Time) {
	c.text(field, formatDate(from), formatDate(to))
}

func (c *changeList) person(field string, from, to domain.PersonRef) {
	if !from.Equal(to) {
		*c = append(*c, fieldChange{Field: field, From: from.Label(), To: to.Label()})
	}
}

// narrative builds the history entries appended to canonical records.
type narrative struct {
	author   string
	quoteMax int
	meeting  *domain.Meeting
	now      time.Time
}

func (n narrative) updated(changes changeList, quote string) domain.EntityUpdate {
	var b strings.Builder
	if len(changes) == 0 {
		fmt.Fprintf(&b, "Reviewed in meeting %q with no substantive change.", n.meeting.Title)
	} else {
		fmt.Fprintf(&b, "Updated in meeting %q: ", n.meeting.Title)
		for i, c := range changes {
			if i > 0 {
				b.WriteString("; ")
			}
			fmt.Fprintf(&b, "%s changed from %s to %s", c.Field, c.From, c.To)
		}
		b.WriteString(".")
	}
	return n.entry(b.String(), quote)
}

func (n narrative) closed(quote string) domain.EntityUpdate {
	return n.entry(fmt.Sprintf("Closed via meeting review of %q.", n.meeting.Title), quote)
}

func (n narrative) entry(content, quote string) domain.EntityUpdate {
	u := domain.EntityUpdate{
		ID:            uuid.New(),
		CreatedAt:     n.now,
		CreatedByName: n.author,
		Source:        domain.UpdateSourceAIMeetingProcessing,
		MeetingID:     &n.meeting.ID,
		MeetingTitle:  &n.meeting.Title,
	}
	if q := truncateQuote(quote, n.quoteMax); q != "" {
		content += fmt.Sprintf(" Evidence: %q", q)
		u.EvidenceQuote = &q
	}
	u.Content = content
	return u
}

// truncateQuote shortens q to at most max runes, ending in "..." when cut.
func truncateQuote(q string, max int) string {
	q = strings.TrimSpace(q)
	if max <= 0 || utf8.RuneCountInString(q) <= max {
		return q
	}
	keep := max - utf8.RuneCountInString(ellipsis)
	if keep < 0 {
		keep = 0
	}
	runes := []rune(q)
	return strings.TrimSpace(string(runes[:keep])) + ellipsis
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.DateOnly)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return fmt.Sprintf("%q", s)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
