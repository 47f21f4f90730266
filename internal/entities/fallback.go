package entities

import (
	"regexp"
	"strings"

	prose "github.com/jdkato/prose/v2"

	"github.com/samay2504/GenAI-Resume/internal/types"
)

// nerPrefixLimit caps how much text the named-entity recognizer sees.
// Candidate names sit at the top of a resume; tagging the whole document
// is wasted work.
const nerPrefixLimit = 1000

// Deterministic field patterns. The phone pattern is deliberately loose:
// optional country code, optional parenthesized area code, then a 3-digit
// exchange and 4-digit line number with `.`/`-`/space separators tolerated.
var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+\d{1,3}[-.]?)?\s*(?:\(?\d{3}\)?[-.]?)?\s*\d{3}[-.]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[a-zA-Z0-9-]+`)
	githubPattern   = regexp.MustCompile(`github\.com/[a-zA-Z0-9-]+`)
)

// NameRecognizer finds the candidate's name in a text prefix. It exists as
// an interface so tests can substitute the statistical model.
type NameRecognizer interface {
	// FirstPerson returns the first person-tagged entity, or "" if none.
	FirstPerson(text string) string
}

// proseRecognizer backs NameRecognizer with the prose NLP pipeline.
type proseRecognizer struct{}

func (proseRecognizer) FirstPerson(text string) string {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return ""
	}
	for _, ent := range doc.Entities() {
		if ent.Label == "PERSON" {
			return ent.Text
		}
	}
	return ""
}

// fallback extracts identity fields deterministically: NER over a capped
// prefix for the name, fixed regexes over the entire text for the rest.
// Fields with no match stay empty. Location and current position have no
// deterministic source and always stay empty here. Re-running on the same
// text yields identical values.
func (r *Resolver) fallback(text string) types.IdentityRecord {
	record := types.IdentityRecord{}

	prefix := text
	if len(prefix) > nerPrefixLimit {
		prefix = prefix[:nerPrefixLimit]
	}
	record.Name = r.ner.FirstPerson(prefix)

	record.Email = emailPattern.FindString(text)
	// The phone pattern tolerates leading whitespace between its groups, so
	// the raw match may carry it.
	record.Phone = strings.TrimSpace(phonePattern.FindString(text))
	record.LinkedIn = linkedinPattern.FindString(text)
	record.GitHub = githubPattern.FindString(text)

	return record
}
