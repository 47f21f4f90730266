package sections

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samay2504/GenAI-Resume/internal/catalog"
	"github.com/samay2504/GenAI-Resume/internal/types"
)

// boundaryLine is one successfully parsed line of a section-identification
// response.
type boundaryLine struct {
	label      string
	start      int
	end        int
	confidence float64
}

var integerPattern = regexp.MustCompile(`\d+`)

// parseBoundaryLine applies the response grammar to a single line:
//
//	line    -> label ":" details
//	details -> at least three integers, taken positionally as
//	           (start, end, confidence)
//
// Confidence arrives on a 0-100 scale and is normalized to [0, 1].
// A false return marks the line unparseable; callers skip it rather than
// treating it as an error.
func parseBoundaryLine(line string) (boundaryLine, bool) {
	label, details, found := strings.Cut(line, ":")
	if !found {
		return boundaryLine{}, false
	}

	nums := integerPattern.FindAllString(details, 3)
	if len(nums) < 3 {
		return boundaryLine{}, false
	}

	start, err := strconv.Atoi(nums[0])
	if err != nil {
		return boundaryLine{}, false
	}
	end, err := strconv.Atoi(nums[1])
	if err != nil {
		return boundaryLine{}, false
	}
	conf, err := strconv.Atoi(nums[2])
	if err != nil {
		return boundaryLine{}, false
	}

	confidence := float64(conf) / 100
	if confidence > 1 {
		confidence = 1
	}

	return boundaryLine{
		label:      label,
		start:      start,
		end:        end,
		confidence: confidence,
	}, true
}

// parseBoundaryResponse parses a full completion-service response into
// boundaries. Lines whose label does not resolve to a known section kind,
// or that fail the grammar, are silently skipped: the response is never
// trusted to follow the requested format. Duplicate labels overwrite.
func parseBoundaryResponse(cat *catalog.Catalog, response string) map[types.SectionKind]types.SectionBoundary {
	boundaries := make(map[types.SectionKind]types.SectionBoundary)
	for _, line := range strings.Split(response, "\n") {
		parsed, ok := parseBoundaryLine(line)
		if !ok {
			continue
		}
		kind, known := cat.Lookup(parsed.label)
		if !known {
			continue
		}
		boundaries[kind] = types.SectionBoundary{
			Kind:       kind,
			Start:      parsed.start,
			End:        parsed.end,
			Confidence: parsed.confidence,
		}
	}
	return boundaries
}
