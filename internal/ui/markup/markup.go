// Package markup checks page HTML against the element contract the UI binds to.
package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Its-donkey/portfolio/internal/ui/model"
	"github.com/Its-donkey/portfolio/internal/ui/nav"
)

// ErrContractViolation is returned by Report.Err when a required element is absent.
var ErrContractViolation = errors.New("markup does not satisfy the UI contract")

// Finding records how many nodes matched one requirement.
type Finding struct {
	Requirement model.Requirement
	Count       int
}

// Report is the outcome of a contract check.
type Report struct {
	Findings []Finding
	// DanglingLinks lists nav link targets with no matching section.
	DanglingLinks []string
}

// Missing returns the required selectors that matched nothing.
func (r Report) Missing() []model.Requirement {
	return r.filter(false)
}

// OptionalMissing returns the optional selectors that matched nothing.
func (r Report) OptionalMissing() []model.Requirement {
	return r.filter(true)
}

func (r Report) filter(optional bool) []model.Requirement {
	var out []model.Requirement
	for _, f := range r.Findings {
		if f.Count == 0 && f.Requirement.Optional == optional {
			out = append(out, f.Requirement)
		}
	}
	return out
}

// OK reports whether every required selector matched.
func (r Report) OK() bool {
	return len(r.Missing()) == 0
}

// Err returns nil when the report is OK, otherwise an error wrapping
// ErrContractViolation that names the missing selectors.
func (r Report) Err() error {
	missing := r.Missing()
	if len(missing) == 0 {
		return nil
	}
	selectors := make([]string, 0, len(missing))
	for _, req := range missing {
		selectors = append(selectors, req.Selector)
	}
	return fmt.Errorf("%w: missing %s", ErrContractViolation, strings.Join(selectors, ", "))
}

// Check parses the document and matches every contract requirement. Parse
// failures are returned as errors; contract failures are carried in the Report.
func Check(r io.Reader) (Report, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Report{}, fmt.Errorf("parse markup: %w", err)
	}

	var report Report
	for _, req := range model.Contract() {
		report.Findings = append(report.Findings, Finding{
			Requirement: req,
			Count:       doc.Find(req.Selector).Length(),
		})
	}

	sections := make(map[string]bool)
	doc.Find(model.SectionSelector).Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok {
			sections[id] = true
		}
	})
	doc.Find(model.NavLinkSelector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || !strings.HasPrefix(strings.TrimSpace(href), "#") {
			return
		}
		if id := nav.SectionID(href); !sections[id] {
			report.DanglingLinks = append(report.DanglingLinks, href)
		}
	})
	return report, nil
}
