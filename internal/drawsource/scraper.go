package drawsource

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/alexkarev/rowaudit/internal/auditor"
)

// DefaultPattern matches the debug line the load-test tool prints for every
// iteration; the single capture group is the selected row's label.
const DefaultPattern = `Iteration using data row \d+ - BankId: (\d+)`

// Scraper extracts selection labels from a log stream and resolves them
// against a population.
type Scraper struct {
	pattern *regexp.Regexp
}

// NewScraper compiles the given pattern, which must contain exactly one
// capture group for the label. An empty pattern selects DefaultPattern.
func NewScraper(pattern string) (*Scraper, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile scrape pattern: %w", err)
	}

	if re.NumSubexp() != 1 {
		return nil, fmt.Errorf("scrape pattern %q must have exactly one capture group, has %d", pattern, re.NumSubexp())
	}

	return &Scraper{pattern: re}, nil
}

// Scrape reads the log line by line and maps every matched label to its
// first index in the population. A matched label absent from the population
// means the log and the data file disagree, which is an error rather than a
// silently dropped draw.
func (s *Scraper) Scrape(r io.Reader, pop auditor.Population) ([]int, error) {
	byLabel := make(map[string]int, len(pop))
	for i := len(pop) - 1; i >= 0; i-- {
		byLabel[pop[i].Label] = i
	}

	draws := []int{}
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++

		m := s.pattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		idx, ok := byLabel[m[1]]
		if !ok {
			return nil, fmt.Errorf("log line %d: label %q not present in population", line, m[1])
		}
		draws = append(draws, idx)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	return draws, nil
}
