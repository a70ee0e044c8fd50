package tablesort

import (
	"sort"
)

// Titles of the built-in table specifications
const (
	TitleDomains = "Domains"
	TitleSOA     = "SOA Records"
	TitleNS      = "NS Records"
	TitleMX      = "MX Records"
	TitleA       = "A/AAAA Records"
	TitleCNAME   = "CNAME Records"
	TitleTXT     = "TXT Records"
	TitleSRV     = "SRV Records"
)

//
// SpecSet - sort specifications, one per table shape, keyed by table title.
//
type SpecSet map[string]Spec

// Lookup returns the specification for the table with the given title.
func (s SpecSet) Lookup(title string) (Spec, bool) {
	spec, ok := s[title]
	return spec, ok
}

// Add inserts spec, replacing any specification with the same title.
func (s SpecSet) Add(spec Spec) {
	s[spec.Title] = spec
}

//
// Merge returns a new set holding the specifications of s, overridden by
// those of other where the titles match.
//
func (s SpecSet) Merge(other SpecSet) SpecSet {
	merged := make(SpecSet, len(s)+len(other))
	for title, spec := range s {
		merged[title] = spec
	}
	for title, spec := range other {
		merged[title] = spec
	}
	return merged
}

// Titles returns the table titles in the set, sorted.
func (s SpecSet) Titles() []string {
	titles := make([]string, 0, len(s))
	for title := range s {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

//
// DefaultSpecs returns the built-in specifications for the DNS manager
// tables: the domain overview and the per record type tables.
//
func DefaultSpecs() SpecSet {

	set := make(SpecSet)

	set.Add(Spec{Title: TitleDomains, Keys: []Key{
		{Field: "Domain", Compare: CompareDomain},
	}})
	set.Add(Spec{Title: TitleSOA, Keys: []Key{
		{Field: "Zone", Compare: CompareDomain},
		{Field: "Email", Compare: CompareEmail},
	}})
	set.Add(Spec{Title: TitleNS, Keys: []Key{
		{Field: "Subdomain", Compare: CompareDomain},
		{Field: "Name Server", Compare: CompareDomain},
	}})
	set.Add(Spec{Title: TitleMX, Keys: []Key{
		{Field: "Preference", Compare: CompareInt},
		{Field: "Mail Server", Compare: CompareDomain},
	}})
	set.Add(Spec{Title: TitleA, Keys: []Key{
		{Field: "Host Name", Compare: CompareDomain},
		{Field: "IP Address", Compare: CompareIP},
	}})
	set.Add(Spec{Title: TitleCNAME, Keys: []Key{
		{Field: "Host Name", Compare: CompareDomain},
		{Field: "Aliases to", Compare: CompareDomain},
	}})
	set.Add(Spec{Title: TitleTXT, Keys: []Key{
		{Field: "Name", Compare: CompareDomain},
		{Field: "Value", Compare: CompareAlpha},
	}})
	set.Add(Spec{Title: TitleSRV, Keys: []Key{
		{Field: "Name", Compare: CompareDomain},
		{Field: "Priority", Compare: CompareInt},
		{Field: "Weight", Compare: CompareInt},
		{Field: "Port", Compare: CompareInt},
		{Field: "Target", Compare: CompareDomain},
	}})

	return set
}
