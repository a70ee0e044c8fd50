package tablesort

import (
	"bytes"
	"fmt"
	"net"
	"sort"
	"strings"
	"unicode"

	"github.com/miekg/dns"
)

//
// Comparator - compares two raw cell values of the same column and returns
// -1, 0, or 1, according to whether the first value sorts earlier than,
// equal to, or later than the second. Comparators are pure functions.
//
type Comparator func(a, b string) (int, error)

//
// CompareDomain compares 2 domain names label by label, starting from the
// rightmost (top level) label, so names group by their common suffix. When
// one name runs out of labels first, it sorts earlier. Labels compare
// byte-wise; a trailing root dot is ignored.
//
func CompareDomain(d1, d2 string) (int, error) {

	labels1, labels2 := dns.SplitDomainName(d1), dns.SplitDomainName(d2)
	len1, len2 := len(labels1), len(labels2)

	for i := 0; i < len1 && i < len2; i++ {
		l1, l2 := labels1[len1-i-1], labels2[len2-i-1]
		if l1 > l2 {
			return 1, nil
		} else if l2 > l1 {
			return -1, nil
		}
	}
	return compareLen(len1, len2), nil
}

//
// CompareInt compares the leading integers of 2 strings numerically.
// Leading whitespace and an optional sign are accepted and anything after
// the digits is ignored, so "10 ms" equals "10". A value with no leading
// integer counts as 0.
//
func CompareInt(n1, n2 string) (int, error) {
	i1, _ := parseLeadingInt(n1)
	i2, _ := parseLeadingInt(n2)
	return i1.compare(i2), nil
}

//
// CompareStrictInt is CompareInt, except that a value with no leading
// integer is a MalformedValueError rather than 0.
//
func CompareStrictInt(n1, n2 string) (int, error) {
	i1, ok := parseLeadingInt(n1)
	if !ok {
		return 0, malformed("integer", n1, "no leading integer")
	}
	i2, ok := parseLeadingInt(n2)
	if !ok {
		return 0, malformed("integer", n2, "no leading integer")
	}
	return i1.compare(i2), nil
}

// CompareAlpha compares 2 strings byte-wise.
func CompareAlpha(a1, a2 string) (int, error) {
	return strings.Compare(a1, a2), nil
}

//
// CompareIPAddress compares 2 dotted IPv4 addresses octet by octet, each
// octet numerically (so 10.0.0.1 sorts after 9.255.255.255). Both values
// must have exactly 4 octets.
//
func CompareIPAddress(ip1, ip2 string) (int, error) {

	p1, err := splitOctets(ip1)
	if err != nil {
		return 0, err
	}
	p2, err := splitOctets(ip2)
	if err != nil {
		return 0, err
	}

	for i := 0; i < 4; i++ {
		r, _ := CompareInt(p1[i], p2[i])
		if r != 0 {
			return r, nil
		}
	}
	return 0, nil
}

//
// CompareIP compares 2 IP addresses of either family. IPv6 addresses sort
// before IPv4 addresses; within a family addresses compare numerically.
//
func CompareIP(ip1, ip2 string) (int, error) {

	a1 := net.ParseIP(ip1)
	if a1 == nil {
		return 0, malformed("IP address", ip1, "not an IPv4 or IPv6 address")
	}
	a2 := net.ParseIP(ip2)
	if a2 == nil {
		return 0, malformed("IP address", ip2, "not an IPv4 or IPv6 address")
	}

	v4a, v4b := a1.To4(), a2.To4()
	switch {
	case v4a == nil && v4b != nil:
		return -1, nil
	case v4a != nil && v4b == nil:
		return 1, nil
	case v4a != nil:
		return bytes.Compare(v4a, v4b), nil
	}
	return bytes.Compare(a1.To16(), a2.To16()), nil
}

//
// CompareEmail compares 2 email addresses, first by the domain after the
// first '@' (see CompareDomain), then by the local part.
//
func CompareEmail(e1, e2 string) (int, error) {

	local1, domain1, err := splitEmail(e1)
	if err != nil {
		return 0, err
	}
	local2, domain2, err := splitEmail(e2)
	if err != nil {
		return 0, err
	}

	if r, _ := CompareDomain(domain1, domain2); r != 0 {
		return r, nil
	}
	return CompareAlpha(local1, local2)
}

var comparators = map[string]Comparator{
	"domain":    CompareDomain,
	"int":       CompareInt,
	"strictint": CompareStrictInt,
	"alpha":     CompareAlpha,
	"ipaddr":    CompareIPAddress,
	"ip":        CompareIP,
	"email":     CompareEmail,
}

// LookupComparator returns the comparator registered under name.
func LookupComparator(name string) (Comparator, bool) {
	c, ok := comparators[name]
	return c, ok
}

// ComparatorNames returns the registered comparator names, sorted.
func ComparatorNames() []string {
	names := make([]string, 0, len(comparators))
	for name := range comparators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//
// leadingInt - an integer of any length; digits has no leading zeros and
// is empty for zero.
//
type leadingInt struct {
	neg    bool
	digits string
}

func parseLeadingInt(s string) (leadingInt, bool) {

	var n leadingInt

	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s != "" && (s[0] == '-' || s[0] == '+') {
		n.neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return leadingInt{}, false
	}

	n.digits = strings.TrimLeft(s[:end], "0")
	if n.digits == "" {
		n.neg = false
	}
	return n, true
}

func (n leadingInt) compare(m leadingInt) int {

	if n.neg != m.neg {
		if n.neg {
			return -1
		}
		return 1
	}

	r := compareLen(len(n.digits), len(m.digits))
	if r == 0 {
		r = strings.Compare(n.digits, m.digits)
	}
	if n.neg {
		return -r
	}
	return r
}

func compareLen(len1, len2 int) int {
	if len1 > len2 {
		return 1
	} else if len2 > len1 {
		return -1
	}
	return 0
}

func splitOctets(ip string) ([]string, error) {
	octets := strings.Split(ip, ".")
	if len(octets) != 4 {
		return nil, malformed("IPv4 address", ip,
			fmt.Sprintf("%d octets, want 4", len(octets)))
	}
	return octets, nil
}

func splitEmail(email string) (local, domain string, err error) {
	at := strings.Index(email, "@")
	if at < 0 {
		return "", "", malformed("email address", email, "missing '@'")
	}
	return email[:at], email[at+1:], nil
}
