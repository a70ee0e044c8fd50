package tablesort

import (
	"errors"
	"strings"
	"testing"
)

type compareTest struct {
	name     string
	a        string
	b        string
	expected int
}

func runCompareTests(t *testing.T, fname string, cmp Comparator, tests []compareTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := cmp(tt.a, tt.b)
			if err != nil {
				t.Fatalf("%s(%q, %q) error = %v", fname, tt.a, tt.b, err)
			}
			if result != tt.expected {
				t.Errorf("%s(%q, %q) = %d, want %d",
					fname, tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestCompareDomain(t *testing.T) {
	runCompareTests(t, "CompareDomain", CompareDomain, []compareTest{
		{"different TLDs", "foo.example.com", "foo.example.net", -1},
		{"same domain", "salesforce.com", "salesforce.com", 0},
		{"different subdomains same TLD", "foo.example.com", "bar.example.com", 1},
		{"different TLDs with subdomains", "z.x.y.example.com", "a.example.net", -1},
		{"empty strings", "", "", 0},
		{"one empty string", "", "example.com", -1},
		{"parent before child", "example.com", "sub.example.com", -1},
		{"child after parent", "bar.example.com", "example.com", 1},
		{"trailing dot ignored", "example.com.", "example.com", 0},
		{"case sensitive", "Example.com", "example.com", -1},
		{"escaped dot stays in label", `z\.a.example.com`, "b.example.com", 1},
		{"suffix groups before label", "a.b.com", "b.com", 1},
	})
}

func TestCompareDomainDeep(t *testing.T) {
	short := strings.Repeat("a.", 1000) + "com"
	long := strings.Repeat("a.", 1001) + "com"

	if r, _ := CompareDomain(short, long); r != -1 {
		t.Errorf("CompareDomain(1001 labels, 1002 labels) = %d, want -1", r)
	}
	if r, _ := CompareDomain(long, long); r != 0 {
		t.Errorf("CompareDomain(x, x) = %d, want 0", r)
	}
}

func TestCompareDomainOrdering(t *testing.T) {
	domains := []string{
		"", "com", "example.com", "a.example.com", "b.example.com",
		"a.b.example.com", "example.net", "www.example.net", "a.com",
		"b.com", "a.b.com", "Example.com", "example.com.",
	}

	for _, a := range domains {
		for _, b := range domains {
			ab, _ := CompareDomain(a, b)
			ba, _ := CompareDomain(b, a)
			if ab != -ba {
				t.Errorf("CompareDomain not antisymmetric for %q, %q: %d, %d", a, b, ab, ba)
			}
			for _, c := range domains {
				bc, _ := CompareDomain(b, c)
				ac, _ := CompareDomain(a, c)
				if ab <= 0 && bc <= 0 && ac > 0 {
					t.Errorf("CompareDomain not transitive for %q <= %q <= %q", a, b, c)
				}
			}
		}
	}
}

func TestCompareInt(t *testing.T) {
	runCompareTests(t, "CompareInt", CompareInt, []compareTest{
		{"less", "1", "2", -1},
		{"numeric not lexical", "10", "9", 1},
		{"leading whitespace", "  42", "42", 0},
		{"trailing text ignored", "10 ms", "10", 0},
		{"negative", "-5", "3", -1},
		{"both negative", "-5", "-3", -1},
		{"plus sign", "+7", "7", 0},
		{"leading zeros", "007", "7", 0},
		{"negative zero", "-0", "0", 0},
		{"both unparsable", "abc", "xyz", 0},
		{"unparsable is zero", "abc", "0", 0},
		{"unparsable before positive", "abc", "1", -1},
		{"unparsable after negative", "abc", "-1", 1},
		{"empty before positive", "", "5", -1},
		{"sign only", "-", "0", 0},
		{"beyond int64", "123456789012345678901234567890", "123456789012345678901234567891", -1},
		{"beyond int64 signs", "99999999999999999999", "-99999999999999999999", 1},
	})
}

func TestCompareStrictInt(t *testing.T) {
	runCompareTests(t, "CompareStrictInt", CompareStrictInt, []compareTest{
		{"numeric", "3", "20", -1},
		{"trailing text ignored", "20s", "20", 0},
	})

	for _, pair := range [][2]string{{"abc", "1"}, {"1", "x"}, {"", ""}} {
		_, err := CompareStrictInt(pair[0], pair[1])
		var mv *MalformedValueError
		if !errors.As(err, &mv) {
			t.Errorf("CompareStrictInt(%q, %q) error = %v, want MalformedValueError",
				pair[0], pair[1], err)
		}
	}
}

func TestCompareAlpha(t *testing.T) {
	runCompareTests(t, "CompareAlpha", CompareAlpha, []compareTest{
		{"equal", "abc", "abc", 0},
		{"less", "abc", "abd", -1},
		{"prefix first", "ab", "abc", -1},
		{"upper case first", "Zed", "alice", -1},
	})
}

func TestCompareIPAddress(t *testing.T) {
	runCompareTests(t, "CompareIPAddress", CompareIPAddress, []compareTest{
		{"last octet", "10.0.0.1", "10.0.0.2", -1},
		{"numeric octets", "10.0.0.1", "9.255.255.255", 1},
		{"equal", "192.0.2.1", "192.0.2.1", 0},
		{"two digit octet", "192.168.1.10", "192.168.1.9", 1},
	})

	for _, pair := range [][2]string{
		{"10.0.0", "10.0.0.1"},
		{"10.0.0.1", "10.0.0.1.5"},
		{"2001:db8::1", "10.0.0.1"},
	} {
		_, err := CompareIPAddress(pair[0], pair[1])
		var mv *MalformedValueError
		if !errors.As(err, &mv) {
			t.Errorf("CompareIPAddress(%q, %q) error = %v, want MalformedValueError",
				pair[0], pair[1], err)
		}
	}
}

func TestCompareIP(t *testing.T) {
	runCompareTests(t, "CompareIP", CompareIP, []compareTest{
		{"IPv6 first", "2001:db8::1", "10.0.0.1", -1},
		{"IPv4 last", "10.0.0.1", "2001:db8::1", 1},
		{"IPv6 numeric", "2001:db8::1", "2001:db8::2", -1},
		{"IPv6 equal spellings", "2001:db8::1", "2001:0db8:0:0:0:0:0:1", 0},
		{"IPv4 numeric", "10.0.0.1", "9.0.0.1", 1},
	})

	if _, err := CompareIP("bogus", "10.0.0.1"); err == nil {
		t.Error("CompareIP(bogus) returned no error")
	}
}

func TestCompareEmail(t *testing.T) {
	runCompareTests(t, "CompareEmail", CompareEmail, []compareTest{
		{"local part breaks tie", "bob@example.com", "alice@example.com", 1},
		{"domain first", "zed@example.com", "alice@example.net", -1},
		{"subdomain after parent", "alice@b.example.com", "zed@example.com", 1},
		{"equal", "a@example.com", "a@example.com", 0},
	})

	_, err := CompareEmail("hostmaster.example.com", "a@example.com")
	var mv *MalformedValueError
	if !errors.As(err, &mv) {
		t.Fatalf("CompareEmail without '@' error = %v, want MalformedValueError", err)
	}
	if mv.Kind != "email address" || mv.Value != "hostmaster.example.com" {
		t.Errorf("unexpected MalformedValueError %+v", mv)
	}
}

func TestLookupComparator(t *testing.T) {
	for _, name := range ComparatorNames() {
		if _, ok := LookupComparator(name); !ok {
			t.Errorf("LookupComparator(%q) not found", name)
		}
	}
	if _, ok := LookupComparator("nosuch"); ok {
		t.Error("LookupComparator(nosuch) found")
	}
	if len(ComparatorNames()) != 7 {
		t.Errorf("ComparatorNames() = %v", ComparatorNames())
	}
}
