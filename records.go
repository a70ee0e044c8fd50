package main

import (
	"strconv"
	"strings"

	"github.com/miekg/dns"

	"github.com/shuque/dnstablesort/tablesort"
)

//
// recordTables - arrange the records of a zone into the tables of a DNS
// manager page, one per record type group, in page order. Owner names are
// shown relative to the zone, with "" for the apex. Empty tables are
// left out, as are record types with no table.
//
func recordTables(zone string, rrs []dns.RR) []*Table {

	soa := newTable(zone, tablesort.TitleSOA, "Zone", "Primary DNS", "Email", "Serial", "TTL")
	ns := newTable(zone, tablesort.TitleNS, "Name Server", "Subdomain", "TTL")
	mx := newTable(zone, tablesort.TitleMX, "Mail Server", "Preference", "Subdomain", "TTL")
	a := newTable(zone, tablesort.TitleA, "Host Name", "IP Address", "TTL")
	cname := newTable(zone, tablesort.TitleCNAME, "Host Name", "Aliases to", "TTL")
	txt := newTable(zone, tablesort.TitleTXT, "Name", "Value", "TTL")
	srv := newTable(zone, tablesort.TitleSRV, "Name", "Priority", "Weight", "Port", "Target", "TTL")

	for _, rr := range rrs {
		hdr := rr.Header()
		name := relativeName(hdr.Name, zone)
		ttl := strconv.FormatUint(uint64(hdr.Ttl), 10)

		switch v := rr.(type) {
		case *dns.SOA:
			soa.addRow(hostName(hdr.Name), hostName(v.Ns), mboxToEmail(v.Mbox),
				strconv.FormatUint(uint64(v.Serial), 10), ttl)
		case *dns.NS:
			ns.addRow(hostName(v.Ns), name, ttl)
		case *dns.MX:
			mx.addRow(hostName(v.Mx), strconv.Itoa(int(v.Preference)), name, ttl)
		case *dns.A:
			a.addRow(name, v.A.String(), ttl)
		case *dns.AAAA:
			a.addRow(name, v.AAAA.String(), ttl)
		case *dns.CNAME:
			cname.addRow(name, hostName(v.Target), ttl)
		case *dns.TXT:
			txt.addRow(name, strings.Join(v.Txt, " "), ttl)
		case *dns.SRV:
			srv.addRow(name, strconv.Itoa(int(v.Priority)), strconv.Itoa(int(v.Weight)),
				strconv.Itoa(int(v.Port)), hostName(v.Target), ttl)
		}
	}

	var tables []*Table
	for _, t := range []*Table{soa, ns, mx, a, cname, txt, srv} {
		if len(t.Rows) > 0 {
			tables = append(tables, t)
		}
	}
	return tables
}

//
// overviewTable - the domain list of the DNS manager front page, one row
// per zone with its record count.
//
func overviewTable(zones []string, counts map[string]int) *Table {
	t := newTable("", tablesort.TitleDomains, "Domain", "Records")
	for _, zone := range zones {
		t.addRow(hostName(zone), strconv.Itoa(counts[zone]))
	}
	return t
}

// relativeName - owner name relative to the zone; "" for the apex
func relativeName(owner, zone string) string {
	if dns.CanonicalName(owner) == dns.CanonicalName(zone) {
		return ""
	}
	if dns.IsSubDomain(zone, owner) {
		return owner[:len(owner)-len(zone)-1]
	}
	return hostName(owner)
}

// hostName - domain name without the trailing root dot
func hostName(name string) string {
	if name == "." {
		return name
	}
	return strings.TrimSuffix(name, ".")
}

//
// mboxToEmail - the SOA RNAME as an email address: the first label is the
// local part, with escaped dots unescaped.
//
func mboxToEmail(mbox string) string {
	labels := dns.SplitDomainName(mbox)
	if len(labels) < 2 {
		return hostName(mbox)
	}
	local := strings.ReplaceAll(labels[0], `\.`, ".")
	return local + "@" + strings.Join(labels[1:], ".")
}
