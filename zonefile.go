package main

import (
	"io"
	"os"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
)

// readZoneFile - read the records of a zone from a master file
func readZoneFile(filename, zone string) ([]dns.RR, error) {

	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening zone file")
	}
	defer f.Close()

	return parseZone(f, zone, filename)
}

func parseZone(r io.Reader, zone, filename string) ([]dns.RR, error) {

	var rrs []dns.RR

	zp := dns.NewZoneParser(r, zone, filename)
	for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
		rrs = append(rrs, rr)
	}
	if err := zp.Err(); err != nil {
		return nil, errors.Wrapf(err, "parsing zone %s", zone)
	}
	return rrs, nil
}
