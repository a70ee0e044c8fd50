package main

import (
	"context"
	"net"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

//
// transferZone - fetch all records of a zone by AXFR, trying each server
// address in turn. The closing copy of the SOA record is dropped.
//
func transferZone(ctx context.Context, zone string, servers []net.IP, qopts QueryOptions) ([]dns.RR, error) {

	var err error

	if len(servers) == 0 {
		return nil, errors.New("no servers to transfer from")
	}

	for _, ip := range servers {
		var rrs []dns.RR
		rrs, err = transferFrom(ctx, zone, AddressString(ip.String(), qopts.port), qopts)
		if err == nil {
			return rrs, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		zerolog.Ctx(ctx).Debug().Err(err).Str("server", ip.String()).Msg("zone transfer failed")
	}
	return nil, err
}

func transferFrom(ctx context.Context, zone, destination string, qopts QueryOptions) ([]dns.RR, error) {

	m := new(dns.Msg)
	m.SetAxfr(zone)

	tr := &dns.Transfer{
		DialTimeout:  qopts.timeout,
		ReadTimeout:  qopts.timeout,
		WriteTimeout: qopts.timeout,
	}

	envelopes, err := tr.In(m, destination)
	if err != nil {
		return nil, errors.Wrapf(err, "AXFR %s from %s", zone, destination)
	}

	var rrs []dns.RR
	for env := range envelopes {
		if env.Error != nil {
			return nil, errors.Wrapf(env.Error, "AXFR %s from %s", zone, destination)
		}
		rrs = append(rrs, env.RR...)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if n := len(rrs); n > 1 && rrs[n-1].Header().Rrtype == dns.TypeSOA {
		rrs = rrs[:n-1]
	}
	zerolog.Ctx(ctx).Debug().Str("zone", zone).Str("server", destination).
		Int("records", len(rrs)).Msg("zone transferred")
	return rrs, nil
}
