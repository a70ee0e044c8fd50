package main

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Record types queried at the zone apex
var apexTypes = []uint16{
	dns.TypeSOA, dns.TypeNS, dns.TypeMX, dns.TypeA, dns.TypeAAAA, dns.TypeTXT,
}

// AddressString - compose address string for net functions
func AddressString(addr string, port int) string {
	if !strings.Contains(addr, ":") {
		return addr + ":" + strconv.Itoa(port)
	}
	return "[" + addr + "]" + ":" + strconv.Itoa(port)
}

// GetResolver - obtains system resolver addresses
func GetResolver(conffile string) (resolvers []net.IP, err error) {

	if conffile == "" {
		conffile = "/etc/resolv.conf"
	}

	config, err := dns.ClientConfigFromFile(conffile)
	if err != nil {
		return nil, err
	}
	for _, s := range config.Servers {
		ip := net.ParseIP(s)
		if ip == nil {
			continue
		}
		resolvers = append(resolvers, ip)
	}
	if len(resolvers) == 0 {
		return nil, fmt.Errorf("no usable nameservers in %s", conffile)
	}
	return resolvers, nil
}

// filterFamily - keep only IPv4 or only IPv6 addresses when asked to
func filterFamily(ips []net.IP, opts Options) []net.IP {
	var out []net.IP
	for _, ip := range ips {
		isV4 := ip.To4() != nil
		if (opts.useV4 && !isV4) || (opts.useV6 && isV4) {
			continue
		}
		out = append(out, ip)
	}
	return out
}

// makeOptRR() - construct OPT Pseudo RR structure
func makeOptRR(qopts QueryOptions) *dns.OPT {

	opt := new(dns.OPT)
	opt.Hdr.Name = "."
	opt.Hdr.Rrtype = dns.TypeOPT
	opt.SetUDPSize(qopts.bufsize)

	if qopts.nsid {
		e := new(dns.EDNS0_NSID)
		e.Code = dns.EDNS0NSID
		e.Nsid = ""
		opt.Option = append(opt.Option, e)
	}

	opt.SetVersion(0)
	return opt
}

// MakeQuery - construct a DNS query message
func MakeQuery(qname string, qtype uint16, qopts QueryOptions) *dns.Msg {
	m := new(dns.Msg)
	m.Id = dns.Id()
	m.RecursionDesired = qopts.rdflag
	m.AuthenticatedData = qopts.adflag
	m.CheckingDisabled = qopts.cdflag
	m.Extra = append(m.Extra, makeOptRR(qopts))
	m.Question = make([]dns.Question, 1)
	m.Question[0] = dns.Question{Name: qname, Qtype: qtype, Qclass: dns.ClassINET}
	return m
}

// SendQueryUDP - send DNS query via UDP
func SendQueryUDP(ctx context.Context, query *dns.Msg, ipaddrs []net.IP, qopts QueryOptions) (response *dns.Msg, err error) {

	var retries = qopts.retries

	c := new(dns.Client)
	c.Net = "udp"
	c.Timeout = qopts.timeout

	for retries > 0 {
		for _, ipaddr := range ipaddrs {
			destination := AddressString(ipaddr.String(), qopts.port)
			response, _, err = c.ExchangeContext(ctx, query, destination)
			if err == nil {
				return response, err
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if nerr, ok := err.(net.Error); ok && !nerr.Timeout() {
				break
			}
		}
		retries--
	}

	return response, err
}

// SendQueryTCP - send DNS query via TCP
func SendQueryTCP(ctx context.Context, query *dns.Msg, ipaddrs []net.IP, qopts QueryOptions) (response *dns.Msg, err error) {

	c := new(dns.Client)
	c.Net = "tcp"
	c.Timeout = qopts.timeout

	for _, ipaddr := range ipaddrs {
		destination := AddressString(ipaddr.String(), qopts.port)
		response, _, err = c.ExchangeContext(ctx, query, destination)
		if err == nil {
			return response, err
		}
	}
	return response, err
}

// SendQuery - send DNS query via UDP with fallback to TCP upon truncation
func SendQuery(ctx context.Context, qname string, qtype uint16, ipaddrs []net.IP, qopts QueryOptions) (*dns.Msg, error) {

	if len(ipaddrs) == 0 {
		return nil, errors.New("no servers to query")
	}

	query := MakeQuery(qname, qtype, qopts)

	if qopts.tcp {
		return SendQueryTCP(ctx, query, ipaddrs, qopts)
	}

	response, err := SendQueryUDP(ctx, query, ipaddrs, qopts)
	if err == nil && response.MsgHdr.Truncated {
		return SendQueryTCP(ctx, query, ipaddrs, qopts)
	}

	return response, err

}

//
// answerRecords - records of the queried name and type from a response,
// or an error for anything but NOERROR.
//
func answerRecords(qname string, qtype uint16, response *dns.Msg) ([]dns.RR, error) {

	switch response.MsgHdr.Rcode {
	case dns.RcodeSuccess:
		break
	case dns.RcodeNameError:
		return nil, fmt.Errorf("NXDOMAIN: %s: name doesn't exist", qname)
	default:
		return nil, fmt.Errorf("%s/%s: response code: %s", qname,
			dns.TypeToString[qtype], dns.RcodeToString[response.MsgHdr.Rcode])
	}

	var rrs []dns.RR
	for _, rr := range response.Answer {
		if rr.Header().Rrtype == qtype && strings.EqualFold(rr.Header().Name, qname) {
			rrs = append(rrs, rr)
		}
	}
	return rrs, nil
}

//
// getIPAddresses - addresses of a server name, looked up with the given
// resolvers.
//
func getIPAddresses(ctx context.Context, hostname string, resolvers []net.IP, opts Options) ([]net.IP, error) {

	var ipList []net.IP

	qopts := opts.Qopts
	qopts.rdflag = true

	for _, rrtype := range []uint16{dns.TypeAAAA, dns.TypeA} {
		if (rrtype == dns.TypeAAAA && opts.useV4) || (rrtype == dns.TypeA && opts.useV6) {
			continue
		}
		response, err := SendQuery(ctx, hostname, rrtype, resolvers, qopts)
		if err != nil {
			return nil, errors.Wrapf(err, "looking up %s", hostname)
		}
		rrs, err := answerRecords(hostname, rrtype, response)
		if err != nil {
			return nil, err
		}
		for _, rr := range rrs {
			switch v := rr.(type) {
			case *dns.A:
				ipList = append(ipList, v.A)
			case *dns.AAAA:
				ipList = append(ipList, v.AAAA)
			}
		}
	}

	if len(ipList) == 0 {
		return nil, fmt.Errorf("%s: no addresses found", hostname)
	}
	return ipList, nil
}

//
// queryZone - query the apex records of a zone, one query per record type,
// in parallel. With rdflag unset the servers are expected to be
// authoritative for the zone.
//
func queryZone(ctx context.Context, zone string, servers []net.IP, qopts QueryOptions) ([]dns.RR, error) {

	logger := zerolog.Ctx(ctx)
	answers := make([][]dns.RR, len(apexTypes))

	g, gctx := errgroup.WithContext(ctx)
	for i, qtype := range apexTypes {
		i, qtype := i, qtype
		g.Go(func() error {
			response, err := SendQuery(gctx, zone, qtype, servers, qopts)
			if err != nil {
				return errors.Wrapf(err, "querying %s/%s", zone, dns.TypeToString[qtype])
			}
			rrs, err := answerRecords(zone, qtype, response)
			if err != nil {
				return err
			}
			logger.Debug().Str("zone", zone).Str("type", dns.TypeToString[qtype]).
				Int("records", len(rrs)).Msg("query answered")
			answers[i] = rrs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var rrs []dns.RR
	for _, a := range answers {
		rrs = append(rrs, a...)
	}
	return rrs, nil
}
