package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// Options - main options
type Options struct {
	Qopts      QueryOptions
	useV6      bool
	useV4      bool
	json       bool
	logjson    bool
	verbose    bool
	resolvconf string
	serverIP   net.IP
	serverName string
	zonefile   string
	axfr       bool
	config     string
	only       string
}

// QueryOptions - query options
type QueryOptions struct {
	rdflag  bool
	adflag  bool
	cdflag  bool
	timeout time.Duration
	retries int
	tcp     bool
	bufsize uint16
	nsid    bool
	port    int
}

// Defaults
var (
	defaultTimeout = 3
	defaultRetries = 3
	defaultBufsize = uint16(1400)
	defaultPort    = 53
)

func doFlags() ([]string, Options) {

	var opts Options

	help := flag.Bool("h", false, "print help string")
	flag.BoolVar(&opts.useV6, "6", false, "use IPv6 only")
	flag.BoolVar(&opts.useV4, "4", false, "use IPv4 only")
	flag.BoolVar(&opts.json, "j", false, "output json")
	flag.BoolVar(&opts.logjson, "logjson", false, "log in json")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.BoolVar(&opts.Qopts.tcp, "c", false, "use TCP for queries")
	flag.StringVar(&opts.resolvconf, "cf", "", "use alternate resolv.conf file")
	server := flag.String("m", "", "server name or address to query")
	flag.StringVar(&opts.zonefile, "f", "", "read records from zone file")
	flag.BoolVar(&opts.axfr, "x", false, "read records by zone transfer")
	flag.StringVar(&opts.config, "config", "", "sort specification file")
	flag.StringVar(&opts.only, "T", "", "only print table with this title")
	timeoutp := flag.Int("t", defaultTimeout, "query timeout in seconds")
	flag.IntVar(&opts.Qopts.retries, "r", defaultRetries, "number of query retries")
	flag.IntVar(&opts.Qopts.port, "p", defaultPort, "server port")
	var bufsize uint
	flag.UintVar(&bufsize, "b", uint(defaultBufsize), "buffer size for DNS messages")
	flag.BoolVar(&opts.Qopts.nsid, "nsid", false, "request NSID option in DNS queries")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `%s, version %s
Usage: %s [Options] <zone> [<zone> ...]

	Print the records of DNS zones as tables, sorted by domain
	name hierarchy, preference, and address.

	Options:
	-h          Print this help string
	-4          Use IPv4 transport only
	-6          Use IPv6 transport only
	-cf file    Use alternate resolv.conf file
	-m ns       Query this server (name or address) instead of the resolvers
	-p N        Server port (default %d)
	-f file     Read records from a zone master file (one zone only)
	-x          Read records by zone transfer from the -m server
	-config f   Load sort specifications from a YAML file
	-T title    Only print the table with this title
	-j          Produce json formatted output
	-c          Use TCP for queries (default: UDP with TCP on truncation)
	-t N        Query timeout value in seconds (default %d)
	-r N        Maximum # query retries for each server (default %d)
	-b N        Buffer size for DNS messages (default %d)
	-nsid       Request NSID option in DNS queries
	-v          Debug logging (also DEBUG=1)
	-logjson    Log in json instead of console format
`, progname, Version, progname, defaultPort, defaultTimeout, defaultRetries, defaultBufsize)
	}

	flag.Parse()
	opts.Qopts.timeout = time.Second * time.Duration(*timeoutp)
	opts.Qopts.bufsize = uint16(bufsize)

	if *help {
		flag.Usage()
		os.Exit(4)
	}

	if *server != "" {
		opts.serverIP = net.ParseIP(*server)
		if opts.serverIP == nil { // assume hostname
			opts.serverName = dns.Fqdn(*server)
		}
	}

	if opts.useV4 && opts.useV6 {
		usageError("Cannot specify both -4 and -6.")
	}
	if opts.zonefile != "" && opts.axfr {
		usageError("Cannot specify both -f and -x.")
	}
	if opts.axfr && *server == "" {
		usageError("Zone transfer (-x) needs a server (-m).")
	}

	if flag.NArg() < 1 {
		usageError("Incorrect number of arguments.")
	}
	if opts.zonefile != "" && flag.NArg() != 1 {
		usageError("Only one zone can be read from a zone file.")
	}

	var zones []string
	for _, arg := range flag.Args() {
		zones = append(zones, dns.Fqdn(strings.ToLower(arg)))
	}
	return zones, opts
}

func usageError(msg string) {
	fmt.Fprintf(os.Stderr, "%s\n", msg)
	flag.Usage()
	os.Exit(4)
}
