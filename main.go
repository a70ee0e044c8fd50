package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/shuque/dnstablesort/tablesort"
)

// Version - current version number
var Version string = "0.1.0"

// Progname - Program name
var progname string = path.Base(os.Args[0])

//
// servers - addresses to send queries to: the -m server if given (which
// then answers authoritatively), otherwise the system resolvers.
//
func servers(ctx context.Context, opts Options) (ips []net.IP, authoritative bool, err error) {

	resolvers, err := GetResolver(opts.resolvconf)
	if err != nil && opts.serverIP == nil {
		return nil, false, errors.Wrap(err, "getting resolvers")
	}

	switch {
	case opts.serverIP != nil:
		ips = []net.IP{opts.serverIP}
		authoritative = true
	case opts.serverName != "":
		ips, err = getIPAddresses(ctx, opts.serverName, filterFamily(resolvers, opts), opts)
		if err != nil {
			return nil, false, err
		}
		authoritative = true
	default:
		ips = resolvers
	}

	ips = filterFamily(ips, opts)
	if len(ips) == 0 {
		return nil, false, errors.New("no server addresses of the requested family")
	}
	return ips, authoritative, nil
}

// loadRecords - the records of one zone, from the source chosen by opts
func loadRecords(ctx context.Context, zone string, opts Options) ([]dns.RR, error) {

	if opts.zonefile != "" {
		return readZoneFile(opts.zonefile, zone)
	}

	ips, authoritative, err := servers(ctx, opts)
	if err != nil {
		return nil, err
	}

	if opts.axfr {
		return transferZone(ctx, zone, ips, opts.Qopts)
	}

	qopts := opts.Qopts
	qopts.rdflag = !authoritative
	return queryZone(ctx, zone, ips, qopts)
}

//
// collectTables - the record tables of every zone, preceded by a domain
// overview table when there is more than one zone.
//
func collectTables(ctx context.Context, zones []string, opts Options) ([]*Table, error) {

	var tables []*Table
	counts := make(map[string]int)

	for _, zone := range zones {
		rrs, err := loadRecords(ctx, zone, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "zone %s", zone)
		}
		counts[zone] = len(rrs)
		tables = append(tables, recordTables(zone, rrs)...)
	}

	if len(zones) > 1 {
		tables = append([]*Table{overviewTable(zones, counts)}, tables...)
	}
	return tables, nil
}

func selectTables(tables []*Table, title string) []*Table {
	if title == "" {
		return tables
	}
	var out []*Table
	for _, t := range tables {
		if t.Title == title {
			out = append(out, t)
		}
	}
	return out
}

//
// run - load, sort and print the tables. Returns the process exit code:
// 1 when records or specifications could not be loaded, 2 when some table
// could not be sorted (it is printed in its original order).
//
func run(ctx context.Context, w io.Writer, zones []string, opts Options) int {

	logger := zerolog.Ctx(ctx)

	specs := tablesort.DefaultSpecs()
	if opts.config != "" {
		fileSpecs, err := tablesort.LoadSpecsFile(opts.config)
		if err != nil {
			logger.Error().Err(err).Msg("loading sort specifications")
			return 1
		}
		specs = specs.Merge(fileSpecs)
	}

	tables, err := collectTables(ctx, zones, opts)
	if err != nil {
		logger.Error().Err(err).Msg("loading records")
		return 1
	}

	tables = selectTables(tables, opts.only)
	sortErr := sortTables(ctx, tables, specs)

	if opts.json {
		err = printTablesJSON(w, tables)
	} else {
		err = printTables(w, tables)
	}
	if err != nil {
		logger.Error().Err(err).Msg("writing output")
		return 1
	}

	if sortErr != nil {
		return 2
	}
	return 0
}

func main() {

	zones, opts := doFlags()

	logger := newLogger(os.Stderr, opts.verbose, opts.logjson)
	ctx := logger.WithContext(context.Background())

	if code := run(ctx, os.Stdout, zones, opts); code != 0 {
		fmt.Fprintf(os.Stderr, "%s: exiting with status %d\n", progname, code)
		os.Exit(code)
	}
}
