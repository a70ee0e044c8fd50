package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuque/dnstablesort/tablesort"
)

func hostTable() *Table {
	t := newTable("example.com.", tablesort.TitleA, "Host Name", "IP Address")
	t.addRow("", "192.0.2.1")
	t.addRow("www", "10.0.0.1")
	return t
}

func TestPrintTables(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printTables(&buf, []*Table{hostTable(), newTable("", tablesort.TitleDomains, "Domain")}))

	expected := "## example.com: A/AAAA Records\n" +
		"Host Name  IP Address\n" +
		"-          192.0.2.1\n" +
		"www        10.0.0.1\n" +
		"\n" +
		"## Domains\n" +
		"Domain\n"
	assert.Equal(t, expected, buf.String())
}

func TestPrintTablesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printTablesJSON(&buf, []*Table{hostTable()}))

	var decoded []struct {
		Zone  string              `json:"zone"`
		Title string              `json:"title"`
		Rows  []map[string]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "example.com", decoded[0].Zone)
	assert.Equal(t, tablesort.TitleA, decoded[0].Title)
	assert.Equal(t, []map[string]string{
		{"Host Name": "", "IP Address": "192.0.2.1"},
		{"Host Name": "www", "IP Address": "10.0.0.1"},
	}, decoded[0].Rows)

	out := buf.String()
	assert.Less(t, strings.Index(out, `"Host Name"`), strings.Index(out, `"IP Address"`),
		"columns keep table order")
	assert.Less(t, strings.Index(out, `"zone"`), strings.Index(out, `"rows"`))
}
