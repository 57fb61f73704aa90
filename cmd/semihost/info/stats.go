package info

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jszwec/csvutil"

	"github.com/pgavlin/semihost"
)

type row struct {
	Name  string `csv:"name"`
	Value string `csv:"value"`
	Error string `csv:"error,omitempty"`
}

func hex(v uintptr) string {
	return fmt.Sprintf("%#x", v)
}

// probe queries every informational call. A failed call yields a row with an
// error instead of ending the probe, since hosts implement different subsets.
func probe(c *semihost.Client) []row {
	var rows []row
	add := func(name, value string, err error) {
		r := row{Name: name, Value: value}
		if err != nil {
			r.Value, r.Error = "", err.Error()
		}
		rows = append(rows, r)
	}

	heap, err := c.HeapInfo()
	add("heap base", hex(heap.HeapBase), err)
	add("heap limit", hex(heap.HeapLimit), err)
	add("stack base", hex(heap.StackBase), err)
	add("stack limit", hex(heap.StackLimit), err)

	clock, err := c.Clock()
	add("clock", strconv.FormatUint(uint64(clock), 10), err)

	now, err := c.Time()
	add("time", now.UTC().Format(time.RFC3339), err)

	ticks, err := c.Elapsed()
	add("elapsed", strconv.FormatUint(ticks, 10), err)

	freq, err := c.TickFreq()
	add("tick frequency", strconv.FormatUint(uint64(freq), 10), err)

	ext, err := c.Extensions()
	if err != nil {
		add("extensions", "", err)
	} else {
		add("exit extended", strconv.FormatBool(ext.ExitExtended()), nil)
		add("stdout stderr", strconv.FormatBool(ext.StdoutStderr()), nil)
	}

	return rows
}

func writeTable(w io.Writer, rows []row) error {
	for _, r := range rows {
		v := r.Value
		if r.Error != "" {
			v = "unavailable: " + r.Error
		}
		if _, err := fmt.Fprintf(w, "%-16s%v\n", r.Name+":", v); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(w io.Writer, rows []row) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	encoder := csvutil.NewEncoder(csvWriter)
	for _, r := range rows {
		if err := encoder.Encode(&r); err != nil {
			return err
		}
	}
	return nil
}
