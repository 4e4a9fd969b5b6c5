package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/trajectory/internal/contract"
	"github.com/huangsam/trajectory/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteCountryResults outputs the country listing, dispatching based on the output format configured.
func WriteCountryResults(records []schema.CountryRecord, cfg *contract.Config) error {
	_, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "Wrote JSON countries"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForCountries(w, records, intFmt)
		}, "Wrote CSV countries"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut, schema.SVGOut:
		return fmt.Errorf("%s output is not supported for the country listing", cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCountryTable(records, cfg, intFmt, w)
		}, "Wrote table")
	}
	return nil
}

func writeCountryTable(records []schema.CountryRecord, cfg *contract.Config, intFmt string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Identifier", "Name", "Total Confirmed"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for _, r := range records {
		data = append(data, []string{
			contract.TruncateName(r.Identifier, nameWidth),
			contract.TruncateName(r.Name, nameWidth),
			fmt.Sprintf(intFmt, r.TotalConfirmed),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Showing %d countries\n", len(records))
	return err
}

func writeCSVResultsForCountries(w io.Writer, records []schema.CountryRecord, intFmt string) error {
	return writeCSVWithHeader(w, []string{"identifier", "name", "total_confirmed"}, func(cw *csv.Writer) error {
		for _, r := range records {
			if err := cw.Write([]string{r.Identifier, r.Name, fmt.Sprintf(intFmt, r.TotalConfirmed)}); err != nil {
				return err
			}
		}
		return nil
	})
}
